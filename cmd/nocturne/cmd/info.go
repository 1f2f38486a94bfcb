package cmd

import (
	"fmt"

	"github.com/go-nocturne/nocturne/cmd/nocturne/internal/config"
	"github.com/go-nocturne/nocturne/pkg/timeline"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Show the resolved night schedule",
		Long: `Show the resolved configuration: clock timing, snowfall window,
and message trigger instants, with their wall-clock display times.

A trigger only fires when a tick lands exactly on its instant; info
flags triggers that the configured per-tick delta would skip over.`,
		Usage: "nocturne info [project-dir]",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	cfg, err := config.Resolve(dir, Version)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	step := float64(cfg.Clock.VirtualDuration) / float64(cfg.Clock.FrameCount)
	fmt.Printf("Night: %s for %d virtual seconds, %d frames (%.2f virtual s/tick)\n",
		timeline.FormatClock(cfg.Clock.OffsetSeconds),
		cfg.Clock.VirtualDuration,
		cfg.Clock.FrameCount,
		step,
	)
	fmt.Printf("Snow:  %s to %s\n",
		timeline.FormatClock(cfg.Scene.SnowStart),
		timeline.FormatClock(cfg.Scene.SnowStop),
	)

	triggers := []struct {
		name string
		at   int
	}{
		{"nice night", cfg.Scene.NiceNightAt},
		{"look, snowing", cfg.Scene.LookSnowingAt},
		{"good morning", cfg.Scene.GoodMorningAt},
	}
	fmt.Println("Messages:")
	for _, trigger := range triggers {
		note := ""
		if !tickLandsOn(trigger.at, cfg.Clock.OffsetSeconds, step, cfg.Clock.FrameCount) {
			note = "  (skipped: no tick lands on this instant)"
		}
		fmt.Printf("  %-14s %s%s\n", trigger.name, timeline.FormatClock(trigger.at), note)
	}

	fmt.Printf("Output: %s -> %s\n", cfg.Output.Format, cfg.Output.Path)
	return nil
}

// tickLandsOn reports whether any tick's truncated elapsed value equals the
// trigger instant.
func tickLandsOn(at, offset int, step float64, frames int) bool {
	seconds := float64(offset)
	for i := 0; i < frames; i++ {
		seconds += step
		elapsed := int(seconds)
		if elapsed == at {
			return true
		}
		if elapsed > at {
			return false
		}
	}
	return false
}

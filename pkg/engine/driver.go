// Package engine owns the frame loop: it advances the virtual clock, ticks
// the scene state machine, and hands each snapshot to a renderer, strictly
// sequentially. One Advance/Tick/RenderFrame triple per frame, a fixed
// precomputed frame count, no concurrency.
package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/go-nocturne/nocturne/pkg/errors"
	"github.com/go-nocturne/nocturne/pkg/scene"
	"github.com/go-nocturne/nocturne/pkg/timeline"
)

// Renderer accepts one scene snapshot per tick and performs all drawing.
// The renderer owns diffing against whatever it drew previously; the only
// retained-content contract is that state.Stars never changes within a run.
type Renderer interface {
	RenderFrame(state scene.SceneState) error
}

// DriverConfig wires a driver together.
type DriverConfig struct {
	Clock    *timeline.Clock
	Machine  *scene.Machine
	Renderer Renderer

	// Frames is the total number of ticks to run.
	Frames int

	// Logger receives run progress; nil disables logging.
	Logger *zap.SugaredLogger
}

// Driver runs the animation to completion.
type Driver struct {
	clock    *timeline.Clock
	machine  *scene.Machine
	renderer Renderer
	frames   int
	log      *zap.SugaredLogger
}

// RunStats summarizes a completed (or aborted) run.
type RunStats struct {
	// FramesRendered counts the frames the renderer accepted.
	FramesRendered int

	// FirstElapsed and LastElapsed are the virtual times of the first and
	// last rendered frames.
	FirstElapsed int
	LastElapsed  int

	// MessagesShown lists each message in the order it first appeared.
	MessagesShown []scene.Message
}

// NewDriver validates the wiring and builds a driver.
func NewDriver(cfg DriverConfig) (*Driver, error) {
	const op = "engine.NewDriver"
	if cfg.Clock == nil {
		return nil, errors.Newf(op, errors.KindConfig, "clock is required")
	}
	if cfg.Machine == nil {
		return nil, errors.Newf(op, errors.KindConfig, "scene machine is required")
	}
	if cfg.Renderer == nil {
		return nil, errors.Newf(op, errors.KindConfig, "renderer is required")
	}
	if cfg.Frames <= 0 {
		return nil, errors.Newf(op, errors.KindConfig, "frame count %d is not positive", cfg.Frames)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Driver{
		clock:    cfg.Clock,
		machine:  cfg.Machine,
		renderer: cfg.Renderer,
		frames:   cfg.Frames,
		log:      log,
	}, nil
}

// Run executes the full frame loop. It stops early only when the context is
// canceled or the renderer reports an error; each tick itself is an atomic
// computation that needs no mid-tick cancellation.
func (d *Driver) Run(ctx context.Context) (RunStats, error) {
	stats := RunStats{FirstElapsed: -1}
	lastMessage := scene.MessageNone

	d.log.Infow("starting run",
		"frames", d.frames,
		"secondsPerTick", d.clock.SecondsPerTick(),
		"clock", d.clock.String(),
	)

	for frame := 1; frame <= d.frames; frame++ {
		select {
		case <-ctx.Done():
			d.log.Infow("run canceled", "frame", frame)
			return stats, ctx.Err()
		default:
		}

		d.clock.Advance()
		state := d.machine.Tick(d.clock.Elapsed())

		if state.Message != lastMessage {
			stats.MessagesShown = append(stats.MessagesShown, state.Message)
			lastMessage = state.Message
			d.log.Infow("message shown", "clock", state.ClockText, "message", state.Message)
		}
		d.log.Debugw("tick",
			"frame", frame,
			"clock", state.ClockText,
			"snowing", state.Snowing,
			"flakes", state.SnowflakeCount(),
			"skyTint", state.SkyTint,
		)

		if err := d.renderer.RenderFrame(state); err != nil {
			return stats, errors.New("engine.Run", errors.KindRender, err)
		}

		if stats.FirstElapsed < 0 {
			stats.FirstElapsed = state.Elapsed
		}
		stats.LastElapsed = state.Elapsed
		stats.FramesRendered++
	}

	d.log.Infow("run complete",
		"framesRendered", stats.FramesRendered,
		"clock", d.clock.String(),
	)
	return stats, nil
}

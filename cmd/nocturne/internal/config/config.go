// Package config loads the optional nocturne.yaml project file and resolves
// it against the stock night.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-nocturne/nocturne/pkg/graphics"
	"github.com/go-nocturne/nocturne/pkg/scene"
	"github.com/go-nocturne/nocturne/pkg/timeline"
)

// Config represents the optional nocturne.yaml configuration. Zero values
// mean "use the default".
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Timing TimingConfig `yaml:"timing"`
	Scene  SceneConfig  `yaml:"scene"`
	Output OutputConfig `yaml:"output"`
	Seed   int64        `yaml:"seed,omitempty"`
}

// EngineConfig pins tool compatibility.
type EngineConfig struct {
	// MinVersion is the lowest CLI version this project expects,
	// e.g. "v0.1.0".
	MinVersion string `yaml:"minVersion,omitempty"`
}

// TimingConfig overrides the virtual clock.
type TimingConfig struct {
	OffsetSeconds   int `yaml:"offsetSeconds,omitempty"`
	VirtualDuration int `yaml:"virtualDuration,omitempty"`
	Frames          int `yaml:"frames,omitempty"`
}

// SceneConfig overrides the scene state machine.
type SceneConfig struct {
	Width         float64 `yaml:"width,omitempty"`
	Height        float64 `yaml:"height,omitempty"`
	Stars         int     `yaml:"stars,omitempty"`
	MaxFlakes     int     `yaml:"maxFlakes,omitempty"`
	GroundFlakes  int     `yaml:"groundFlakes,omitempty"`
	SnowStart     int     `yaml:"snowStart,omitempty"`
	SnowStop      int     `yaml:"snowStop,omitempty"`
	NiceNightAt   int     `yaml:"niceNightAt,omitempty"`
	LookSnowingAt int     `yaml:"lookSnowingAt,omitempty"`
	GoodMorningAt int     `yaml:"goodMorningAt,omitempty"`
}

// OutputConfig selects the frame encoding.
type OutputConfig struct {
	// Format is "gif" (one animated file) or "png" (a directory of frames).
	Format string `yaml:"format,omitempty"`

	// Path is the gif file or png directory to write.
	Path string `yaml:"path,omitempty"`

	// Scale is pixels per scene unit.
	Scale float64 `yaml:"scale,omitempty"`

	// Delay is the gif per-frame delay in hundredths of a second.
	Delay int `yaml:"delay,omitempty"`
}

// Resolved contains resolved configuration values ready to wire.
type Resolved struct {
	Clock  timeline.ClockConfig
	Scene  scene.Config
	Frames int
	Seed   int64
	Output OutputConfig
}

// LoadOptional reads nocturne.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "nocturne.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read nocturne.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse nocturne.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads nocturne.yaml (if present) and resolves defaults.
// currentVersion is the running CLI version, checked against the project's
// engine.minVersion pin.
func Resolve(dir, currentVersion string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if err := checkVersionPin(cfg.Engine.MinVersion, currentVersion); err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Clock: timeline.ClockConfig{
			OffsetSeconds:   72000,
			VirtualDuration: 36000,
			FrameCount:      3000,
		},
		Scene: scene.DefaultConfig(),
		Seed:  cfg.Seed,
		Output: OutputConfig{
			Format: "gif",
			Path:   "night.gif",
			Scale:  32,
			Delay:  10,
		},
	}

	if cfg.Timing.OffsetSeconds > 0 {
		resolved.Clock.OffsetSeconds = cfg.Timing.OffsetSeconds
	}
	if cfg.Timing.VirtualDuration > 0 {
		resolved.Clock.VirtualDuration = cfg.Timing.VirtualDuration
	}
	if cfg.Timing.Frames > 0 {
		resolved.Clock.FrameCount = cfg.Timing.Frames
	}
	resolved.Frames = resolved.Clock.FrameCount

	if cfg.Scene.Width > 0 && cfg.Scene.Height > 0 {
		resolved.Scene.Bounds = graphics.RectFromLTWH(0, 0, cfg.Scene.Width, cfg.Scene.Height)
	}
	if cfg.Scene.Stars > 0 {
		resolved.Scene.StarCount = cfg.Scene.Stars
	}
	if cfg.Scene.MaxFlakes > 0 {
		resolved.Scene.MaxFlakes = cfg.Scene.MaxFlakes
	}
	if cfg.Scene.GroundFlakes > 0 {
		resolved.Scene.GroundFlakes = cfg.Scene.GroundFlakes
	}
	if cfg.Scene.SnowStart > 0 {
		resolved.Scene.SnowStart = cfg.Scene.SnowStart
	}
	if cfg.Scene.SnowStop > 0 {
		resolved.Scene.SnowStop = cfg.Scene.SnowStop
	}
	if cfg.Scene.NiceNightAt > 0 {
		resolved.Scene.NiceNightAt = cfg.Scene.NiceNightAt
	}
	if cfg.Scene.LookSnowingAt > 0 {
		resolved.Scene.LookSnowingAt = cfg.Scene.LookSnowingAt
	}
	if cfg.Scene.GoodMorningAt > 0 {
		resolved.Scene.GoodMorningAt = cfg.Scene.GoodMorningAt
	}

	if cfg.Output.Format != "" {
		resolved.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	}
	switch resolved.Output.Format {
	case "gif":
	case "png":
		if cfg.Output.Path == "" {
			resolved.Output.Path = "frames"
		}
	default:
		return nil, fmt.Errorf("output.format must be \"gif\" or \"png\" (got %q)", resolved.Output.Format)
	}
	if cfg.Output.Path != "" {
		resolved.Output.Path = cfg.Output.Path
	}
	if cfg.Output.Scale > 0 {
		resolved.Output.Scale = cfg.Output.Scale
	}
	if cfg.Output.Delay > 0 {
		resolved.Output.Delay = cfg.Output.Delay
	}

	return resolved, nil
}

// checkVersionPin validates engine.minVersion and compares it to the
// running CLI version. Pre-release suffixes compare per semver rules.
func checkVersionPin(minVersion, currentVersion string) error {
	if strings.TrimSpace(minVersion) == "" {
		return nil
	}
	min := canonicalVersion(minVersion)
	if !semver.IsValid(min) {
		return fmt.Errorf("engine.minVersion %q is not a valid semantic version", minVersion)
	}
	current := canonicalVersion(currentVersion)
	if !semver.IsValid(current) {
		return fmt.Errorf("running CLI version %q is not a valid semantic version", currentVersion)
	}
	if semver.Compare(current, min) < 0 {
		return fmt.Errorf("project requires nocturne %s or newer, running %s", min, current)
	}
	return nil
}

// canonicalVersion adds the leading "v" semver requires when absent.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

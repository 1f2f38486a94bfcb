package scene

import "github.com/go-nocturne/nocturne/pkg/graphics"

// Star is a single static star: placed once when the machine is built and
// never moved or regenerated for the remainder of the run.
type Star struct {
	Position graphics.Offset
	Size     float64
}

// SceneState is the complete derived description of what the scene looks
// like at one virtual instant. It is recomputed from scratch every tick; a
// renderer receives the full replacement state and owns any diffing or
// clearing of previously drawn elements.
type SceneState struct {
	// Tick is the ordinal of this snapshot within the run, starting at 1.
	Tick int

	// Elapsed is the virtual time of the snapshot, in seconds since
	// midnight, unwrapped.
	Elapsed int

	// ClockText is the HH:MM:SS display for Elapsed.
	ClockText string

	// SkyTint reports whether the sky carries a palette tint this tick.
	// When false the sky stays black: either midnight has not passed yet,
	// or the post-midnight index ran off the end of the color table
	// (sunrise reached).
	SkyTint bool

	// SkyColorIndex is the color-table index when SkyTint is true; it is
	// always within the table range.
	SkyColorIndex int

	// SkyColor is the resolved palette entry when SkyTint is true.
	SkyColor graphics.Color

	// StarsVisible reports that the static star field has been generated.
	StarsVisible bool

	// Stars shares the machine's star field. The slice contents are
	// identical across every tick of a run.
	Stars []Star

	// Snowing reports whether this instant falls inside the half-open
	// snowfall window.
	Snowing bool

	// Snowflakes holds freshly drawn flake positions while snowing,
	// nil otherwise. The count is a new random draw every tick.
	Snowflakes []graphics.Offset

	// GroundSnow holds the fixed-count ground accumulation positions,
	// re-randomized every tick while snowing, nil otherwise.
	GroundSnow []graphics.Offset

	// Message is the active timed message, MessageNone before the first
	// trigger fires.
	Message Message
}

// SnowflakeCount returns the number of falling flakes this tick.
func (s SceneState) SnowflakeCount() int {
	return len(s.Snowflakes)
}

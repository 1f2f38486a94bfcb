package scene

import (
	"github.com/go-nocturne/nocturne/pkg/errors"
	"github.com/go-nocturne/nocturne/pkg/graphics"
	"github.com/go-nocturne/nocturne/pkg/timeline"
)

// MidnightOffset is the virtual second at which the displayed day rolls
// over. Sky tinting only begins past this instant.
const MidnightOffset = timeline.SecondsPerDay

// Default scene parameters: a 20x10 scene running 20:00 to 06:00, snow from
// 22:00 to 03:00, sunrise fade over the last six hours.
const (
	DefaultStarCount    = 50
	DefaultStarSizeMin  = 10
	DefaultStarSizeMax  = 50
	DefaultMaxFlakes    = 20
	DefaultGroundFlakes = 10
	DefaultGroundDepth  = 0.3

	DefaultSnowStart = 79200 // 22:00
	DefaultSnowStop  = 97200 // 03:00 next day

	DefaultNiceNightAt   = 75600  // 21:00
	DefaultLookSnowingAt = 82800  // 23:00
	DefaultGoodMorningAt = 104400 // 05:00 next day
)

// Config describes the scene the state machine derives each tick.
type Config struct {
	// Bounds is the scene coordinate space, top-left origin. Stars occupy
	// the upper half; ground snow the bottom strip.
	Bounds graphics.Rect

	// StarCount is the number of static stars generated at construction.
	StarCount int

	// StarSizeMin and StarSizeMax bound the uniform star size draw,
	// half-open [min, max).
	StarSizeMin float64
	StarSizeMax float64

	// MaxFlakes is the exclusive upper bound of the per-tick snowflake
	// count draw; counts fall in [1, MaxFlakes).
	MaxFlakes int

	// GroundFlakes is the fixed number of ground-snow positions
	// re-randomized each snowing tick.
	GroundFlakes int

	// GroundDepth is the height of the bottom strip that ground snow
	// occupies.
	GroundDepth float64

	// SnowStart and SnowStop bound the snowfall window, half-open
	// [SnowStart, SnowStop) in virtual seconds. The comparison is a
	// literal interval test against the unwrapped elapsed value, so a
	// window that crosses midnight simply uses a stop value past 86400.
	SnowStart int
	SnowStop  int

	// Trigger instants for the three timed messages, in virtual seconds.
	// Matching is exact: a trigger skipped over by the per-tick delta
	// never fires.
	NiceNightAt   int
	LookSnowingAt int
	GoodMorningAt int
}

// DefaultConfig returns the stock night scene.
func DefaultConfig() Config {
	return Config{
		Bounds:        graphics.RectFromLTWH(0, 0, 20, 10),
		StarCount:     DefaultStarCount,
		StarSizeMin:   DefaultStarSizeMin,
		StarSizeMax:   DefaultStarSizeMax,
		MaxFlakes:     DefaultMaxFlakes,
		GroundFlakes:  DefaultGroundFlakes,
		GroundDepth:   DefaultGroundDepth,
		SnowStart:     DefaultSnowStart,
		SnowStop:      DefaultSnowStop,
		NiceNightAt:   DefaultNiceNightAt,
		LookSnowingAt: DefaultLookSnowingAt,
		GoodMorningAt: DefaultGoodMorningAt,
	}
}

func (c Config) validate() error {
	const op = "scene.NewMachine"
	if c.Bounds.IsEmpty() {
		return errors.Newf(op, errors.KindConfig, "scene bounds enclose no area")
	}
	if c.StarCount <= 0 {
		return errors.Newf(op, errors.KindConfig, "star count %d is not positive", c.StarCount)
	}
	if c.StarSizeMin <= 0 || c.StarSizeMax <= c.StarSizeMin {
		return errors.Newf(op, errors.KindConfig, "star size range [%g, %g) is invalid", c.StarSizeMin, c.StarSizeMax)
	}
	if c.MaxFlakes <= 1 {
		return errors.Newf(op, errors.KindConfig, "max flakes %d leaves an empty draw range [1, %d)", c.MaxFlakes, c.MaxFlakes)
	}
	if c.GroundFlakes <= 0 {
		return errors.Newf(op, errors.KindConfig, "ground flake count %d is not positive", c.GroundFlakes)
	}
	if c.GroundDepth <= 0 || c.GroundDepth > c.Bounds.Height() {
		return errors.Newf(op, errors.KindConfig, "ground depth %g does not fit the scene height %g", c.GroundDepth, c.Bounds.Height())
	}
	if c.SnowStart < 0 || c.SnowStop <= c.SnowStart {
		return errors.Newf(op, errors.KindConfig, "snow window [%d, %d) is empty or inverted", c.SnowStart, c.SnowStop)
	}
	if c.NiceNightAt <= 0 || c.LookSnowingAt <= 0 || c.GoodMorningAt <= 0 {
		return errors.Newf(op, errors.KindConfig, "message trigger instants must be positive")
	}
	if c.LookSnowingAt < c.NiceNightAt || c.GoodMorningAt < c.LookSnowingAt {
		return errors.Newf(op, errors.KindConfig, "message triggers are out of order")
	}
	return nil
}

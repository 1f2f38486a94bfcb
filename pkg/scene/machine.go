// Package scene derives a full visual snapshot of the night from a single
// virtual-time value.
//
// The state machine is deliberately thin on persistent state: across ticks
// it keeps only the star field (generated exactly once, at construction)
// and the last triggered message. Everything else in a [SceneState] is a
// pure function of the elapsed time plus fresh draws from the injected
// random source, so a seeded source reproduces a night exactly.
package scene

import (
	"github.com/go-nocturne/nocturne/pkg/graphics"
	"github.com/go-nocturne/nocturne/pkg/random"
	"github.com/go-nocturne/nocturne/pkg/timeline"
)

// Machine computes one SceneState per clock tick.
type Machine struct {
	cfg    Config
	colors graphics.ColorSource
	rng    random.Source

	ticks       int
	stars       []Star
	lastMessage Message
}

// NewMachine builds a state machine and generates the static star field.
// A nil colors falls back to the stock dawn palette; a nil rng falls back
// to a time-seeded source.
func NewMachine(cfg Config, colors graphics.ColorSource, rng random.Source) (*Machine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if colors == nil {
		colors = graphics.DefaultSkyPalette()
	}
	if rng == nil {
		rng = random.New()
	}
	m := &Machine{cfg: cfg, colors: colors, rng: rng}
	m.generateStars()
	return m, nil
}

// generateStars places the star field over the upper half of the scene.
// Runs once, before the first tick; stars do not move.
func (m *Machine) generateStars() {
	bounds := m.cfg.Bounds
	m.stars = make([]Star, m.cfg.StarCount)
	for i := range m.stars {
		m.stars[i] = Star{
			Position: graphics.Offset{
				X: m.rng.Float64Between(bounds.Left, bounds.Right),
				Y: m.rng.Float64Between(bounds.Top, bounds.Center().Y),
			},
			Size: m.rng.Float64Between(m.cfg.StarSizeMin, m.cfg.StarSizeMax),
		}
	}
}

// Stars returns the static star field.
func (m *Machine) Stars() []Star {
	return m.stars
}

// Config returns the machine's scene configuration.
func (m *Machine) Config() Config {
	return m.cfg
}

// Tick derives the scene snapshot for the given virtual time.
//
// elapsed is seconds since midnight as reported by the virtual clock,
// unwrapped. Tick never fails: the one anticipated fault, a sky color
// index past the end of the table, is recovered locally by leaving the
// sky untinted.
func (m *Machine) Tick(elapsed int) SceneState {
	m.ticks++
	state := SceneState{
		Tick:         m.ticks,
		Elapsed:      elapsed,
		ClockText:    timeline.FormatClock(elapsed),
		StarsVisible: true,
		Stars:        m.stars,
	}

	if elapsed > MidnightOffset {
		index := elapsed - MidnightOffset
		if c, ok := m.colors.ColorAt(index); ok {
			state.SkyTint = true
			state.SkyColorIndex = index
			state.SkyColor = c
		}
		// An index past the table end means sunrise is over; the sky
		// simply stays black.
	}

	state.Snowing = m.cfg.SnowStart <= elapsed && elapsed < m.cfg.SnowStop
	if state.Snowing {
		state.Snowflakes = m.scatter(m.rng.IntBetween(1, m.cfg.MaxFlakes), m.cfg.Bounds)
		groundStrip := m.cfg.Bounds
		groundStrip.Top = groundStrip.Bottom - m.cfg.GroundDepth
		state.GroundSnow = m.scatter(m.cfg.GroundFlakes, groundStrip)
	}

	switch elapsed {
	case m.cfg.NiceNightAt:
		m.lastMessage = MessageNiceNight
	case m.cfg.LookSnowingAt:
		m.lastMessage = MessageLookSnowing
	case m.cfg.GoodMorningAt:
		m.lastMessage = MessageGoodMorning
	}
	state.Message = m.lastMessage

	return state
}

// scatter draws count uniform positions over the given region.
func (m *Machine) scatter(count int, region graphics.Rect) []graphics.Offset {
	points := make([]graphics.Offset, count)
	for i := range points {
		points[i] = graphics.Offset{
			X: m.rng.Float64Between(region.Left, region.Right),
			Y: m.rng.Float64Between(region.Top, region.Bottom),
		}
	}
	return points
}

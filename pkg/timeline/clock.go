// Package timeline provides the virtual clock that drives the night.
//
// Virtual time counts seconds from local midnight (00:00) and is decoupled
// from wall-clock playback: every frame advances the clock by the same fixed
// delta regardless of how fast frames render. The accumulator is real-valued
// and never wraps; only the display string reduces hours modulo 24, so a
// virtual time past midnight still prints as a sensible next-day clock while
// Elapsed() keeps increasing linearly.
package timeline

import (
	"fmt"

	"github.com/go-nocturne/nocturne/pkg/errors"
)

// SecondsPerDay is the number of virtual seconds in one display day.
const SecondsPerDay = 24 * 60 * 60

// ClockConfig describes a virtual night.
type ClockConfig struct {
	// OffsetSeconds is the virtual time at tick zero, in seconds since
	// midnight (72000 = 20:00).
	OffsetSeconds int

	// VirtualDuration is the total virtual span of the run, in seconds.
	VirtualDuration int

	// FrameCount is the number of ticks the run is divided into.
	FrameCount int
}

// Clock owns a monotonically increasing virtual-time value.
//
// The accumulator advances by exactly secondsPerTick per Advance call and is
// kept in full floating-point precision internally; consumers read the
// truncated integer view through Elapsed.
type Clock struct {
	seconds        float64
	ticks          int
	secondsPerTick float64
}

// NewClock creates a clock positioned at the configured offset.
func NewClock(cfg ClockConfig) (*Clock, error) {
	const op = "timeline.NewClock"
	if cfg.OffsetSeconds < 0 {
		return nil, errors.Newf(op, errors.KindConfig, "offset %d is negative", cfg.OffsetSeconds)
	}
	if cfg.VirtualDuration <= 0 {
		return nil, errors.Newf(op, errors.KindConfig, "virtual duration %d is not positive", cfg.VirtualDuration)
	}
	if cfg.FrameCount <= 0 {
		return nil, errors.Newf(op, errors.KindConfig, "frame count %d is not positive", cfg.FrameCount)
	}
	return &Clock{
		seconds:        float64(cfg.OffsetSeconds),
		secondsPerTick: float64(cfg.VirtualDuration) / float64(cfg.FrameCount),
	}, nil
}

// Advance moves virtual time forward by one tick.
func (c *Clock) Advance() {
	c.ticks++
	c.seconds += c.secondsPerTick
}

// Elapsed returns virtual seconds since midnight, truncated to an integer.
// The value is never reduced modulo a day; a run that crosses midnight keeps
// counting past 86400.
func (c *Clock) Elapsed() int {
	return int(c.seconds)
}

// Ticks returns the number of Advance calls performed.
func (c *Clock) Ticks() int {
	return c.ticks
}

// SecondsPerTick returns the fixed virtual-time delta applied per tick.
func (c *Clock) SecondsPerTick() float64 {
	return c.secondsPerTick
}

// String formats the current virtual time as HH:MM:SS, wrapping hours
// modulo 24.
func (c *Clock) String() string {
	return FormatClock(c.Elapsed())
}

// FormatClock renders seconds-since-midnight as an HH:MM:SS wall-clock
// string. Hours wrap modulo 24 so values past 86400 display as next-day
// times.
func FormatClock(seconds int) string {
	h := (seconds / 3600) % 24
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Package random provides the uniform randomness seam used by the scene
// state machine. Production code uses a time-seeded source; tests inject a
// fixed seed to make scene snapshots reproducible.
package random

import (
	"math/rand"
	"time"
)

// Source produces uniform random draws over caller-supplied ranges.
type Source interface {
	// Float64Between returns a uniform draw from [min, max).
	Float64Between(min, max float64) float64

	// IntBetween returns a uniform integer draw from [min, max).
	IntBetween(min, max int) int
}

// seeded wraps a math/rand generator behind the Source interface.
type seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic source from the given seed.
func NewSeeded(seed int64) Source {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

// New creates a source seeded from the current time.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

func (s *seeded) Float64Between(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

func (s *seeded) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}

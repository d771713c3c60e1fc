package sim

import "math/rand/v2"

// IntervalSource produces uniformly distributed values in [min, max).
// Every random decision of the simulation goes through it, so a seeded
// source makes a game fully reproducible.
type IntervalSource interface {
	Between(min, max float64) float64
}

// RandSource is an IntervalSource backed by a seeded PCG generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source whose sequence is fixed by seed.
func NewRandSource(seed uint64) *RandSource {
	return &RandSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Between returns a uniform value in [min, max).
func (s *RandSource) Between(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

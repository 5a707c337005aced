package core

import "math/rand/v2"

// Source yields uniformly distributed values in [0, 1). Steppers take one as
// a capability instead of reaching for a global generator so runs can be
// replayed.
type Source interface {
	Float64() float64
}

// Seeder is implemented by sources that can be rewound to a known seed.
type Seeder interface {
	Seed(seed int64)
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the stream from seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

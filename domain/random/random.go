// Package random is the randomness service injected into every component
// that rolls dice: the deck shuffle, the scripted betting policy and the
// anomaly engine. Production code builds a seeded Source so a whole
// session can be replayed; tests script exact sequences with Script.
package random

import "math/rand"

// Source is the randomness contract shared by the game components.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Between returns a value in [lo, hi], both ends inclusive.
	Between(lo, hi int) int
	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

type seeded struct {
	rnd *rand.Rand
}

// New returns a Source backed by math/rand and the given seed.
func New(seed int64) Source {
	return &seeded{rnd: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Float64() float64 {
	return s.rnd.Float64()
}

func (s *seeded) Intn(n int) int {
	return s.rnd.Intn(n)
}

func (s *seeded) Between(lo, hi int) int {
	return lo + s.rnd.Intn(hi-lo+1)
}

func (s *seeded) Shuffle(n int, swap func(i, j int)) {
	s.rnd.Shuffle(n, swap)
}

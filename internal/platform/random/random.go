// Package random provides the bounded random-integer source the
// simulation engine draws from.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source produces bounded random integers. The engine owns exactly one
// mutable Source; tests substitute a deterministic sequence.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

// Seeded is a Source backed by a seeded math/rand generator.
//
// # Determinism
//
// Two Seeded values built from the same seed produce identical
// sequences for identical call patterns.
type Seeded struct {
	rng *rand.Rand
}

func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) IntN(n int) int {
	return s.rng.Intn(n)
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Between returns a uniform integer in [lo, hi), matching the
// half-open convention used throughout the resolvers.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo)
}

// Percent reports whether a single percentile roll lands under chance.
// A chance of 0 never passes and 100 always passes.
func Percent(src Source, chance int) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 100 {
		return true
	}
	return src.IntN(100) < chance
}

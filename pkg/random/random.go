// Package random provides the uniform draws used to animate and commit dice.
//
// Source is deterministic with respect to its seed: two sources built from the
// same seed produce the same sequence, which is what the headless roll command
// and the tests rely on. NewSeed produces a high-entropy seed from crypto/rand.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/aretw0/tumble/pkg/ports"
)

// Source is a seeded PRNG implementing ports.Random.
// It is not safe for concurrent use; the engine only draws from its own loop.
type Source struct {
	rng  *rand.Rand
	seed int64
}

var _ ports.Random = (*Source)(nil)

// New creates a source from seed. A zero seed is replaced by a fresh one.
func New(seed int64) *Source {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			s = time.Now().UnixNano()
		}
		seed = s
	}
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the source was built from.
func (s *Source) Seed() int64 {
	return s.seed
}

// Roll returns a uniform value in [1, n]. For n <= 0 it returns 0.
func (s *Source) Roll(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n) + 1
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Scripted replays a fixed list of draws, cycling when exhausted. Each value
// is clamped into [1, n] for the requested n. It is meant for tests and demos.
type Scripted struct {
	values []int
	next   int
	calls  int
}

var _ ports.Random = (*Scripted)(nil)

// NewScripted creates a scripted source. With no values it always returns 1.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Roll implements ports.Random.
func (s *Scripted) Roll(n int) int {
	s.calls++
	if n <= 0 {
		return 0
	}
	v := 1
	if len(s.values) > 0 {
		v = s.values[s.next%len(s.values)]
		s.next++
	}
	if v < 1 {
		v = 1
	}
	if v > n {
		v = n
	}
	return v
}

// Calls returns how many draws were requested.
func (s *Scripted) Calls() int {
	return s.calls
}

// Package proptest provides property-based testing utilities with seeded
// random generation for reproducible tests.
//
// Property-based testing generates random inputs and verifies that
// certain invariants (properties) always hold. When a test fails, the
// seed is logged so the failure can be reproduced.
package proptest

import (
	"math/rand"
	"testing"
	"time"
)

// Config controls a property check run.
type Config struct {
	// NumTrials is the number of random inputs to try. Defaults to 100.
	NumTrials int
	// Seed fixes the generator seed; 0 means derive one from the clock.
	Seed int64
}

// Check runs the property against NumTrials random inputs and fails the
// test on the first input for which it returns false, logging the seed
// so the run can be reproduced.
func Check(t *testing.T, name string, cfg Config, property func(*Generator) bool) {
	t.Helper()
	trials := cfg.NumTrials
	if trials <= 0 {
		trials = 100
	}
	g := New(cfg.Seed)
	for i := 0; i < trials; i++ {
		if !property(g) {
			t.Errorf("property %q failed on trial %d (seed %d)", name, i, g.Seed())
			return
		}
	}
}

// Generator wraps a seeded random number generator for reproducible
// random value generation. The seed is stored so it can be logged
// on test failure for reproducibility.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// New creates a new Generator with the given seed.
// If seed is 0, uses the current time as the seed.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used by this generator.
// This is useful for logging on test failure so the failure can be reproduced.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a random int in [0, n).
// Panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}

// IntRange returns a random int in [min, max].
// Panics if min > max.
func (g *Generator) IntRange(min, max int) int {
	if min > max {
		panic("proptest: IntRange min > max")
	}
	return min + g.rng.Intn(max-min+1)
}

// Int64 returns a non-negative random int64.
func (g *Generator) Int64() int64 {
	return g.rng.Int63()
}

// Float64 returns a random float64 in [0.0, 1.0).
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// Bool returns a random boolean with 50% probability for each value.
func (g *Generator) Bool() bool {
	return g.rng.Intn(2) == 1
}

// BoolWithProb returns true with the given probability (0.0 to 1.0).
func (g *Generator) BoolWithProb(prob float64) bool {
	return g.rng.Float64() < prob
}

const identChars = "abcdefghijklmnopqrstuvwxyz_"

// Ident returns a random lowercase identifier of length [1, maxLen].
func (g *Generator) Ident(maxLen int) string {
	if maxLen < 1 {
		maxLen = 1
	}
	length := g.IntRange(1, maxLen)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = identChars[g.Intn(len(identChars))]
	}
	return string(buf)
}

// OneOf returns a random element from the provided values.
// Panics if values is empty.
func OneOf[T any](g *Generator, values ...T) T {
	if len(values) == 0 {
		panic("proptest: OneOf called with no values")
	}
	return values[g.Intn(len(values))]
}

// OneOfFunc calls a random generator function from the provided functions.
// Panics if fns is empty.
func OneOfFunc[T any](g *Generator, fns ...func(*Generator) T) T {
	if len(fns) == 0 {
		panic("proptest: OneOfFunc called with no functions")
	}
	return fns[g.Intn(len(fns))](g)
}

// Pick returns a random element from a non-empty slice.
// Panics if slice is empty.
func Pick[T any](g *Generator, slice []T) T {
	if len(slice) == 0 {
		panic("proptest: Pick called with empty slice")
	}
	return slice[g.Intn(len(slice))]
}

// Slice generates a slice of length [0, maxLen] using the generator function.
func Slice[T any](g *Generator, maxLen int, gen func(*Generator) T) []T {
	if maxLen <= 0 {
		return nil
	}
	return SliceN(g, 0, maxLen, gen)
}

// SliceN generates a slice of length [minLen, maxLen] using the generator function.
func SliceN[T any](g *Generator, minLen, maxLen int, gen func(*Generator) T) []T {
	if minLen > maxLen {
		panic("proptest: SliceN minLen > maxLen")
	}
	length := g.IntRange(minLen, maxLen)
	result := make([]T, length)
	for i := range result {
		result[i] = gen(g)
	}
	return result
}

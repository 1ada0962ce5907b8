// SPDX-License-Identifier: MIT
// Package matrix - random fills.
//
// A nil *rand.Rand means the process-wide math/rand source, which the runtime
// seeds on start-up; pass NewRand(seed) for reproducible fixtures.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - The package-level source is safe for concurrent use.

package matrix

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// NewRandom returns an n×n Dense whose entries are independent draws from U[0,1).
// Cells are filled in row-major order, one draw per cell, so a seeded rng
// always produces the same matrix.
//
// n == 0 yields an empty 0×0 matrix.
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewRandom(n int, rng *rand.Rand) (*Dense, error) {
	m, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	// Float64 yields values in [0,1); always finite, so Apply cannot fail here.
	if err = m.Apply(func(_, _ int, _ float64) float64 { return draw() }); err != nil {
		return nil, matrixErrorf(opRandom, err)
	}

	return m, nil
}

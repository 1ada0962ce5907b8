// SPDX-License-Identifier: MIT
// Package matrix — public constructors.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for building inputs.
//   - Each constructor delegates allocation to NewDense (single source of shape policy).

package matrix

import "fmt"

// Constructor tags for error wrapping.
const (
	opIdentity = "NewIdentity"
	opFromRows = "NewFromRows"
	opRandom   = "NewRandom"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	// Direct writes: indices are valid by construction.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a Dense from row literals, copying the values.
// All rows must be non-empty and share one length.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRaggedRows when row lengths differ.
//   - ErrNaNInf when a literal is not finite.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), m.c, ErrRaggedRows))
		}
		for j = 0; j < m.c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}


// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels.
//   • Bridge to gonum so products can be checked against an independent implementation.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matbench/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set fallback path.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from row literals or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts that m equals the row literals bit-for-bit.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ beyond rtol=%g atol=%g", rtol, atol)
}

// toGonum copies m into a gonum *mat.Dense (row-major, same shape).
func toGonum(t *testing.T, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = MustAt(t, m, i, j)
		}
	}

	return mat.NewDense(r, c, data)
}

// requireMatchesGonum asserts that got ≈ want (a gonum matrix) cell by cell.
func requireMatchesGonum(t *testing.T, want *mat.Dense, got matrix.Matrix, tol float64) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows())
	require.Equal(t, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}

func mustRandom(b *testing.B, n int, seed int64) *matrix.Dense {
	m, err := matrix.NewRandom(n, matrix.NewRand(seed))
	if err != nil {
		b.Fatalf("NewRandom(%d): %v", n, err)
	}

	return m
}

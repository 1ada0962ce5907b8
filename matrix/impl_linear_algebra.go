// SPDX-License-Identifier: MIT
// Package matrix provides the benchmark kernels on any Matrix implementation:
// naive multiplication, trace and a tolerance comparison. All functions
// perform fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels use central validators and wrap failures via matrixErrorf.
//   - *Dense operands take a flat-slice path; the loop order never changes between paths.

package matrix

import (
	"fmt"
	"math"
)

// zeroSum is the initial value of every accumulation.
const zeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opTrace    = "Trace"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs the classical matrix product C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: allocate zeroed C, then i→j→k with a scalar accumulator per cell.
//     Two *Dense operands index the flat buffers directly; anything else goes through At.
//
// Behavior highlights:
//   - Intentionally naive: no blocking, no zero-skip, no loop interchange, no goroutines.
//     The benchmark compares exactly this loop nest across languages.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c); empty operands give an empty product.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		sum     float64
	)

	// Fast-path for two Dense matrices.
	// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for j = 0; j < bCols; j++ {
					sum = zeroSum
					for k = 0; k < aCols; k++ {
						sum += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					res.data[rowOffsetR+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop, same i→j→k order.
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = zeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] over the diagonal of a square matrix; 0 for a 0×0 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := m.Rows()
	sum := zeroSum

	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}

		return sum, nil
	}

	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected with ErrNaNInf.
//   - a and b must be non-nil and have identical shapes.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early exit on first violation
			}
		}
	}

	return true, nil
}

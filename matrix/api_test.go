package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/matrix"
)

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewFromRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestNewRandomRange checks shape and the half-open [0,1) range for several sizes.
func TestNewRandomRange(t *testing.T) {
	for _, n := range []int{1, 2, 17, 100} {
		m, err := matrix.NewRandom(n, nil) // process-wide source
		require.NoError(t, err)
		require.Equal(t, n, m.Rows())
		require.Equal(t, n, m.Cols())
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := MustAt(t, m, i, j)
				require.GreaterOrEqual(t, v, 0.0)
				require.Less(t, v, 1.0)
			}
		}
	}
}

func TestNewRandomInvalid(t *testing.T) {
	_, err := matrix.NewRandom(-1, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewRandomEmpty checks that size 0 flows through every kernel.
func TestNewRandomEmpty(t *testing.T) {
	m, err := matrix.NewRandom(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, "", m.String())

	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Zero(t, tr)

	c, err := matrix.Mul(m, m)
	require.NoError(t, err)
	require.Equal(t, 0, c.Rows())
	require.Equal(t, 0, c.Cols())

	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewRandomSeedDeterminism verifies that equal seeds give equal matrices
// and that cells follow the rng stream in row-major order.
func TestNewRandomSeedDeterminism(t *testing.T) {
	a, err := matrix.NewRandom(4, matrix.NewRand(42))
	require.NoError(t, err)
	b, err := matrix.NewRandom(4, matrix.NewRand(42))
	require.NoError(t, err)
	CompareClose(t, a, b, 0, 0)

	ref := rand.New(rand.NewSource(42))
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, ref.Float64(), MustAt(t, a, i, j))
		}
	}

	// seed 0 falls back to the fixed default seed
	z1, err := matrix.NewRandom(3, matrix.NewRand(0))
	require.NoError(t, err)
	z2, err := matrix.NewRandom(3, matrix.NewRand(1))
	require.NoError(t, err)
	CompareClose(t, z1, z2, 0, 0)
}

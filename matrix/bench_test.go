// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 100, 128} { // limits it so that CI doesn't burn
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustRandom(b, n, 101)
			B := mustRandom(b, n, 202)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkNewRandom(b *testing.B) {
	b.ReportAllocs()
	rng := matrix.NewRand(9)
	for i := 0; i < b.N; i++ {
		m, err := matrix.NewRandom(100, rng)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkTrace(b *testing.B) {
	A := mustRandom(b, 512, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, err := matrix.Trace(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = tr
	}
}

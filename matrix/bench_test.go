// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/csaps/matrix"
)

// benchmarkBandSolve factorizes an n×n pentadiagonal system and solves m
// right-hand sides per iteration.
func benchmarkBandSolve(b *testing.B, n, m int) {
	a, err := matrix.NewSymBand[float64](n, 2)
	if err != nil {
		b.Fatalf("NewSymBand: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = a.Set(i, i, 6)
		if i+1 < n {
			_ = a.Set(i, i+1, -1)
		}
		if i+2 < n {
			_ = a.Set(i, i+2, 0.1)
		}
	}
	rhs, _ := matrix.NewDense[float64](n, m)
	for i := range rhs.RawData() {
		rhs.RawData()[i] = float64(i % 7)
	}
	dst, _ := matrix.NewDense[float64](n, m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var chol matrix.BandCholesky[float64]
		if err = chol.Factorize(a); err != nil {
			b.Fatalf("Factorize: %v", err)
		}
		if err = chol.SolveTo(dst, rhs); err != nil {
			b.Fatalf("SolveTo: %v", err)
		}
	}
}

// BenchmarkBandSolve_1k_1 benchmarks a single-channel 1000-site system.
func BenchmarkBandSolve_1k_1(b *testing.B) { benchmarkBandSolve(b, 1000, 1) }

// BenchmarkBandSolve_1k_16 benchmarks sixteen channels sharing one factorization.
func BenchmarkBandSolve_1k_16(b *testing.B) { benchmarkBandSolve(b, 1000, 16) }

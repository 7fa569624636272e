package matrix_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/matrix"
)

// benchmarkMatVec runs MatVec over an n×n matrix, optionally hiding the
// concrete type to measure the interface fallback.
func benchmarkMatVec(b *testing.B, n int, fallback bool) {
	m, err := matrix.FromFunc(n, n, func(i, j int) float64 { return float64(i - j) })
	if err != nil {
		b.Fatalf("FromFunc: %v", err)
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	var a matrix.Matrix = m
	if fallback {
		a = hide{m}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.MatVec(a, x); err != nil {
			b.Fatalf("MatVec failed: %v", err)
		}
	}
}

// BenchmarkMatVec_Dense100 measures the *Dense fast-path on 100×100.
func BenchmarkMatVec_Dense100(b *testing.B) { benchmarkMatVec(b, 100, false) }

// BenchmarkMatVec_Fallback100 measures the At-based path on 100×100.
func BenchmarkMatVec_Fallback100(b *testing.B) { benchmarkMatVec(b, 100, true) }

// BenchmarkMatVec_Dense500 measures the *Dense fast-path on 500×500.
func BenchmarkMatVec_Dense500(b *testing.B) { benchmarkMatVec(b, 500, false) }

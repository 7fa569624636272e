package axb_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/axb"
	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
)

// benchmarkSolve runs alg on an n×n tridiagonal, strictly diagonally dominant system.
func benchmarkSolve(b *testing.B, alg axb.Algorithm, n int) {
	a, err := matrix.FromFunc(n, n, func(i, j int) float64 {
		switch {
		case i == j:
			return 4
		case i-j == 1 || j-i == 1:
			return -1
		default:
			return 0
		}
	})
	if err != nil {
		b.Fatalf("FromFunc: %v", err)
	}
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = 1
	}
	s, _ := fixedpoint.NewSettings(1e-10, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = axb.Solve(alg, a, rhs, s); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkPointJacobi_100(b *testing.B)       { benchmarkSolve(b, axb.AlgPointJacobi, 100) }
func BenchmarkGaussSeidel_100(b *testing.B)       { benchmarkSolve(b, axb.AlgGaussSeidel, 100) }
func BenchmarkConjugateGradient_100(b *testing.B) { benchmarkSolve(b, axb.AlgConjugateGradient, 100) }

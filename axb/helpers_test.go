package axb_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hide wraps a Matrix so solvers take their non-*Dense path.
type hide struct{ matrix.Matrix }

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

func mustSettings(t testing.TB, tol float64, maxIter int) fixedpoint.Settings {
	t.Helper()
	s, err := fixedpoint.NewSettings(tol, maxIter)
	require.NoError(t, err)

	return s
}

// directSolve is the gonum LU reference solution.
func directSolve(t testing.TB, a *matrix.Dense, b []float64) []float64 {
	t.Helper()
	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	var x mat.VecDense
	require.NoError(t, x.SolveVec(g, mat.NewVecDense(len(b), append([]float64(nil), b...))))

	return x.RawVector().Data
}

// twoByTwo is 4x+y=1, 2x+3y=2 with solution (0.1, 0.6).
func twoByTwo(t testing.TB) (*matrix.Dense, []float64) {
	return mustRows(t, [][]float64{{4, 1}, {2, 3}}), []float64{1, 2}
}

// fourByFour is symmetric, strictly diagonally dominant, solution (1, 2, -1, 1).
func fourByFour(t testing.TB) (*matrix.Dense, []float64) {
	return mustRows(t, [][]float64{
		{10, -1, 2, 0},
		{-1, 11, -1, 3},
		{2, -1, 10, -1},
		{0, 3, -1, 8},
	}), []float64{6, 25, -11, 15}
}

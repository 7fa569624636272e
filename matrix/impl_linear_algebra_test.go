package matrix_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestMatVec checks the Dense fast-path against the interface fallback.
func TestMatVec(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	yf, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	require.Equal(t, y, yf, "fast-path and fallback must agree")

	_, err = matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// Zero columns produce a zero vector of length rows.
	y, err = matrix.MatVec(MustDense(t, 2, 0), nil)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, y)
}

// TestResidual checks r = b - A·x on an exact and an inexact candidate.
func TestResidual(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{4, 1, 2, 3})
	b := []float64{1, 2}

	r, err := matrix.Residual(a, []float64{0.1, 0.6}, b)
	require.NoError(t, err)
	assert.InDelta(t, 0, r[0], 1e-14)
	assert.InDelta(t, 0, r[1], 1e-14)

	r, err = matrix.Residual(a, []float64{0, 0}, b)
	require.NoError(t, err)
	require.Equal(t, b, r)

	rf, err := matrix.Residual(hide{a}, []float64{1, 1}, b)
	require.NoError(t, err)
	require.Equal(t, []float64{-4, -3}, rf)

	_, err = matrix.Residual(a, []float64{1}, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Residual(a, []float64{1, 1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// In-place on b.
	dst := append([]float64(nil), b...)
	require.NoError(t, matrix.ResidualInto(dst, a, []float64{0.25, 0}, dst))
	require.Equal(t, []float64{0, 1.5}, dst)
}

// TestGonumRoundTrip converts to gonum, solves directly, and converts back.
func TestGonumRoundTrip(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{4, 1, 2, 3})

	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	require.Equal(t, 3.0, g.At(1, 1))

	var x mat.VecDense
	require.NoError(t, x.SolveVec(g, mat.NewVecDense(2, []float64{1, 2})))
	assert.InDelta(t, 0.1, x.AtVec(0), 1e-12)
	assert.InDelta(t, 0.6, x.AtVec(1), 1e-12)

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.True(t, back.Equal(a))

	// Mutating the gonum copy leaves the source untouched.
	g.Set(0, 0, 100)
	v, _ := a.At(0, 0)
	require.Equal(t, 4.0, v)

	_, err = matrix.ToGonum(MustDense(t, 0, 0))
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestExtractInPlace checks the destructive L/D splits.
func TestExtractInPlace(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{
		4, 1, 2,
		5, 6, 3,
		7, 8, 9,
	})

	l, err := matrix.ExtractLowerUnitInPlace(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 5, 1, 0, 7, 8, 1}, l.RawData())
	require.Equal(t, []float64{4, 1, 2, 0, 6, 3, 0, 0, 9}, a.RawData())

	d, err := matrix.ExtractDiagonalInPlace(a)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6, 9}, d)
	require.Equal(t, []float64{0, 1, 2, 0, 0, 3, 0, 0, 0}, a.RawData())

	_, err = matrix.ExtractLowerUnitInPlace(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.ExtractDiagonalInPlace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/itersolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateLinearSystem walks the check order with one failing input per step.
func TestValidateLinearSystem(t *testing.T) {
	t.Parallel()

	good := NewFilledDense(t, 2, 2, []float64{4, 1, 2, 3})
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a       matrix.Matrix
		b       []float64
		wantErr error
	}{
		{"nil matrix", nil, []float64{1}, matrix.ErrNilMatrix},
		{"typed nil", typedNil, []float64{1}, matrix.ErrNilMatrix},
		{"empty", MustDense(t, 0, 0), nil, matrix.ErrEmpty},
		{"non-square", MustDense(t, 2, 3), []float64{1, 2}, matrix.ErrNonSquare},
		{"short rhs", good, []float64{1}, matrix.ErrDimensionMismatch},
		{"nan entry", NewFilledDense(t, 1, 1, []float64{math.NaN()}), []float64{1}, matrix.ErrNaNInf},
		{"inf rhs", good, []float64{1, math.Inf(-1)}, matrix.ErrNaNInf},
		{"zero diagonal", NewFilledDense(t, 2, 2, []float64{0, 1, 1, 1}), []float64{1, 1}, matrix.ErrZeroDiagonal},
		{"near-zero diagonal", NewFilledDense(t, 2, 2, []float64{1, 1, 1, 1e-9}), []float64{1, 1}, matrix.ErrZeroDiagonal},
		{"ok", good, []float64{1, 2}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateLinearSystem(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateFiniteFallback exercises the interface path of ValidateFinite.
func TestValidateFiniteFallback(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, math.Inf(1)})
	require.ErrorIs(t, matrix.ValidateFinite(hide{m}), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(hide{NewFilledDense(t, 1, 2, []float64{1, 2})}))
}

// TestValidateSymmetric covers symmetric, asymmetric and non-square input.
func TestValidateSymmetric(t *testing.T) {
	sym := NewFilledDense(t, 3, 3, []float64{4, 1, 0, 1, 3, 2, 0, 2, 5})
	require.NoError(t, matrix.ValidateSymmetric(sym, 1e-12))

	asym := NewFilledDense(t, 2, 2, []float64{4, 1, 2, 3})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-12), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 1.5), "within a loose tolerance")

	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
}

// TestIsDiagonallyDominant covers both outcomes and the non-square guard.
func TestIsDiagonallyDominant(t *testing.T) {
	require.True(t, matrix.IsDiagonallyDominant(NewFilledDense(t, 2, 2, []float64{4, 1, 2, 3})))
	require.True(t, matrix.IsDiagonallyDominant(NewFilledDense(t, 2, 2, []float64{1, -1, 1, 1})), "equality is enough")
	require.False(t, matrix.IsDiagonallyDominant(NewFilledDense(t, 2, 2, []float64{1, 2, 0, 1})))
	require.False(t, matrix.IsDiagonallyDominant(MustDense(t, 2, 3)))
	require.False(t, matrix.IsDiagonallyDominant(nil))
}

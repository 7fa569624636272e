// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels used by the iterative solvers.
//
// Purpose:
//   - MatVec (y = A·x) and Residual (r = b - A·x) with *Dense fast-paths.
//   - Interop with gonum/mat for callers that need factorizations or a direct
//     reference solve.
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opResidual = "Residual"
	opToGonum  = "ToGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one gonum floats.Dot per row over the flat buffer.
// Determinism: fixed row order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())

	if d, ok := m.(*Dense); ok {
		d.mulVecInto(y, x)

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// mulVecInto writes A·x into dst. Preconditions: len(dst)==r, len(x)==c.
func (m *Dense) mulVecInto(dst, x []float64) {
	if m.c == 0 {
		for i := range dst {
			dst[i] = 0
		}

		return
	}
	for i := 0; i < m.r; i++ {
		dst[i] = floats.Dot(m.rawRow(i), x)
	}
}

// Residual returns r = b - A·x for the square-or-rectangular system A·x = b.
//
// Contract: len(x) == A.Cols(), len(b) == A.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Residual").
// Complexity: O(r*c).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	r := make([]float64, len(b))
	if err := ResidualInto(r, a, x, b); err != nil {
		return nil, err
	}

	return r, nil
}

// ResidualInto writes b - A·x into dst without allocating.
// dst may alias b.
func ResidualInto(dst []float64, a Matrix, x, b []float64) error {
	if err := ValidateVecLen(dst, a.Rows()); err != nil {
		return matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return matrixErrorf(opResidual, err)
	}
	if d, ok := a.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			dst[i] = b[i] - floats.Dot(d.rawRow(i), x)
		}

		return nil
	}
	ax, err := MatVec(a, x)
	if err != nil {
		return matrixErrorf(opResidual, err)
	}
	floats.SubTo(dst, b, ax)

	return nil
}

// ToGonum copies m into a gonum *mat.Dense.
// Errors: ErrNilMatrix, ErrEmpty (gonum forbids zero-sized dense matrices).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}
	if m.Empty() {
		return nil, matrixErrorf(opToGonum, ErrEmpty)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
func FromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()

	return FromFunc(r, c, g.At)
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the precondition checks
//     every iterative solver runs at its entry point.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     add their own context and callers can still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → NonEmpty → Square → ...).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/itersolve/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty rejects matrices with zero rows or zero columns.
// Assumes m is not nil.
func ValidateNonEmpty(m Matrix) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmpty)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is accepted only when n == 0.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateNonZeroDiagonal rejects a square matrix with any diagonal entry
// close to zero under numeric.IsClose(A[i,i], 0).
// Assumes m is non-nil and square.
// Complexity: O(n).
func ValidateNonZeroDiagonal(m Matrix) error {
	n := m.Rows()
	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateNonZeroDiagonal", err)
		}
		if numeric.IsClose(v, 0) {
			return validatorErrorf("ValidateNonZeroDiagonal", fmt.Errorf("A[%d,%d]=%g: %w", i, i, v, ErrZeroDiagonal))
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries in m.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("A[%d,%d]=%g: %w", idx/d.c, idx%d.c, v, ErrNaNInf))
			}
		}

		return nil
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("A[%d,%d]=%g: %w", i, j, v, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateFiniteVec rejects NaN and ±Inf entries in x.
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFiniteVec", fmt.Errorf("x[%d]=%g: %w", i, v, ErrNaNInf))
		}
	}

	return nil
}

// ValidateSymmetric checks |A[i,j]-A[j,i]| <= tol for every i<j.
// Assumes m is non-nil.
// Errors: ErrNonSquare, ErrAsymmetry (with the first offending pair).
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.Rows()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("A[%d,%d]=%g != A[%d,%d]=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}

// IsDiagonallyDominant reports whether |A[i,i]| >= Σ_{j≠i} |A[i,j]| holds
// for every row of the square matrix m. Non-square input reports false.
func IsDiagonallyDominant(m Matrix) bool {
	if m == nil || m.Rows() != m.Cols() {
		return false
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		var off, diag float64
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			if i == j {
				diag = math.Abs(v)
				continue
			}
			off += math.Abs(v)
		}
		if diag < off {
			return false
		}
	}

	return true
}

// ValidateLinearSystem runs the shared solver-entry checks in a fixed order:
// NotNil → NonEmpty → Square → VecLen(b) → Finite(A) → FiniteVec(b) → NonZeroDiagonal.
func ValidateLinearSystem(a Matrix, b []float64) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNonEmpty(a); err != nil {
		return err
	}
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return err
	}
	if err := ValidateFinite(a); err != nil {
		return err
	}
	if err := ValidateFiniteVec(b); err != nil {
		return err
	}

	return ValidateNonZeroDiagonal(a)
}

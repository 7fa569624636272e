// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ExtractLowerUnitInPlace moves the strict lower triangle of a into a new
// unit lower-triangular matrix L and zeroes it in a.
//
// After the call a holds only its diagonal and upper triangle, and
// L = I + strict_lower(a). The input is consumed in place.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func ExtractLowerUnitInPlace(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("ExtractLowerUnitInPlace: %w", ErrNilMatrix)
	}
	if !a.IsSquare() {
		return nil, fmt.Errorf("ExtractLowerUnitInPlace: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}
	l, err := Eye(a.r, a.c)
	if err != nil {
		return nil, err
	}
	var i, j, off int
	for i = 0; i < a.r; i++ {
		for j = 0; j < i; j++ {
			off = i*a.c + j
			l.data[off], a.data[off] = a.data[off], 0 // swap, L starts at 0 below the diagonal
		}
	}

	return l, nil
}

// ExtractDiagonalInPlace returns the diagonal of a and zeroes it in a.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func ExtractDiagonalInPlace(a *Dense) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("ExtractDiagonalInPlace: %w", ErrNilMatrix)
	}
	if !a.IsSquare() {
		return nil, fmt.Errorf("ExtractDiagonalInPlace: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}
	d := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		off := i*a.c + i
		d[i], a.data[off] = a.data[off], 0
	}

	return d, nil
}

// Diagonal returns a copy of the main diagonal of m (length min(rows, cols)).
func (m *Dense) Diagonal() []float64 {
	n := min(m.r, m.c)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i*m.c+i]
	}

	return d
}

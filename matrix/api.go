// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Purpose:
//   - Collect every Dense factory in one place: explicit data, generator
//     function, identity-like.
//   - All factories validate shape first and never return a partially built matrix.

package matrix

import "fmt"

// NewDenseFrom builds a rows×cols Dense from a row-major element list.
// The slice is copied; later mutations of data do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity: O(rows*cols).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): got %d elements: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// NewDenseRows builds a Dense from a slice of equal-length rows.
// An empty rows slice yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch for ragged input (wrapped with the offending row).
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromFunc builds a rows×cols Dense with A[i,j] = f(i,j).
//
// Implementation:
//   - Stage 1: validate shape.
//   - Stage 2: call f in row-major order (i ascending, then j ascending).
//
// Behavior highlights:
//   - The call order is part of the contract: readers rely on it to consume
//     a token stream while filling the matrix.
//
// Complexity: O(rows*cols) calls to f.
func FromFunc(rows, cols int, f func(i, j int) float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			m.data[base+j] = f(i, j)
		}
	}

	return m, nil
}

// Eye builds a rows×cols identity-like matrix: ones on the main diagonal
// (i == j for i < min(rows, cols)), zeros elsewhere.
func Eye(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		m.data[i*cols+i] = 1
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) { return Eye(n, n) }

// CloneMatrix returns a deep copy of m, or nil for a nil input.
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

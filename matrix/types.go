// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface and the Symmetry selector.
package matrix

import "fmt"

// Matrix represents a two-dimensional mutable array of float64 values.
// Algorithms accept Matrix and fast-path on *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Symmetry selects which entries of a matrix are populated from input;
// the remaining entries default to zero.
//
// The byte values match the single-letter codes used in problem files.
type Symmetry byte

const (
	// General populates every entry.
	General Symmetry = 'G'

	// Lower populates entries with row >= col (lower triangle, diagonal included).
	Lower Symmetry = 'L'

	// Upper populates entries with row <= col (upper triangle, diagonal included).
	Upper Symmetry = 'U'

	// Diagonal populates entries with row == col.
	Diagonal Symmetry = 'D'
)

// Selects reports whether entry (row, col) is populated under s.
// Unknown symmetry values select nothing.
// Complexity: O(1).
func (s Symmetry) Selects(row, col int) bool {
	switch s {
	case General:
		return true
	case Lower:
		return row >= col
	case Upper:
		return row <= col
	case Diagonal:
		return row == col
	default:
		return false
	}
}

// Valid reports whether s is one of the known symmetry codes.
func (s Symmetry) Valid() bool {
	switch s {
	case General, Lower, Upper, Diagonal:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Symmetry) String() string {
	switch s {
	case General:
		return "general"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Symmetry(%q)", byte(s))
	}
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the checked surface: At/Set/Row return errors instead of panicking.
//   - Offer unchecked accessors for solver hot loops whose bounds are validated once up front.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// maxElements bounds rows*cols so the backing slice is always allocatable.
const maxElements = min(math.MaxInt/8, 1<<40)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of rows*cols elements.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal and report Empty() == true.
//   - Negative dimensions never produce a partially built value.
//   - A shape whose element count overflows int or exceeds maxElements is
//     rejected before anything is allocated.
//
// Errors:
//   - ErrInvalidDimensions (wrapped with the requested shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if cols != 0 && rows > maxElements/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): more than %d elements: %w", rows, cols, maxElements, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Size returns rows*cols, the number of stored elements.
func (m *Dense) Size() int { return len(m.data) }

// Empty reports whether the matrix stores no elements (Size() == 0).
func (m *Dense) Empty() bool { return len(m.data) == 0 }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped with
// the caller's method tag, the offending index and the valid half-open ranges.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): valid range [0,%d)x[0,%d): %w",
			method, row, col, m.r, m.c, ErrOutOfRange)
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// Offset returns the linear storage offset of (row, col), bounds-checked.
// It is the same offset UncheckedAt reads for in-range indices.
func (m *Dense) Offset(row, col int) (int, error) {
	return m.indexOf("Offset", row, col)
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; the error names the index and the range.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// UncheckedAt returns the value at (row, col) without validating the indices.
// Precondition: 0 <= row < Rows() and 0 <= col < Cols(). Violations either
// panic or silently read a neighbouring element; use At for untrusted input.
// Complexity: O(1).
func (m *Dense) UncheckedAt(row, col int) float64 { return m.data[row*m.c+col] }

// UncheckedSet stores v at (row, col) without validating the indices.
// Precondition: same as UncheckedAt.
func (m *Dense) UncheckedSet(row, col int, v float64) { m.data[row*m.c+col] = v }

// Row returns a no-copy view over row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(1).
func (m *Dense) Row(i int) (RowView, error) {
	if i < 0 || i >= m.r {
		return RowView{}, fmt.Errorf("Dense.%s(%d): valid range [0,%d): %w", ctxRow, i, m.r, ErrOutOfRange)
	}

	return RowView{data: m.rawRow(i)}, nil
}

// rawRow returns the backing sub-slice of row i with capacity clipped to the row.
func (m *Dense) rawRow(i int) []float64 {
	lo := i * m.c

	return m.data[lo : lo+m.c : lo+m.c]
}

// Equal reports structural equality: identical shape and identical elements.
// Dense values of different shapes are never equal. NaN entries compare unequal.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense is Clone with the concrete return type.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawData exposes the row-major backing slice. Mutations write through.
func (m *Dense) RawData() []float64 { return m.data }

// String implements fmt.Stringer for easy debugging ("[1, 2]\n[3, 4]\n").
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// RowView is a no-copy window over a single Dense row.
// It shares storage with the matrix: writes through Set are visible in the
// matrix and vice versa. The zero RowView has length 0.
type RowView struct {
	data []float64
}

// Len returns the number of elements in the row (the matrix column count).
func (v RowView) Len() int { return len(v.data) }

// At returns element j of the row or ErrOutOfRange.
func (v RowView) At(j int) (float64, error) {
	if j < 0 || j >= len(v.data) {
		return 0, fmt.Errorf("RowView.At(%d): valid range [0,%d): %w", j, len(v.data), ErrOutOfRange)
	}

	return v.data[j], nil
}

// Set writes element j of the row through to the matrix or returns ErrOutOfRange.
func (v RowView) Set(j int, x float64) error {
	if j < 0 || j >= len(v.data) {
		return fmt.Errorf("RowView.Set(%d): valid range [0,%d): %w", j, len(v.data), ErrOutOfRange)
	}
	v.data[j] = x

	return nil
}

// Values returns the shared backing slice of the row (capacity clipped).
func (v RowView) Values() []float64 { return v.data }

// Sum returns the sum of the row elements.
func (v RowView) Sum() float64 {
	var s float64
	for _, x := range v.data {
		s += x
	}

	return s
}

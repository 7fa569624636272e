// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with
// context via %w); tests and callers match them with errors.Is.
// Panics are reserved for the Unchecked* accessors, whose bounds are the
// caller's responsibility.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Context is
// added at the detection site as fmt.Errorf("Tag: ...: %w", ErrX).

var (
	// ErrInvalidDimensions indicates that a requested dimension is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Checked indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(x) != Cols() in MatVec or len(data) != rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmpty signals a 0×0 (or otherwise zero-sized) matrix where a
	// non-degenerate system is required.
	ErrEmpty = errors.New("matrix: matrix is empty")

	// ErrZeroDiagonal signals a diagonal entry that is zero (or close to zero
	// under numeric.IsClose) where division by A[i,i] is required.
	ErrZeroDiagonal = errors.New("matrix: zero diagonal entry")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not,
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Package matrix provides the dense, row-major storage consumed by the
// iterative solvers in itersolve.
//
// The matrix package provides:
//
//   - Dense: a rows×cols float64 matrix backed by one contiguous slice
//     (offset = i*cols + j). Zero-sized shapes are legal; negative ones are not.
//   - Checked access (At/Set) that returns ErrOutOfRange with the offending
//     index and the valid half-open range, and unchecked access
//     (UncheckedAt/UncheckedSet) for hot loops whose bounds are already known.
//   - RowView: a no-copy window over one row.
//   - Factories: NewDense, NewDenseFrom, FromFunc, Eye, NewIdentity.
//   - Validators used at solver entry points (square, non-empty, vector
//     length, non-zero diagonal, finite values, symmetry).
//   - MatVec and Residual (b - A·x), plus gonum interop via ToGonum.
//   - ExtractLowerUnitInPlace / ExtractDiagonalInPlace destructive splits.
//
// Symmetry describes which entries a reader populates (diagonal, lower,
// upper, general); the selection itself is applied by the reader through
// FromFunc, not stored on the matrix.
//
// Complexity:
//
//	Rows/Cols/At/Set/Row run in O(1); Clone, Equal and FromFunc in O(rows*cols);
//	MatVec and Residual in O(rows*cols).
package matrix

// SPDX-License-Identifier: MIT

// Package axb solves square linear systems A·x = b by stationary and Krylov
// iterations driven by the fixedpoint engine.
//
// Methods:
//
//   - PointJacobi: every row of one sweep reads the previous iterate only.
//     Two buffers, swapped at the end of each sweep.
//   - GaussSeidel: rows are updated in ascending order, in place, so row i
//     reads the values of rows j < i produced in the same sweep.
//   - SOR: Gauss-Seidel ordering blended with the previous value by the
//     relaxation factor ω. ω = 1 is exactly Gauss-Seidel.
//   - ConjugateGradient: for symmetric positive definite systems. The
//     recursive residual is refreshed from b - A·x every ResidualRefresh
//     iterations.
//
// Contract (all methods):
//
//   - A square, non-empty, finite, with no diagonal entry close to zero.
//   - len(b) == A.Rows(); b finite.
//   - The initial iterate is the zero vector; A and b are never mutated.
//   - Violations are returned as wrapped matrix sentinels
//     (ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrDimensionMismatch,
//     ErrNaNInf, ErrZeroDiagonal). Non-convergence is not an error.
//
// Convergence:
//
//	RelativeChange (default) stops when MaxRelDiff(x_k, x_{k-1}) < tol.
//	Residual stops when MaxAbs(b - A·x_k) < tol. Independently of the
//	criterion, every Result carries ResidualError = MaxAbs(b - A·x).
//
// Complexity:
//
//	One sweep costs O(n²) for a dense n×n system; memory O(n).
package axb

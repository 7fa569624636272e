// SPDX-License-Identifier: MIT

// Package numeric provides tolerance-based scalar comparison and the
// error metrics shared by every iterative solver in itersolve.
//
// What's inside:
//
//   - IsClose / Closeness - |a-b| tests under a Relative (asymmetric,
//     reference-scaled) or Symmetric policy.
//   - AbsDiff, RelDiff, RelErr - scalar difference and error metrics with
//     explicit zero guards.
//   - MaxAbs, MaxAbsDiff, MaxRelDiff, MaxRelErr - max-reductions over
//     equal-length sequences (empty input reduces to 0).
//   - Dot, NormL2 - thin wrappers over gonum/floats used by CG and power
//     iteration.
//
// Policy note:
//
//	IsClose under the default Relative policy is NOT symmetric: the
//	tolerance scales with the second argument, which is treated as the
//	reference value. Use Closeness{Policy: Symmetric} when argument order
//	must not matter.
//
// Defaults:
//
//	DefaultRelTol = 1e-5, DefaultAbsTol = 1e-5.
package numeric

// SPDX-License-Identifier: MIT

// Package fixedpoint provides a generic fixed-point iteration engine.
//
// What:
//
//	Given a step g, an initial state x0 and a convergence criterion, Iterate
//	repeatedly applies x_{k+1} = g(x_k) until the criterion reports the
//	error between two consecutive states is below the tolerance, or until
//	the iteration budget is exhausted.
//
// Why:
//
//   - Jacobi, Gauss-Seidel, SOR, conjugate gradients and power iteration all
//     share the same outer loop. Only the step and the criterion change.
//   - The engine is generic over the state type, so a step may carry
//     auxiliary data (a search direction, a running residual) alongside
//     the iterate.
//
// Contract:
//
//   - Non-convergence is not an error: Result.Converged is false and
//     Result.Iters equals the budget.
//   - A criterion that succeeds on the final allowed iteration reports
//     Converged=true.
//   - Step.Apply must leave its input unchanged (or at least unchanged in
//     anything the criterion reads) until the criterion for that pair has
//     run. Ping-pong buffers satisfy this.
//
// Complexity:
//
//	O(MaxIter · (cost(step) + cost(criterion))), O(1) extra space.
package fixedpoint

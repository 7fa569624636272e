// SPDX-License-Identifier: MIT

// Package itersolve is a small toolkit for solving dense linear systems
// A·x = b with stationary and Krylov iterations, and for estimating the
// dominant eigenpair of a square matrix.
//
// What is inside?
//
//	numeric/    – tolerance-aware comparisons and max-norm difference reductions
//	matrix/     – checked row-major Dense storage, residuals, validators, gonum bridge
//	fixedpoint/ – generic fixed-point engine: Settings, Step, Criterion, Result
//	axb/        – Point-Jacobi, Gauss-Seidel, SOR and Conjugate Gradient solvers
//	eig/        – power iteration for the dominant eigenvalue
//	problem/    – whitespace-token readers/writers, YAML config, test-system generator
//	cmd/        – the itersolve CLI (solve, compare, generate)
//
// Every solver is a Step plugged into fixedpoint.Iterate, so they share a
// single iteration budget, convergence test and observer/logging hooks:
//
//	a, _ := matrix.NewDenseRows([][]float64{{4, 1}, {2, 3}})
//	s, _ := fixedpoint.NewSettings(1e-10, 100)
//	res, err := axb.GaussSeidel(a, []float64{1, 2}, s)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res) // Converged at iteration #N: ...
//
// The convergence measure defaults to the max-norm relative change between
// consecutive iterates; axb.WithCriterion(axb.Residual) switches to the
// max-norm of b − A·x instead. Either way every Result reports both values.
//
// All sub-packages return sentinel errors wrapped with context, so callers
// branch with errors.Is:
//
//	if errors.Is(err, matrix.ErrZeroDiagonal) { ... }
package itersolve

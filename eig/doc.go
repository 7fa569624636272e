// SPDX-License-Identifier: MIT

// Package eig estimates the dominant eigenpair of a square matrix by power
// iteration on the fixedpoint engine.
//
// Starting from e₀, each step computes y = A·x and rescales it by its
// largest-magnitude component (sign kept) so the next iterate has that
// component equal to 1. Convergence is MaxRelDiff(x_k, x_{k-1}) < tol.
// The eigenvalue is the Rayleigh quotient λ = xᵀA·x / xᵀx of the final x.
//
// The method converges when A has a single eigenvalue of strictly largest
// modulus and e₀ is not orthogonal to its eigenvector; the rate is
// |λ₂/λ₁| per iteration.
package eig

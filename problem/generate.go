// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"

	"github.com/katalvlaran/itersolve/matrix"
)

// DiagonallyDominant builds the n×n benchmark system
//
//	A[i,j] = -1/(i+j)            for i ≠ j (1-based i, j)
//	A[i,i] = 1/n - Σ_{j≠i} A[i,j]
//	b      = (1, ..., 1)
//
// A is symmetric and strictly diagonally dominant by 1/n in every row, so
// Jacobi, Gauss-Seidel and CG all converge on it.
//
// Errors: ErrInvalidRank when n <= 0.
// Complexity: O(n²).
func DiagonallyDominant(n int) (System, error) {
	if n <= 0 {
		return System{}, fmt.Errorf("DiagonallyDominant(%d): %w", n, ErrInvalidRank)
	}
	a, err := matrix.FromFunc(n, n, func(i, j int) float64 {
		if i == j {
			return 0
		}

		return -1 / float64(i+1+j+1)
	})
	if err != nil {
		return System{}, err
	}
	for i := 0; i < n; i++ {
		row, _ := a.Row(i)
		a.UncheckedSet(i, i, 1/float64(n)-row.Sum())
	}
	b := make([]float64, n)
	for i := range b {
		b[i] = 1
	}

	return System{A: a, B: b}, nil
}

// SPDX-License-Identifier: MIT

package axb

import (
	"fmt"

	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
)

// JacobiStep is one Point Jacobi sweep:
//
//	x_next[i] = (b[i] - Σ_{j≠i} A[i,j]·x_prev[j]) / A[i,i]
//
// Every row reads x_prev only. The step owns two buffers and writes into
// the one not holding the previous iterate, so a returned slice stays
// valid until the second following Apply.
type JacobiStep struct {
	a    *matrix.Dense
	b    []float64
	buf  [2][]float64
	slot int
}

// NewJacobiStep validates the system and allocates the sweep buffers.
func NewJacobiStep(a matrix.Matrix, b []float64) (*JacobiStep, error) {
	if err := matrix.ValidateLinearSystem(a, b); err != nil {
		return nil, fmt.Errorf("NewJacobiStep: %w", err)
	}

	return newJacobiStep(asDense(a), b), nil
}

func newJacobiStep(a *matrix.Dense, b []float64) *JacobiStep {
	n := len(b)

	return &JacobiStep{a: a, b: b, buf: [2][]float64{make([]float64, n), make([]float64, n)}}
}

// Apply performs one sweep from prev and returns the new iterate.
// Complexity: O(n²).
func (s *JacobiStep) Apply(prev []float64) []float64 {
	next := s.buf[s.slot]
	s.slot ^= 1

	n := len(s.b)
	data := s.a.RawData()
	var (
		i, j  int
		sigma float64
		row   []float64
	)
	for i = 0; i < n; i++ {
		row = data[i*n : (i+1)*n]
		sigma = 0
		for j = 0; j < n; j++ {
			if j != i {
				sigma += row[j] * prev[j]
			}
		}
		next[i] = (s.b[i] - sigma) / row[i]
	}

	return next
}

// PointJacobi solves A·x = b by Point Jacobi iteration from x0 = 0.
//
// Options: WithCriterion, WithLogger, WithObserver.
// Errors: entry validation (see package doc), fixedpoint.ErrInvalidSettings.
func PointJacobi(a matrix.Matrix, b []float64, s fixedpoint.Settings, opts ...Option) (Result, error) {
	d, err := prepare(opPointJacobi, a, b, s)
	if err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts)

	return runStationary(AlgPointJacobi, d, b, newJacobiStep(d, b), s, o), nil
}

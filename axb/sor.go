// SPDX-License-Identifier: MIT

package axb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
)

// SORStep is one successive over-relaxation sweep in ascending row order:
//
//	x[i] = (1-ω)·x_prev[i] + ω·(b[i] - Σ_{j<i} A[i,j]·x[j] - Σ_{j>i} A[i,j]·x_prev[j]) / A[i,i]
//
// The sweep runs in place on a single working vector that starts as a copy
// of x_prev, so rows j < i are read already updated. The previous iterate
// itself is left intact for the criterion. ω = 1 is Gauss-Seidel.
type SORStep struct {
	a     *matrix.Dense
	b     []float64
	omega float64
	buf   [2][]float64
	slot  int
}

// NewSORStep validates the system and ω and allocates the sweep buffers.
func NewSORStep(a matrix.Matrix, b []float64, omega float64) (*SORStep, error) {
	if err := matrix.ValidateLinearSystem(a, b); err != nil {
		return nil, fmt.Errorf("NewSORStep: %w", err)
	}
	if err := validateOmega(omega); err != nil {
		return nil, fmt.Errorf("NewSORStep: %w", err)
	}

	return newSORStep(asDense(a), b, omega), nil
}

func newSORStep(a *matrix.Dense, b []float64, omega float64) *SORStep {
	n := len(b)

	return &SORStep{a: a, b: b, omega: omega, buf: [2][]float64{make([]float64, n), make([]float64, n)}}
}

// Omega returns the relaxation factor.
func (s *SORStep) Omega() float64 { return s.omega }

// Apply performs one in-place sweep starting from prev and returns it.
// Complexity: O(n²).
func (s *SORStep) Apply(prev []float64) []float64 {
	x := s.buf[s.slot]
	s.slot ^= 1
	copy(x, prev)

	n := len(s.b)
	data := s.a.RawData()
	w := s.omega
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
				sigma += row[j] * x[j] // j<i already updated this sweep
			}
		}
		x[i] = (1-w)*prev[i] + w*(s.b[i]-sigma)/row[i]
	}

	return x
}

func validateOmega(omega float64) error {
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		return fmt.Errorf("omega=%g: %w", omega, ErrInvalidRelaxation)
	}

	return nil
}

// SOR solves A·x = b by successive over-relaxation with factor omega.
//
// omega must be finite (ErrInvalidRelaxation). Values outside (0, 2) are
// accepted and reported as a warning through WithLogger.
//
// Options: WithCriterion, WithLogger, WithObserver.
func SOR(a matrix.Matrix, b []float64, omega float64, s fixedpoint.Settings, opts ...Option) (Result, error) {
	return sor(opSOR, AlgSOR, a, b, omega, s, opts)
}

// GaussSeidel solves A·x = b by Gauss-Seidel iteration, i.e. SOR with ω = 1.
func GaussSeidel(a matrix.Matrix, b []float64, s fixedpoint.Settings, opts ...Option) (Result, error) {
	return sor(opGaussSeidel, AlgGaussSeidel, a, b, 1, s, opts)
}

func sor(tag string, alg Algorithm, a matrix.Matrix, b []float64, omega float64, s fixedpoint.Settings, opts []Option) (Result, error) {
	if err := validateOmega(omega); err != nil {
		return Result{}, fmt.Errorf("%s: %w", tag, err)
	}
	d, err := prepare(tag, a, b, s)
	if err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts)
	if o.logger != nil && (omega <= 0 || omega >= 2) {
		o.logger.Warn("relaxation factor outside (0, 2), iteration may diverge", "omega", omega)
	}

	return runStationary(alg, d, b, newSORStep(d, b, omega), s, o), nil
}

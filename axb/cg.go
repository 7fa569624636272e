// SPDX-License-Identifier: MIT

package axb

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
)

// CGState is the conjugate-gradient iteration state.
type CGState struct {
	X  []float64 // iterate
	R  []float64 // residual b - A·X (recursive between refreshes)
	P  []float64 // search direction
	RR float64   // R·R
	K  int       // iterations taken
}

// CGStep is one conjugate-gradient iteration:
//
//	α = (r·r)/(p·Ap);  x += α·p;  r -= α·Ap;  β = (r'·r')/(r·r);  p = r' + β·p
//
// Every refresh-th iteration r is recomputed as b - A·x to bound the drift
// of the recursive update. Two workspaces alternate so the incoming state
// is never overwritten.
type CGStep struct {
	a       *matrix.Dense
	b       []float64
	refresh int
	ws      [2]CGState
	ap      []float64
	slot    int
}

// NewCGStep validates A·x = b (including symmetry) and allocates workspaces.
// refresh <= 0 selects DefaultResidualRefresh.
func NewCGStep(a matrix.Matrix, b []float64, refresh int) (*CGStep, error) {
	if err := validateCG(a, b); err != nil {
		return nil, fmt.Errorf("NewCGStep: %w", err)
	}
	if refresh <= 0 {
		refresh = DefaultResidualRefresh
	}

	return newCGStep(asDense(a), b, refresh), nil
}

func newCGStep(a *matrix.Dense, b []float64, refresh int) *CGStep {
	n := len(b)
	s := &CGStep{a: a, b: b, refresh: refresh, ap: make([]float64, n)}
	for k := range s.ws {
		s.ws[k] = CGState{X: make([]float64, n), R: make([]float64, n), P: make([]float64, n)}
	}

	return s
}

// Init returns the state for x0 = 0: r0 = p0 = b.
func (s *CGStep) Init() CGState {
	n := len(s.b)
	st := CGState{X: make([]float64, n), R: make([]float64, n), P: make([]float64, n)}
	copy(st.R, s.b)
	copy(st.P, s.b)
	st.RR = floats.Dot(st.R, st.R)

	return st
}

// Apply advances prev by one iteration. A state with a zero residual is
// returned as an unchanged copy.
func (s *CGStep) Apply(prev CGState) CGState {
	next := s.ws[s.slot]
	s.slot ^= 1
	copy(next.X, prev.X)
	copy(next.R, prev.R)
	copy(next.P, prev.P)
	next.RR, next.K = prev.RR, prev.K+1

	if prev.RR == 0 {
		return next
	}

	n := len(s.b)
	data := s.a.RawData()
	for i := 0; i < n; i++ {
		s.ap[i] = floats.Dot(data[i*n:(i+1)*n], prev.P)
	}
	pap := floats.Dot(prev.P, s.ap)
	if pap == 0 {
		return next
	}
	alpha := prev.RR / pap
	floats.AddScaled(next.X, alpha, prev.P)
	if next.K%s.refresh == 0 {
		_ = matrix.ResidualInto(next.R, s.a, next.X, s.b)
	} else {
		floats.AddScaled(next.R, -alpha, s.ap)
	}
	next.RR = floats.Dot(next.R, next.R)
	beta := next.RR / prev.RR
	floats.AddScaledTo(next.P, next.R, beta, prev.P)

	return next
}

// relativeResidual returns ‖r‖₂/‖b‖₂, or ‖r‖₂ when b = 0.
func relativeResidual(bNorm float64) fixedpoint.ErrorFunc[CGState] {
	return func(st CGState) float64 {
		rn := math.Sqrt(st.RR)
		if bNorm == 0 {
			return rn
		}

		return rn / bNorm
	}
}

func validateCG(a matrix.Matrix, b []float64) error {
	if err := matrix.ValidateLinearSystem(a, b); err != nil {
		return err
	}

	return matrix.ValidateSymmetric(a, symmetryTol)
}

// ConjugateGradient solves a symmetric positive definite system A·x = b from x0 = 0.
//
// Convergence uses ‖r‖₂/‖b‖₂ < tol regardless of WithCriterion.
// Options: WithResidualRefresh, WithLogger, WithObserver.
// Errors: entry validation, matrix.ErrAsymmetry, fixedpoint.ErrInvalidSettings.
// Definiteness is not checked; an indefinite A may fail to converge.
func ConjugateGradient(a matrix.Matrix, b []float64, s fixedpoint.Settings, opts ...Option) (Result, error) {
	if err := validateCG(a, b); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCG, err)
	}
	d, err := prepare(opCG, a, b, s)
	if err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts)

	step := newCGStep(d, b, o.refresh)
	res := fixedpoint.Iterate[CGState](step, step.Init(), relativeResidual(floats.Norm(b, 2)), s, o.engineOptions()...)

	return finish(AlgConjugateGradient, d, b, res.X.X, res.Converged, res.Iters, res.Error, o), nil
}

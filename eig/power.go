// SPDX-License-Identifier: MIT

package eig

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/numeric"
)

// ErrDegenerate indicates that A·x vanished, so no direction can be normalised.
var ErrDegenerate = errors.New("eig: A·x is the zero vector")

const opPower = "PowerIteration"

// Result is the outcome of PowerIteration.
type Result struct {
	Eigenvalue  float64   // Rayleigh quotient of Eigenvector (see PowerIteration)
	Eigenvector []float64 // largest-magnitude component equals 1
	Converged   bool
	Iters       int
	Error       float64 // last MaxRelDiff between consecutive vectors
}

// String implements fmt.Stringer.
func (r Result) String() string {
	head := "Converged at iteration"
	if !r.Converged {
		head = "Failed to converge in"
	}

	return fmt.Sprintf("%s #%d:\n\tEigenvalue: %.12g\n\tRelative error: %12.6e", head, r.Iters, r.Eigenvalue, r.Error)
}

// Option configures PowerIteration.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer func(fixedpoint.Iteration)
}

// WithLogger forwards per-iteration debug records to l.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// WithObserver receives every engine Iteration.
func WithObserver(fn func(fixedpoint.Iteration)) Option {
	return func(o *options) { o.observer = fn }
}

// state is one power-iteration iterate.
type state struct {
	x          []float64
	degenerate bool
}

// powerStep owns two vectors and alternates between them.
type powerStep struct {
	a    *matrix.Dense
	buf  [2][]float64
	slot int
}

func (p *powerStep) Apply(prev state) state {
	y := p.buf[p.slot]
	p.slot ^= 1

	n := len(y)
	data := p.a.RawData()
	for i := 0; i < n; i++ {
		y[i] = floats.Dot(data[i*n:(i+1)*n], prev.x)
	}
	scale := dominant(y)
	if scale == 0 {
		return state{x: y, degenerate: true}
	}
	floats.Scale(1/scale, y)

	return state{x: y}
}

// dominant returns the entry of largest magnitude, keeping its sign.
// The first such entry wins ties.
func dominant(v []float64) float64 {
	var best float64
	for _, x := range v {
		if math.Abs(x) > math.Abs(best) {
			best = x
		}
	}

	return best
}

type powerCriterion struct{}

func (powerCriterion) Check(next, prev state, tol float64) (bool, float64) {
	if next.degenerate {
		return true, math.Inf(1)
	}
	d, _ := numeric.MaxRelDiff(next.x, prev.x)

	return d < tol, d
}

// PowerIteration estimates the eigenvalue of largest modulus of the square
// matrix a and its eigenvector.
//
// Implementation:
//   - Stage 1: validate (non-nil, non-empty, square, finite) and settings.
//   - Stage 2: iterate x ← A·x / dominant(A·x) from e₀ on fixedpoint.Iterate.
//   - Stage 3: report λ as the Rayleigh quotient of the final vector.
//
// Behavior highlights:
//   - For symmetric A the Rayleigh quotient error is quadratic in the
//     eigenvector error. For non-symmetric A it is only linear, so λ is as
//     accurate as Eigenvector and matches the dominant eigenvalue only once
//     the iteration has converged. A non-converged Result on non-symmetric
//     input carries no eigenvalue guarantee.
//
// Errors: matrix sentinels from validation, fixedpoint.ErrInvalidSettings,
// ErrDegenerate when A·x = 0 at some step.
// Complexity: O(iters · n²).
func PowerIteration(a matrix.Matrix, s fixedpoint.Settings, opts ...Option) (Result, error) {
	if err := validate(a); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opPower, err)
	}
	if !s.Valid() {
		return Result{}, fmt.Errorf("%s: %s: %w", opPower, s, fixedpoint.ErrInvalidSettings)
	}
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	d, ok := a.(*matrix.Dense)
	if !ok {
		d, _ = matrix.FromFunc(a.Rows(), a.Cols(), func(i, j int) float64 {
			v, _ := a.At(i, j)
			return v
		})
	}
	n := d.Rows()
	x0 := make([]float64, n)
	x0[0] = 1
	step := &powerStep{a: d, buf: [2][]float64{make([]float64, n), make([]float64, n)}}

	res := fixedpoint.Iterate[state](step, state{x: x0}, powerCriterion{}, s,
		fixedpoint.WithLogger(o.logger), fixedpoint.WithObserver(o.observer))
	if res.X.degenerate {
		return Result{}, fmt.Errorf("%s: iteration %d: %w", opPower, res.Iters, ErrDegenerate)
	}

	vec := append([]float64(nil), res.X.x...)
	ax, err := matrix.MatVec(d, vec)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opPower, err)
	}

	return Result{
		Eigenvalue:  floats.Dot(vec, ax) / floats.Dot(vec, vec),
		Eigenvector: vec,
		Converged:   res.Converged,
		Iters:       res.Iters,
		Error:       res.Error,
	}, nil
}

func validate(a matrix.Matrix) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateNonEmpty(a); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}

	return matrix.ValidateFinite(a)
}

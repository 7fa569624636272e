// SPDX-License-Identifier: MIT

package fixedpoint

import (
	"context"
	"log/slog"
	"math"
)

// Step maps one state to the next: x_{k+1} = Apply(x_k).
type Step[S any] interface {
	Apply(x S) S
}

// StepFunc adapts an ordinary function to Step.
type StepFunc[S any] func(x S) S

// Apply calls f(x).
func (f StepFunc[S]) Apply(x S) S { return f(x) }

// Criterion decides convergence for a consecutive pair of states.
// Check returns whether the pair is converged under tol together with the
// error value that decision was based on.
type Criterion[S any] interface {
	Check(next, prev S, tol float64) (bool, float64)
}

// DeltaFunc measures the error between two consecutive states.
// Converged when the error is strictly below the tolerance.
type DeltaFunc[S any] func(next, prev S) float64

// Check implements Criterion.
func (f DeltaFunc[S]) Check(next, prev S, tol float64) (bool, float64) {
	e := f(next, prev)

	return e < tol, e
}

// ErrorFunc measures the error of a single state (typically a residual norm).
// Converged when the error is strictly below the tolerance.
type ErrorFunc[S any] func(x S) float64

// Check implements Criterion; prev is ignored.
func (f ErrorFunc[S]) Check(next, _ S, tol float64) (bool, float64) {
	e := f(next)

	return e < tol, e
}

// PredicateFunc is a boolean convergence test.
// The reported error is 0 when the predicate holds and +Inf otherwise.
type PredicateFunc[S any] func(next, prev S, tol float64) bool

// Check implements Criterion.
func (f PredicateFunc[S]) Check(next, prev S, tol float64) (bool, float64) {
	if f(next, prev, tol) {
		return true, 0
	}

	return false, math.Inf(1)
}

// Iteration is the per-step record handed to observers.
type Iteration struct {
	Iter  int     // 1-based iteration number
	Error float64 // criterion error for (x_Iter, x_{Iter-1})
}

// Result is the outcome of Iterate.
type Result[S any] struct {
	X         S       // last computed state
	Converged bool    // criterion succeeded within the budget
	Iters     int     // iterations performed (== MaxIter when not converged)
	Error     float64 // last criterion error
}

// Option configures Iterate.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer func(Iteration)
}

// WithLogger emits one debug record per iteration and a summary record.
// A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver registers fn to receive every Iteration in order.
func WithObserver(fn func(Iteration)) Option {
	return func(o *options) { o.observer = fn }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Iterate runs the fixed-point loop.
//
// Implementation:
//   - Stage 1: x := x0; lastErr := +Inf.
//   - Stage 2: for i = 1..MaxIter: next := step.Apply(x); test (next, x)
//     with the criterion; on success return {next, true, i, err}.
//   - Stage 3: after the budget return {last, false, MaxIter, lastErr}.
//
// Behavior highlights:
//   - The criterion runs before x is replaced, so success on iteration
//     MaxIter is reported as converged.
//   - With an invalid (zero) Settings no step is applied and x0 is returned
//     with Iters=0.
//
// Complexity: O(MaxIter) step and criterion calls.
func Iterate[S any](step Step[S], x0 S, criterion Criterion[S], s Settings, opts ...Option) Result[S] {
	o := gatherOptions(opts)
	tol, maxIter := s.Tolerance(), s.MaxIter()

	x := x0
	lastErr := math.Inf(1)
	var (
		next S
		ok   bool
	)
	for i := 1; i <= maxIter; i++ {
		next = step.Apply(x)
		ok, lastErr = criterion.Check(next, x, tol)
		o.record(i, maxIter, lastErr)
		if ok {
			o.summary(true, i, lastErr)

			return Result[S]{X: next, Converged: true, Iters: i, Error: lastErr}
		}
		x = next
	}
	o.summary(false, maxIter, lastErr)

	return Result[S]{X: x, Converged: false, Iters: maxIter, Error: lastErr}
}

func (o *options) record(i, maxIter int, e float64) {
	if o.observer != nil {
		o.observer(Iteration{Iter: i, Error: e})
	}
	if o.logger != nil && o.logger.Enabled(context.Background(), slog.LevelDebug) {
		o.logger.Debug("fixed-point iteration", "iter", i, "max_iter", maxIter, "error", e)
	}
}

func (o *options) summary(converged bool, iters int, e float64) {
	if o.logger == nil {
		return
	}
	o.logger.Debug("fixed-point done", "converged", converged, "iters", iters, "error", e)
}

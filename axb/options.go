// SPDX-License-Identifier: MIT

package axb

import (
	"log/slog"

	"github.com/katalvlaran/itersolve/fixedpoint"
)

// Defaults for the functional options.
const (
	// DefaultRelaxation is the SOR factor used by Solve when WithRelaxation is absent.
	DefaultRelaxation = 1.0

	// DefaultResidualRefresh is how often ConjugateGradient recomputes b - A·x.
	DefaultResidualRefresh = 10

	// symmetryTol is the absolute tolerance for the CG symmetry check.
	symmetryTol = 1e-10
)

const (
	panicRefreshInvalid   = "axb: WithResidualRefresh: n must be positive"
	panicCriterionInvalid = "axb: WithCriterion: unknown criterion kind"
)

// Option configures a solver call.
type Option func(*options)

type options struct {
	criterion CriterionKind
	omega     float64
	refresh   int
	logger    *slog.Logger
	observer  func(fixedpoint.Iteration)
}

func defaultOptions() options {
	return options{
		criterion: RelativeChange,
		omega:     DefaultRelaxation,
		refresh:   DefaultResidualRefresh,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithCriterion selects the convergence test of PointJacobi, GaussSeidel and SOR.
// ConjugateGradient always uses the relative residual norm.
// Panics when c is neither RelativeChange nor Residual.
func WithCriterion(c CriterionKind) Option {
	if c != RelativeChange && c != Residual {
		panic(panicCriterionInvalid)
	}

	return func(o *options) { o.criterion = c }
}

// WithRelaxation supplies ω for AlgSOR when dispatching through Solve.
// The value is validated by SOR itself.
func WithRelaxation(omega float64) Option {
	return func(o *options) { o.omega = omega }
}

// WithResidualRefresh sets the CG true-residual refresh period.
// Panics when n <= 0.
func WithResidualRefresh(n int) Option {
	if n <= 0 {
		panic(panicRefreshInvalid)
	}

	return func(o *options) { o.refresh = n }
}

// WithLogger routes per-iteration debug records and solver warnings to l.
// Without it nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver receives every engine Iteration in order.
func WithObserver(fn func(fixedpoint.Iteration)) Option {
	return func(o *options) { o.observer = fn }
}

// engineOptions translates solver options into fixedpoint options.
func (o options) engineOptions() []fixedpoint.Option {
	return []fixedpoint.Option{
		fixedpoint.WithLogger(o.logger),
		fixedpoint.WithObserver(o.observer),
	}
}

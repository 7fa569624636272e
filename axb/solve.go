// SPDX-License-Identifier: MIT

package axb

import (
	"fmt"

	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/numeric"
)

// Operation tags for error wrapping.
const (
	opPointJacobi = "PointJacobi"
	opGaussSeidel = "GaussSeidel"
	opSOR         = "SOR"
	opCG          = "ConjugateGradient"
	opSolve       = "Solve"
)

// Solve dispatches to the solver selected by alg.
//
// AlgSOR takes ω from WithRelaxation (DefaultRelaxation otherwise).
// AlgLUP and unknown values return ErrUnsupportedAlgorithm.
func Solve(alg Algorithm, a matrix.Matrix, b []float64, s fixedpoint.Settings, opts ...Option) (Result, error) {
	switch alg {
	case AlgPointJacobi:
		return PointJacobi(a, b, s, opts...)
	case AlgGaussSeidel:
		return GaussSeidel(a, b, s, opts...)
	case AlgSOR:
		o := gatherOptions(opts)
		return SOR(a, b, o.omega, s, opts...)
	case AlgConjugateGradient:
		return ConjugateGradient(a, b, s, opts...)
	default:
		return Result{}, fmt.Errorf("%s(%s): %w", opSolve, alg, ErrUnsupportedAlgorithm)
	}
}

// prepare runs the shared entry checks and returns A as *Dense.
func prepare(tag string, a matrix.Matrix, b []float64, s fixedpoint.Settings) (*matrix.Dense, error) {
	if err := matrix.ValidateLinearSystem(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if !s.Valid() {
		return nil, fmt.Errorf("%s: %s: %w", tag, s, fixedpoint.ErrInvalidSettings)
	}

	return asDense(a), nil
}

// asDense returns a itself when it is a *Dense, or a dense copy otherwise.
// Assumes a has already been validated.
func asDense(a matrix.Matrix) *matrix.Dense {
	if d, ok := a.(*matrix.Dense); ok {
		return d
	}
	d, _ := matrix.FromFunc(a.Rows(), a.Cols(), func(i, j int) float64 {
		v, _ := a.At(i, j)
		return v
	})

	return d
}

// criterionFor builds the engine criterion for the stationary solvers.
func criterionFor(kind CriterionKind, a *matrix.Dense, b []float64) fixedpoint.Criterion[[]float64] {
	if kind == Residual {
		r := make([]float64, len(b))
		return fixedpoint.ErrorFunc[[]float64](func(x []float64) float64 {
			_ = matrix.ResidualInto(r, a, x, b)
			return numeric.MaxAbs(r)
		})
	}

	return fixedpoint.DeltaFunc[[]float64](func(next, prev []float64) float64 {
		d, _ := numeric.MaxRelDiff(next, prev)
		return d
	})
}

// runStationary drives step from the zero vector and assembles the Result.
func runStationary(alg Algorithm, a *matrix.Dense, b []float64, step fixedpoint.Step[[]float64], s fixedpoint.Settings, o options) Result {
	x0 := make([]float64, len(b))
	res := fixedpoint.Iterate(step, x0, criterionFor(o.criterion, a, b), s, o.engineOptions()...)

	return finish(alg, a, b, res.X, res.Converged, res.Iters, res.Error, o)
}

// finish copies x out of the solver's buffers and computes the residual error.
func finish(alg Algorithm, a *matrix.Dense, b, x []float64, converged bool, iters int, relErr float64, o options) Result {
	out := make([]float64, len(x))
	copy(out, x)
	r, _ := matrix.Residual(a, out, b)
	result := Result{
		X:             out,
		RelativeError: relErr,
		ResidualError: numeric.MaxAbs(r),
		Converged:     converged,
		Iters:         iters,
		Algorithm:     alg,
	}
	if o.logger != nil {
		o.logger.Debug("axb solve done",
			"algorithm", alg.String(),
			"converged", converged,
			"iters", iters,
			"relative_error", relErr,
			"residual_error", result.ResidualError)
	}

	return result
}

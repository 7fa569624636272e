package fixedpoint_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSettings(t *testing.T, tol float64, maxIter int) fixedpoint.Settings {
	t.Helper()
	s, err := fixedpoint.NewSettings(tol, maxIter)
	require.NoError(t, err)

	return s
}

// babylon is Heron's step for sqrt(2).
var babylon = fixedpoint.StepFunc[float64](func(x float64) float64 { return (x + 2/x) / 2 })

var absDelta = fixedpoint.DeltaFunc[float64](func(next, prev float64) float64 { return math.Abs(next - prev) })

func TestNewSettings(t *testing.T) {
	t.Parallel()

	s, err := fixedpoint.NewSettings(1e-6, 50)
	require.NoError(t, err)
	assert.Equal(t, 1e-6, s.Tolerance())
	assert.Equal(t, 50, s.MaxIter())
	assert.True(t, s.Valid())
	assert.Equal(t, "tolerance=1e-06 max_iter=50", s.String())

	d := fixedpoint.DefaultSettings()
	assert.Equal(t, fixedpoint.DefaultTolerance, d.Tolerance())
	assert.Equal(t, fixedpoint.DefaultMaxIter, d.MaxIter())

	bad := []struct {
		name    string
		tol     float64
		maxIter int
	}{
		{"zero tol", 0, 10},
		{"negative tol", -1, 10},
		{"nan tol", math.NaN(), 10},
		{"inf tol", math.Inf(1), 10},
		{"zero iters", 1e-3, 0},
		{"negative iters", 1e-3, -5},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixedpoint.NewSettings(tc.tol, tc.maxIter)
			require.ErrorIs(t, err, fixedpoint.ErrInvalidSettings)
		})
	}
	assert.False(t, fixedpoint.Settings{}.Valid())
}

// TestIterateConverges runs Heron's method to full precision.
func TestIterateConverges(t *testing.T) {
	t.Parallel()

	res := fixedpoint.Iterate[float64](babylon, 1, absDelta, mustSettings(t, 1e-12, 100))
	require.True(t, res.Converged)
	assert.InDelta(t, math.Sqrt2, res.X, 1e-12)
	assert.Less(t, res.Error, 1e-12)
	assert.LessOrEqual(t, res.Iters, 10, "quadratic convergence")
}

// TestIterateBudget checks the single-iteration budget and the exhausted result.
func TestIterateBudget(t *testing.T) {
	t.Parallel()

	res := fixedpoint.Iterate[float64](babylon, 1, absDelta, mustSettings(t, 1e-12, 1))
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iters)
	require.Equal(t, 1.5, res.X)
	require.Equal(t, 0.5, res.Error)
}

// TestIterateLastIterationTieBreak reports convergence reached on the final allowed step.
func TestIterateLastIterationTieBreak(t *testing.T) {
	t.Parallel()

	inc := fixedpoint.StepFunc[int](func(x int) int { return x + 1 })
	reached := fixedpoint.PredicateFunc[int](func(next, _ int, _ float64) bool { return next >= 3 })

	res := fixedpoint.Iterate[int](inc, 0, reached, mustSettings(t, 1, 3))
	require.True(t, res.Converged)
	require.Equal(t, 3, res.Iters)
	require.Equal(t, 3, res.X)
	require.Equal(t, 0.0, res.Error)

	res = fixedpoint.Iterate[int](inc, 0, reached, mustSettings(t, 1, 2))
	require.False(t, res.Converged)
	require.Equal(t, 2, res.Iters)
	require.Equal(t, 2, res.X)
	require.True(t, math.IsInf(res.Error, 1))
}

// TestIterateResidualStyle uses a single-state criterion ignoring prev.
func TestIterateResidualStyle(t *testing.T) {
	t.Parallel()

	residual := fixedpoint.ErrorFunc[float64](func(x float64) float64 { return math.Abs(x*x - 2) })
	res := fixedpoint.Iterate[float64](babylon, 1, residual, mustSettings(t, 1e-10, 100))
	require.True(t, res.Converged)
	assert.InDelta(t, math.Sqrt2, res.X, 1e-10)
}

// TestIterateObserverAndLogger collects the history and the debug records.
func TestIterateObserverAndLogger(t *testing.T) {
	t.Parallel()

	var hist []fixedpoint.Iteration
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res := fixedpoint.Iterate[float64](babylon, 1, absDelta, mustSettings(t, 1e-12, 100),
		fixedpoint.WithObserver(func(it fixedpoint.Iteration) { hist = append(hist, it) }),
		fixedpoint.WithLogger(logger),
		nil, // ignored
	)
	require.True(t, res.Converged)
	require.Len(t, hist, res.Iters)
	for i, it := range hist {
		assert.Equal(t, i+1, it.Iter)
	}
	assert.Equal(t, res.Error, hist[len(hist)-1].Error)

	out := buf.String()
	assert.Equal(t, res.Iters, strings.Count(out, "fixed-point iteration"))
	assert.Contains(t, out, "fixed-point done")
	assert.Contains(t, out, "converged=true")
}

// TestIterateStructState carries auxiliary data alongside the iterate.
func TestIterateStructState(t *testing.T) {
	t.Parallel()

	type state struct {
		x     float64
		steps int
	}
	step := fixedpoint.StepFunc[state](func(s state) state {
		return state{x: math.Cos(s.x), steps: s.steps + 1}
	})
	delta := fixedpoint.DeltaFunc[state](func(n, p state) float64 { return math.Abs(n.x - p.x) })

	res := fixedpoint.Iterate[state](step, state{x: 1}, delta, mustSettings(t, 1e-10, 1000))
	require.True(t, res.Converged)
	assert.Equal(t, res.Iters, res.X.steps)
	assert.InDelta(t, 0.7390851332, res.X.x, 1e-9, "Dottie number")
}

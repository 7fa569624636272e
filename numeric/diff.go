// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// AbsDiff returns |test-ref|.
func AbsDiff(test, ref float64) float64 { return math.Abs(test - ref) }

// RelDiff returns |test/ref - 1|, the relative difference of test against
// the reference value ref.
//
// Zero guard: when test == 0 and ref is close to 0 (IsClose(ref, 0)) the
// result is 0, which avoids 0/0 on components that sit at zero. Any other
// ref == 0 produces +Inf (or NaN when test is NaN).
//
// Complexity: O(1).
func RelDiff(test, ref float64) float64 {
	if test == 0 && IsClose(ref, 0) {
		return 0
	}

	return math.Abs(test/ref - 1)
}

// RelErr returns |err/val|, or +Inf when val == 0.
func RelErr(err, val float64) float64 {
	if val == 0 {
		return math.Inf(1)
	}

	return math.Abs(err / val)
}

// MaxAbs returns max_i |v_i|, or 0 for an empty slice.
// Complexity: O(n).
func MaxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		a := math.Abs(x)
		if math.IsNaN(a) {
			return a // NaN poisons the reduction
		}
		if a > m {
			m = a
		}
	}

	return m
}

// MaxAbsDiff returns max_i |a_i-b_i|.
// Returns ErrLengthMismatch when len(a) != len(b); 0 when both are empty.
func MaxAbsDiff(a, b []float64) (float64, error) {
	return reducePairs("MaxAbsDiff", a, b, AbsDiff)
}

// MaxRelDiff returns max_i RelDiff(test_i, ref_i), applying the RelDiff
// zero guard per element.
// Returns ErrLengthMismatch when the lengths differ; 0 when both are empty.
func MaxRelDiff(test, ref []float64) (float64, error) {
	return reducePairs("MaxRelDiff", test, ref, RelDiff)
}

// MaxRelErr returns max_i RelErr(err_i, val_i).
// Returns ErrLengthMismatch when the lengths differ; 0 when both are empty.
func MaxRelErr(err, val []float64) (float64, error) {
	return reducePairs("MaxRelErr", err, val, RelErr)
}

// reducePairs is the shared max-reduction kernel.
// Stage 1: validate lengths. Stage 2: fold f over pairs with max.
// A NaN element short-circuits and is returned as the result.
func reducePairs(tag string, a, b []float64, f func(x, y float64) float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%s: %d vs %d: %w", tag, len(a), len(b), ErrLengthMismatch)
	}
	var m, d float64
	for i := range a {
		d = f(a[i], b[i])
		if math.IsNaN(d) {
			return d, nil
		}
		if d > m {
			m = d
		}
	}

	return m, nil
}

// Dot returns Σ a_i*b_i. Lengths must match (ErrLengthMismatch).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dot: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}

	return floats.Dot(a, b), nil
}

// NormL2 returns the Euclidean norm of v (0 for an empty slice).
func NormL2(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

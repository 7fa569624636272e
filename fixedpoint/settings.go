// SPDX-License-Identifier: MIT

package fixedpoint

import (
	"fmt"
	"math"
)

// Defaults used by DefaultSettings.
const (
	// DefaultTolerance is the convergence threshold applied to the criterion error.
	DefaultTolerance = 1e-8

	// DefaultMaxIter is the iteration budget.
	DefaultMaxIter = 100
)

// Settings is the (tolerance, budget) pair shared by every iterative method.
// The zero value is not usable; construct with NewSettings or DefaultSettings.
type Settings struct {
	tol     float64
	maxIter int
}

// NewSettings validates and returns Settings.
//
// Errors:
//   - ErrInvalidSettings when tol is NaN, ±Inf or <= 0.
//   - ErrInvalidSettings when maxIter <= 0.
func NewSettings(tol float64, maxIter int) (Settings, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return Settings{}, fmt.Errorf("NewSettings: tolerance %g: %w", tol, ErrInvalidSettings)
	}
	if maxIter <= 0 {
		return Settings{}, fmt.Errorf("NewSettings: max_iter %d: %w", maxIter, ErrInvalidSettings)
	}

	return Settings{tol: tol, maxIter: maxIter}, nil
}

// DefaultSettings returns {DefaultTolerance, DefaultMaxIter}.
func DefaultSettings() Settings {
	return Settings{tol: DefaultTolerance, maxIter: DefaultMaxIter}
}

// Tolerance returns the convergence threshold.
func (s Settings) Tolerance() float64 { return s.tol }

// MaxIter returns the iteration budget.
func (s Settings) MaxIter() int { return s.maxIter }

// Valid reports whether s was built by NewSettings or DefaultSettings.
func (s Settings) Valid() bool { return s.tol > 0 && s.maxIter > 0 }

// String implements fmt.Stringer.
func (s Settings) String() string {
	return fmt.Sprintf("tolerance=%g max_iter=%d", s.tol, s.maxIter)
}

// SPDX-License-Identifier: MIT

package numeric

import "math"

// Canonical comparison tolerances. These are the single source of truth for
// every zero/closeness guard in the module (diagonal checks, RelDiff).
const (
	// DefaultRelTol scales the tolerance with the reference magnitude.
	DefaultRelTol = 1e-5

	// DefaultAbsTol is the absolute floor of the tolerance.
	DefaultAbsTol = 1e-5
)

// Policy selects the closeness formula used by Closeness.
type Policy int

const (
	// Relative: |a-b| <= abs + rel*|b|. The second argument is the reference.
	Relative Policy = iota

	// Symmetric: |a-b| <= max(rel*max(|a|,|b|), abs).
	Symmetric
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case Relative:
		return "relative"
	case Symmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// Closeness is a reusable closeness test.
// The zero value is NOT useful (both tolerances 0 means exact equality);
// construct it with DefaultCloseness or set the fields explicitly.
type Closeness struct {
	RelTol float64 // relative tolerance (>= 0)
	AbsTol float64 // absolute tolerance (>= 0)
	Policy Policy  // Relative or Symmetric
}

// DefaultCloseness returns Closeness{DefaultRelTol, DefaultAbsTol, Relative}.
func DefaultCloseness() Closeness {
	return Closeness{RelTol: DefaultRelTol, AbsTol: DefaultAbsTol, Policy: Relative}
}

// Close reports whether a is close to b under the configured policy.
//
// Behavior highlights:
//   - Relative policy is asymmetric: Close(a, b) may differ from Close(b, a).
//   - NaN is never close to anything (including NaN).
//   - Equal infinities compare close; an infinite difference never does.
//
// Complexity: O(1).
func (c Closeness) Close(a, b float64) bool {
	if a == b {
		return true // exact match, also covers equal infinities
	}
	diff := math.Abs(a - b)
	if c.Policy == Symmetric {
		return diff <= math.Max(c.RelTol*math.Max(math.Abs(a), math.Abs(b)), c.AbsTol)
	}

	return diff <= c.AbsTol+c.RelTol*math.Abs(b)
}

// CloseToZero reports whether a is close to 0 (reference value 0).
func (c Closeness) CloseToZero(a float64) bool { return c.Close(a, 0) }

// IsClose reports |a-b| <= DefaultAbsTol + DefaultRelTol*|b|.
// Complexity: O(1).
func IsClose(a, b float64) bool {
	return DefaultCloseness().Close(a, b)
}

// IsCloseTol is IsClose with explicit tolerances under the Relative policy.
func IsCloseTol(a, b, relTol, absTol float64) bool {
	return Closeness{RelTol: relTol, AbsTol: absTol, Policy: Relative}.Close(a, b)
}

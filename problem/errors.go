// SPDX-License-Identifier: MIT

package problem

import "errors"

var (
	// ErrMalformed indicates a token that is missing or cannot be parsed as
	// the expected value.
	ErrMalformed = errors.New("problem: malformed input")

	// ErrInvalidRank indicates a non-positive system size.
	ErrInvalidRank = errors.New("problem: rank must be positive")

	// ErrInvalidSymmetry indicates an unknown symmetry code.
	ErrInvalidSymmetry = errors.New("problem: unknown symmetry")

	// ErrInvalidConfig indicates a run configuration that fails validation.
	ErrInvalidConfig = errors.New("problem: invalid configuration")
)

// SPDX-License-Identifier: MIT

package axb

import "errors"

var (
	// ErrInvalidRelaxation indicates a relaxation factor that is NaN or ±Inf.
	ErrInvalidRelaxation = errors.New("axb: relaxation factor must be finite")

	// ErrUnsupportedAlgorithm indicates a known algorithm this package does
	// not implement (LUP) or an out-of-range Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("axb: unsupported algorithm")

	// ErrUnknownAlgorithm indicates a name or code that ParseAlgorithm cannot map.
	ErrUnknownAlgorithm = errors.New("axb: unknown algorithm")

	// ErrUnknownCriterion indicates a name that ParseCriterion cannot map.
	ErrUnknownCriterion = errors.New("axb: unknown convergence criterion")
)

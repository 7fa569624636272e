// SPDX-License-Identifier: MIT

package axb

import (
	"fmt"
	"strconv"
	"strings"
)

// Algorithm identifies an Ax=b method.
//
// The numeric values of the first four constants are the codes used in
// problem files: 0 Point Jacobi, 1 Gauss-Seidel, 2 SOR, 3 LUP.
type Algorithm int

const (
	// AlgPointJacobi selects PointJacobi.
	AlgPointJacobi Algorithm = iota

	// AlgGaussSeidel selects GaussSeidel.
	AlgGaussSeidel

	// AlgSOR selects SOR with the relaxation set by WithRelaxation.
	AlgSOR

	// AlgLUP names the direct LU-with-pivoting solver. It is recognised but
	// rejected by Solve with ErrUnsupportedAlgorithm.
	AlgLUP

	// AlgConjugateGradient selects ConjugateGradient.
	AlgConjugateGradient
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgPointJacobi:
		return "point-jacobi"
	case AlgGaussSeidel:
		return "gauss-seidel"
	case AlgSOR:
		return "sor"
	case AlgLUP:
		return "lup"
	case AlgConjugateGradient:
		return "conjugate-gradient"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// algorithmNames maps every accepted spelling to its Algorithm.
var algorithmNames = map[string]Algorithm{
	"pj":                 AlgPointJacobi,
	"jacobi":             AlgPointJacobi,
	"point-jacobi":       AlgPointJacobi,
	"gs":                 AlgGaussSeidel,
	"gauss-seidel":       AlgGaussSeidel,
	"sor":                AlgSOR,
	"lup":                AlgLUP,
	"cg":                 AlgConjugateGradient,
	"conjugate-gradient": AlgConjugateGradient,
}

// ParseAlgorithm maps a name ("pj", "gauss-seidel", "sor", "cg", ...) or a
// numeric code ("0".."4", the file codes plus 4 for conjugate gradient) to
// an Algorithm. Matching is case-insensitive and '_' is treated as '-'.
//
// Errors: ErrUnknownAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if alg, ok := algorithmNames[key]; ok {
		return alg, nil
	}
	if code, err := strconv.Atoi(key); err == nil {
		if code == int(AlgConjugateGradient) {
			return AlgConjugateGradient, nil
		}
		alg, err := AlgorithmFromCode(code)
		if err != nil {
			return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
		}

		return alg, nil
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
}

// AlgorithmFromCode maps a problem-file code (0..3) to an Algorithm.
// Conjugate gradient has no file code; ParseAlgorithm accepts "4" for it.
func AlgorithmFromCode(code int) (Algorithm, error) {
	if code < int(AlgPointJacobi) || code > int(AlgLUP) {
		return 0, fmt.Errorf("AlgorithmFromCode(%d): valid codes are 0..3: %w", code, ErrUnknownAlgorithm)
	}

	return Algorithm(code), nil
}

// CriterionKind selects the convergence test of the stationary solvers.
type CriterionKind int

const (
	// RelativeChange compares consecutive iterates: MaxRelDiff(x_k, x_{k-1}) < tol.
	RelativeChange CriterionKind = iota

	// Residual tests the current iterate alone: MaxAbs(b - A·x_k) < tol.
	Residual
)

// String implements fmt.Stringer.
func (c CriterionKind) String() string {
	switch c {
	case RelativeChange:
		return "relative"
	case Residual:
		return "residual"
	default:
		return fmt.Sprintf("CriterionKind(%d)", int(c))
	}
}

// ParseCriterion accepts "relative", "relative-change" and "residual".
func ParseCriterion(s string) (CriterionKind, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "relative", "relative-change", "":
		return RelativeChange, nil
	case "residual":
		return Residual, nil
	default:
		return 0, fmt.Errorf("ParseCriterion(%q): %w", s, ErrUnknownCriterion)
	}
}

// Result is the outcome of one solve. Every field is populated, including
// on non-convergence.
type Result struct {
	X             []float64 // solution estimate, owned by the caller
	RelativeError float64   // last criterion error reported by the engine
	ResidualError float64   // MaxAbs(b - A·X)
	Converged     bool
	Iters         int
	Algorithm     Algorithm
}

// String renders the two-line convergence report.
func (r Result) String() string {
	head := "Converged at iteration"
	if !r.Converged {
		head = "Failed to converge in"
	}

	return fmt.Sprintf("%s #%d:\n\tRelative error: %12.6e\n\tResidual error: %12.6e",
		head, r.Iters, r.RelativeError, r.ResidualError)
}

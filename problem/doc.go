// SPDX-License-Identifier: MIT

// Package problem builds linear systems for the solvers: it reads them from
// whitespace-separated text, loads YAML run configurations, and generates
// diagonally dominant test systems.
//
// Text format (tokens separated by any whitespace, newlines not significant):
//
//	rank
//	a11 a12 ... a1n      entries selected by the symmetry, row-major
//	...
//	b1 ... bn
//
// With matrix.Lower only the entries with row >= col are present in the
// stream, with matrix.Upper row <= col, with matrix.Diagonal only row == col;
// unselected entries are zero. Errors name the failing entry with 1-based
// coordinates.
package problem

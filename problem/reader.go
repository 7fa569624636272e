// SPDX-License-Identifier: MIT

package problem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/itersolve/axb"
	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
)

// System is a square linear system A·x = B.
type System struct {
	A *matrix.Dense
	B []float64
}

// Rank returns the system size.
func (s System) Rank() int { return len(s.B) }

// SettingsOrder says which settings value comes first in the stream.
type SettingsOrder int

const (
	// ToleranceFirst reads "tolerance max_iter".
	ToleranceFirst SettingsOrder = iota

	// MaxIterFirst reads "max_iter tolerance".
	MaxIterFirst
)

// Reader consumes whitespace-separated tokens from one stream. Successive
// calls continue where the previous one stopped, so a file holding a system
// followed by settings is read with one Reader.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// token returns the next token or a wrapped ErrMalformed naming what.
func (r *Reader) token(what string) (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", fmt.Errorf("could not read %s: %w", what, err)
	}

	return "", fmt.Errorf("could not read %s: unexpected end of input: %w", what, ErrMalformed)
}

// Float reads one real value.
func (r *Reader) Float(what string) (float64, error) {
	tok, err := r.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %q must be a real value: %w", what, tok, ErrMalformed)
	}

	return v, nil
}

// Int reads one integer.
func (r *Reader) Int(what string) (int, error) {
	tok, err := r.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %q must be an integer: %w", what, tok, ErrMalformed)
	}

	return v, nil
}

// MaxRank is the largest system size Rank accepts. A dense system of that
// rank already needs 2 GiB for A.
const MaxRank = 1 << 14

// Rank reads a system size in 1..MaxRank.
func (r *Reader) Rank() (int, error) {
	n, err := r.Int("rank")
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("rank %d: %w", n, ErrInvalidRank)
	}
	if n > MaxRank {
		return 0, fmt.Errorf("rank %d exceeds %d: %w", n, MaxRank, ErrInvalidRank)
	}

	return n, nil
}

// Matrix reads a rows×cols matrix, consuming only the entries selected by
// sym in row-major order. Unselected entries are zero.
func (r *Reader) Matrix(rows, cols int, sym matrix.Symmetry) (*matrix.Dense, error) {
	if !sym.Valid() {
		return nil, fmt.Errorf("symmetry %s: %w", sym, ErrInvalidSymmetry)
	}
	var readErr error
	m, err := matrix.FromFunc(rows, cols, func(i, j int) float64 {
		if readErr != nil || !sym.Selects(i, j) {
			return 0
		}
		v, err := r.Float(fmt.Sprintf("matrix element (%d, %d)", i+1, j+1))
		if err != nil {
			readErr = err
		}

		return v
	})
	if err != nil {
		return nil, err
	}
	if readErr != nil {
		return nil, readErr
	}

	return m, nil
}

// Vector reads n real values.
func (r *Reader) Vector(n int) ([]float64, error) {
	v := make([]float64, n)
	var err error
	for i := range v {
		if v[i], err = r.Float(fmt.Sprintf("vector element %d", i+1)); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// LinearSystem reads rank, matrix and right-hand side.
func (r *Reader) LinearSystem(sym matrix.Symmetry) (System, error) {
	n, err := r.Rank()
	if err != nil {
		return System{}, err
	}
	a, err := r.Matrix(n, n, sym)
	if err != nil {
		return System{}, err
	}
	b, err := r.Vector(n)
	if err != nil {
		return System{}, err
	}

	return System{A: a, B: b}, nil
}

// Settings reads a tolerance and an iteration budget in the given order and
// validates them with fixedpoint.NewSettings.
func (r *Reader) Settings(order SettingsOrder) (fixedpoint.Settings, error) {
	var (
		tol     float64
		maxIter int
		err     error
	)
	if order == MaxIterFirst {
		if maxIter, err = r.Int("max_iter"); err != nil {
			return fixedpoint.Settings{}, err
		}
		if tol, err = r.Float("tolerance"); err != nil {
			return fixedpoint.Settings{}, err
		}
	} else {
		if tol, err = r.Float("tolerance"); err != nil {
			return fixedpoint.Settings{}, err
		}
		if maxIter, err = r.Int("max_iter"); err != nil {
			return fixedpoint.Settings{}, err
		}
	}

	return fixedpoint.NewSettings(tol, maxIter)
}

// Algorithm reads a numeric algorithm code (0 PJ, 1 GS, 2 SOR, 3 LUP).
// LUP is rejected with axb.ErrUnsupportedAlgorithm.
func (r *Reader) Algorithm() (axb.Algorithm, error) {
	code, err := r.Int("algorithm")
	if err != nil {
		return 0, err
	}
	alg, err := axb.AlgorithmFromCode(code)
	if err != nil {
		return 0, err
	}
	if alg == axb.AlgLUP {
		return 0, fmt.Errorf("algorithm %s: %w", alg, axb.ErrUnsupportedAlgorithm)
	}

	return alg, nil
}

// ReadLinearSystem reads one system from r.
func ReadLinearSystem(r io.Reader, sym matrix.Symmetry) (System, error) {
	return NewReader(r).LinearSystem(sym)
}

// ReadMatrix reads one rows×cols matrix from r.
func ReadMatrix(r io.Reader, rows, cols int, sym matrix.Symmetry) (*matrix.Dense, error) {
	return NewReader(r).Matrix(rows, cols, sym)
}

// ReadVector reads n values from r.
func ReadVector(r io.Reader, n int) ([]float64, error) {
	return NewReader(r).Vector(n)
}

// ReadSettings reads tolerance and max_iter from r.
func ReadSettings(r io.Reader, order SettingsOrder) (fixedpoint.Settings, error) {
	return NewReader(r).Settings(order)
}

// ReadAlgorithm reads one algorithm code from r.
func ReadAlgorithm(r io.Reader) (axb.Algorithm, error) {
	return NewReader(r).Algorithm()
}

// ParseSymmetry maps "G", "L", "U", "D" (or the full names) to a Symmetry.
// The empty string is General.
func ParseSymmetry(s string) (matrix.Symmetry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "g", "general":
		return matrix.General, nil
	case "l", "lower":
		return matrix.Lower, nil
	case "u", "upper":
		return matrix.Upper, nil
	case "d", "diagonal":
		return matrix.Diagonal, nil
	default:
		return 0, fmt.Errorf("ParseSymmetry(%q): %w", s, ErrInvalidSymmetry)
	}
}

// WriteLinearSystem writes sys in the General text format read by ReadLinearSystem.
func WriteLinearSystem(w io.Writer, sys System) error {
	if sys.A == nil {
		return fmt.Errorf("WriteLinearSystem: %w", matrix.ErrNilMatrix)
	}
	n := sys.Rank()
	if sys.A.Rows() != n || sys.A.Cols() != n {
		return fmt.Errorf("WriteLinearSystem: %dx%d matrix, rank %d: %w",
			sys.A.Rows(), sys.A.Cols(), n, matrix.ErrDimensionMismatch)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, n)
	data := sys.A.RawData()
	for i := 0; i < n; i++ {
		writeRow(bw, data[i*n:(i+1)*n])
	}
	writeRow(bw, sys.B)

	return bw.Flush()
}

func writeRow(w *bufio.Writer, row []float64) {
	for j, v := range row {
		if j > 0 {
			_ = w.WriteByte(' ')
		}
		_, _ = w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	_ = w.WriteByte('\n')
}

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/itersolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseFrom copies the element list and validates its length.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)

	data[0] = 100 // must not leak into m
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	v, _ = m.At(1, 1)
	require.Equal(t, 5.0, v)

	_, err = matrix.NewDenseFrom(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNewDenseRows covers regular, empty and ragged input.
func TestNewDenseRows(t *testing.T) {
	m, err := matrix.NewDenseRows([][]float64{{4, 1}, {2, 3}})
	require.NoError(t, err)
	require.Equal(t, "[4, 1]\n[2, 3]\n", m.String())

	m, err = matrix.NewDenseRows(nil)
	require.NoError(t, err)
	require.True(t, m.Empty())

	_, err = matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFromFuncOrder verifies f is called in row-major order.
func TestFromFuncOrder(t *testing.T) {
	var calls [][2]int
	m, err := matrix.FromFunc(2, 3, func(i, j int) float64 {
		calls = append(calls, [2]int{i, j})
		return float64(i*3 + j)
	})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, calls)
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5}, m.RawData())
}

// TestEye checks identity-like construction for square and rectangular shapes.
func TestEye(t *testing.T) {
	e, err := matrix.Eye(2, 3)
	require.NoError(t, err)
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n", e.String())

	e, err = matrix.Eye(3, 2)
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, 1]\n[0, 0]\n", e.String())

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1}, id.Diagonal())

	z, err := matrix.NewIdentity(0)
	require.NoError(t, err)
	require.True(t, z.Empty())
}

// TestSymmetrySelects checks each reader predicate.
func TestSymmetrySelects(t *testing.T) {
	cases := []struct {
		sym  matrix.Symmetry
		want [3][3]bool
	}{
		{matrix.General, [3][3]bool{{true, true, true}, {true, true, true}, {true, true, true}}},
		{matrix.Lower, [3][3]bool{{true, false, false}, {true, true, false}, {true, true, true}}},
		{matrix.Upper, [3][3]bool{{true, true, true}, {false, true, true}, {false, false, true}}},
		{matrix.Diagonal, [3][3]bool{{true, false, false}, {false, true, false}, {false, false, true}}},
	}
	for _, tc := range cases {
		t.Run(tc.sym.String(), func(t *testing.T) {
			require.True(t, tc.sym.Valid())
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					require.Equal(t, tc.want[i][j], tc.sym.Selects(i, j), "(%d,%d)", i, j)
				}
			}
		})
	}

	bogus := matrix.Symmetry('X')
	require.False(t, bogus.Valid())
	require.False(t, bogus.Selects(0, 0))
	require.Equal(t, "Symmetry('X')", bogus.String())
}

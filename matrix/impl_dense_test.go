// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface and its constructors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/raydepth/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseDimensions ensures negative sizes fail and zero sizes collapse to empty.
func TestNewDenseDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 5)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
	r, c := m.Shape()
	require.Equal(t, [2]int{0, 0}, [2]int{r, c})

	m, err = matrix.Zeros(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.False(t, m.IsSquare())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	_, err = matrix.Empty().At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestFromRowsFromCols checks that building from rows equals building from the
// columns of the transposed data.
func TestFromRowsFromCols(t *testing.T) {
	byRows, err := matrix.FromRows(
		matrix.Vec3(1, 2, 3),
		matrix.Vec3(4, 5, 6),
	)
	require.NoError(t, err)

	byCols, err := matrix.FromCols(
		matrix.Vec2(1, 4),
		matrix.Vec2(2, 5),
		matrix.Vec2(3, 6),
	)
	require.NoError(t, err)
	require.True(t, byRows.Equal(byCols), "rows:\n%v\ncols:\n%v", byRows, byCols)
	require.True(t, byRows.Equal(MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)))

	_, err = matrix.FromRows(matrix.Vec2(1, 2), matrix.Vec3(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromCols(matrix.Vec2(1, 2), matrix.Vec3(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.FromRows()
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}

// TestNewFromDataLength rejects a buffer of the wrong size and copies the input.
func TestNewFromDataLength(t *testing.T) {
	_, err := matrix.NewFromData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewFromData(2, 2, src)
	require.NoError(t, err)
	src[0] = 100
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestFromRule fills by index and tolerates a nil rule.
func TestFromRule(t *testing.T) {
	m, err := matrix.FromRule(2, 3, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)
	require.True(t, m.Equal(MustDense(t, 2, 3, 0, 1, 2, 10, 11, 12)))

	z, err := matrix.FromRule(2, 2, nil)
	require.NoError(t, err)
	require.True(t, z.Equal(MustDense(t, 2, 2, 0, 0, 0, 0)))

	_, err = matrix.FromRule(-1, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestIdentityAndGram checks the diagonal constructor and Gram matrices.
func TestIdentityAndGram(t *testing.T) {
	require.True(t, MustIdentity(t, 3).Equal(MustDense(t, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1)))
	require.True(t, MustIdentity(t, 0).IsEmpty())

	g, err := matrix.Gram(matrix.Vec2(1, 0), matrix.Vec2(1, 1))
	require.NoError(t, err)
	require.True(t, g.Equal(MustDense(t, 2, 2, 1, 1, 1, 2)))

	_, err = matrix.Gram(matrix.Vec2(1, 0), matrix.Vec3(1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRowColAccessors checks Row/Col copies and SetRow/SetCol validation.
func TestRowColAccessors(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.True(t, row.Equal(matrix.Vec3(4, 5, 6)))

	col, err := m.Col(2)
	require.NoError(t, err)
	require.True(t, col.Equal(matrix.Vec2(3, 6)))

	require.NoError(t, m.SetRow(0, matrix.Vec3(7, 8, 9)))
	require.NoError(t, m.SetCol(0, matrix.Vec2(-1, -2)))
	require.True(t, m.Equal(MustDense(t, 2, 3, -1, 8, 9, -2, 5, 6)))

	require.ErrorIs(t, m.SetRow(0, matrix.Vec2(1, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetCol(3, matrix.Vec2(1, 2)), matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSwapRowsCols exercises in-place permutations.
func TestSwapRowsCols(t *testing.T) {
	m := MustDense(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	require.NoError(t, m.SwapCols(1, 2))
	require.True(t, m.Equal(MustDense(t, 3, 3,
		1, 3, 2,
		4, 6, 5,
		7, 9, 8,
	)))

	require.NoError(t, m.SwapRows(0, 2))
	require.True(t, m.Equal(MustDense(t, 3, 3,
		7, 9, 8,
		4, 6, 5,
		1, 3, 2,
	)))

	require.NoError(t, m.SwapRows(1, 1))
	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone owns its buffer.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestDenseString checks the bracketed row format.
func TestDenseString(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2.5, -3, 4)
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
	require.Equal(t, "", matrix.Empty().String())
}

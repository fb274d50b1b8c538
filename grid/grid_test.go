// SPDX-License-Identifier: MIT
package grid_test

import (
	"errors"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/grid"
)

// TestNew_Shape verifies padding dimensions and the all-water start state.
func TestNew_Shape(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 5, g.Stride())
	require.Len(t, g.Snapshot(), 4)
	require.Zero(t, g.LandCount())
	require.True(t, g.BorderIsWater())
}

// TestNew_Errors rejects negative dimensions and accepts an empty grid.
func TestNew_Errors(t *testing.T) {
	_, err := grid.New(-1, 3)
	require.ErrorIs(t, err, grid.ErrBadShape)

	_, err = grid.New(3, -1)
	require.ErrorIs(t, err, grid.ErrBadShape)

	g, err := grid.New(0, 0)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0, 0}}, g.Snapshot())
}

// TestFromRows_Padding checks that interior rows land inside a water ring.
//
//	0 1      0 0 0 0
//	1 1  →   0 0 1 0
//	         0 1 1 0
//	         0 0 0 0
func TestFromRows_Padding(t *testing.T) {
	g := must.M1(grid.FromRows(2, 2, [][]int{{0, 1}, {1, 1}}))

	want := [][]int{
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	}
	require.Equal(t, want, g.Snapshot())
	require.Equal(t, 3, g.LandCount())
	require.True(t, g.BorderIsWater())
}

// TestFromRows_ShapeMismatch covers row-length and row-count failures.
func TestFromRows_ShapeMismatch(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		data [][]int
		want grid.ShapeError
	}{
		{"ShortRow", 2, 3, [][]int{{0, 1, 0}, {1, 1}}, grid.ShapeError{Row: 2, Got: 2, Want: 3}},
		{"LongRow", 2, 2, [][]int{{0, 1, 0}, {1, 1}}, grid.ShapeError{Row: 1, Got: 3, Want: 2}},
		{"TooFewRows", 3, 2, [][]int{{0, 1}, {1, 1}}, grid.ShapeError{Row: 0, Got: 2, Want: 3}},
		{"TooManyRows", 1, 2, [][]int{{0, 1}, {1, 1}}, grid.ShapeError{Row: 0, Got: 2, Want: 1}},
		// Row lengths are validated before the row count.
		{"LengthBeforeCount", 5, 2, [][]int{{0}}, grid.ShapeError{Row: 1, Got: 1, Want: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, grid.ErrShapeMismatch)

			var se *grid.ShapeError
			require.True(t, errors.As(err, &se))
			require.Equal(t, tc.want, *se)
		})
	}
}

// TestShapeError_Message pins the diagnostic wording.
func TestShapeError_Message(t *testing.T) {
	rowErr := &grid.ShapeError{Row: 2, Got: 3, Want: 4}
	assert.Equal(t, "Row 2 had invalid length 3 instead of 4", rowErr.Error())

	countErr := &grid.ShapeError{Got: 2, Want: 3}
	assert.Equal(t, "Data file contained 2 rows instead of 3", countErr.Error())
}

// TestFromRows_Values verifies that non-binary values pass by default and
// are rejected under WithStrictValues.
func TestFromRows_Values(t *testing.T) {
	data := [][]int{{0, 2}, {1, 0}}

	g, err := grid.FromRows(2, 2, data)
	require.NoError(t, err)
	require.Equal(t, 2, g.At(1, 2))

	_, err = grid.FromRows(2, 2, data, grid.WithStrictValues())
	require.ErrorIs(t, err, grid.ErrValueOutOfRange)

	_, err = grid.FromRows(2, 2, [][]int{{0, 1}, {1, 0}}, grid.WithStrictValues())
	require.NoError(t, err)
}

// TestFromRows_CopiesInput ensures later edits to the source do not leak in.
func TestFromRows_CopiesInput(t *testing.T) {
	data := [][]int{{1, 1}}
	g := must.M1(grid.FromRows(1, 2, data))
	data[0][0] = 0

	require.Equal(t, grid.Land, g.At(1, 1))
}

// TestNeighborSum checks the orthogonal sum, diagonals excluded.
//
//	1 1 0
//	1 1 1
//	0 1 0
func TestNeighborSum(t *testing.T) {
	g := must.M1(grid.FromRows(3, 3, [][]int{
		{1, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}))

	cases := []struct{ r, c, want int }{
		{1, 1, 2}, // right, down
		{2, 2, 4}, // centre
		{1, 3, 2}, // left, down (diagonal (2,2) excluded)
		{3, 2, 1}, // up
		{3, 3, 2}, // up, left
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, g.NeighborSum(tc.r, tc.c), "NeighborSum(%d,%d)", tc.r, tc.c)
	}
}

// TestClear_CloneEqual covers the only mutator and deep copies.
func TestClear_CloneEqual(t *testing.T) {
	g := must.M1(grid.FromRows(1, 3, [][]int{{1, 1, 1}}))
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Clear(1, 2)
	require.False(t, g.Equal(c))
	require.Equal(t, 3, g.LandCount())
	require.Equal(t, 2, c.LandCount())
	require.Equal(t, grid.Water, c.At(1, 2))

	other := must.M1(grid.New(3, 1))
	require.False(t, must.M1(grid.New(1, 3)).Equal(other))
	require.False(t, g.Equal(nil))
}

// TestIndex verifies row-major offsets in the padded buffer.
func TestIndex(t *testing.T) {
	g := must.M1(grid.New(2, 3))
	require.Equal(t, 0, g.Index(0, 0))
	require.Equal(t, 6, g.Index(1, 1))
	require.Equal(t, 2*5+3, g.Index(2, 3))
}

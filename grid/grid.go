// SPDX-License-Identifier: MIT

package grid

import (
	"slices"

	"github.com/pkg/errors"
)

// New returns an all-water grid with rows×cols interior cells.
// Returns ErrBadShape if either dimension is negative.
// Complexity: O((rows+2)·(cols+2)) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadShape, "rows=%d cols=%d", rows, cols)
	}
	stride := cols + 2
	return &Grid{
		rows:   rows,
		cols:   cols,
		stride: stride,
		cells:  make([]int, (rows+2)*stride),
	}, nil
}

// FromRows builds a padded grid from unpadded interior rows.
//
// Each data[i] must have exactly cols entries and len(data) must equal rows,
// otherwise a *ShapeError is returned (1-based row number, actual and
// declared lengths). Row lengths are checked before the row count.
// The input is copied; later changes to data do not affect the grid.
func FromRows(rows, cols int, data [][]int, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts)
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, &ShapeError{Row: i + 1, Got: len(row), Want: cols}
		}
		if o.strict {
			if err := validateRow(i+1, row); err != nil {
				return nil, err
			}
		}
	}
	if len(data) != rows {
		return nil, &ShapeError{Got: len(data), Want: rows}
	}
	for i, row := range data {
		copy(g.cells[g.Index(i+1, 1):], row)
	}
	return g, nil
}

func validateRow(rowNum int, row []int) error {
	for j, v := range row {
		if v != Water && v != Land {
			return errors.Wrapf(ErrValueOutOfRange, "row %d column %d has value %d", rowNum, j+1, v)
		}
	}
	return nil
}

// Rows returns the number of interior rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of interior columns.
func (g *Grid) Cols() int { return g.cols }

// Stride returns the padded row width, Cols()+2.
func (g *Grid) Stride() int { return g.stride }

// Index maps padded coordinates (r,c) to the row-major offset r*Stride()+c.
func (g *Grid) Index(r, c int) int {
	return r*g.stride + c
}

// At returns the value at padded coordinates (r,c).
// r ∈ [0, Rows()+1], c ∈ [0, Cols()+1]; out-of-range coordinates panic.
func (g *Grid) At(r, c int) int {
	return g.cells[g.Index(r, c)]
}

// Clear sets the cell at (r,c) to water.
func (g *Grid) Clear(r, c int) {
	g.cells[g.Index(r, c)] = Water
}

// NeighborSum adds the four orthogonal neighbours of interior cell (r,c).
// With 0/1 values the result is in [0,4].
func (g *Grid) NeighborSum(r, c int) int {
	i := g.Index(r, c)
	return g.cells[i-g.stride] + g.cells[i-1] + g.cells[i+1] + g.cells[i+g.stride]
}

// LandCount sums every cell of the grid. For 0/1 grids this is the number
// of land cells; the border contributes nothing.
func (g *Grid) LandCount() int {
	n := 0
	for _, v := range g.cells {
		n += v
	}
	return n
}

// BorderIsWater reports whether the whole padding ring is water.
func (g *Grid) BorderIsWater() bool {
	last := g.rows + 1
	for c := 0; c < g.stride; c++ {
		if g.At(0, c) != Water || g.At(last, c) != Water {
			return false
		}
	}
	for r := 1; r <= g.rows; r++ {
		if g.At(r, 0) != Water || g.At(r, g.cols+1) != Water {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:   g.rows,
		cols:   g.cols,
		stride: g.stride,
		cells:  slices.Clone(g.cells),
	}
}

// Equal reports whether g and other have the same shape and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.rows == other.rows && g.cols == other.cols && slices.Equal(g.cells, other.cells)
}

// Snapshot returns a copy of the padded grid as (Rows()+2) rows of
// Stride() values each, border included.
func (g *Grid) Snapshot() [][]int {
	out := make([][]int, g.rows+2)
	for r := range out {
		start := r * g.stride
		out[r] = slices.Clone(g.cells[start : start+g.stride])
	}
	return out
}

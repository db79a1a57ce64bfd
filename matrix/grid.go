// SPDX-License-Identifier: MIT

// Package matrix — Grid[T]: a fixed-shape row-major container for arbitrary cells.
//
// Grid shares Dense's layout and bounds policy but carries any element type.
// Camera ray grids and depth fields are built on it.

package matrix

import "fmt"

const (
	ctxGridAt  = "Grid.At"
	ctxGridSet = "Grid.Set"
	ctxGridRow = "Grid.Row"
	opNewGrid  = "NewGrid"
)

// Grid is a rows×cols table of T stored row-major.
// Either both dimensions are zero or both are positive.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// NewGrid returns a rows×cols grid with cell (i, j) = rule(i, j).
// A nil rule leaves every cell at T's zero value. The rule is evaluated in
// row-major order, exactly once per cell.
// Errors: ErrInvalidDimensions on negative sizes.
func NewGrid[T any](rows, cols int, rule func(i, j int) T) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewGrid, ErrInvalidDimensions)
	}
	if rows == 0 || cols == 0 {
		return &Grid[T]{}, nil
	}
	g := &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
	if rule == nil {
		return g, nil
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			g.cells[i*cols+j] = rule(i, j)
		}
	}

	return g, nil
}

// Rows returns the row count.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid[T]) Cols() int { return g.cols }

// Shape returns (Rows(), Cols()).
func (g *Grid[T]) Shape() (rows, cols int) { return g.rows, g.cols }

// At returns cell (i, j) or ErrOutOfRange.
func (g *Grid[T]) At(i, j int) (T, error) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		var zero T
		return zero, fmt.Errorf("%s(%d,%d): %w", ctxGridAt, i, j, ErrOutOfRange)
	}

	return g.cells[i*g.cols+j], nil
}

// Set writes cell (i, j) or returns ErrOutOfRange.
// Distinct cells may be written concurrently; the grid never reallocates.
func (g *Grid[T]) Set(i, j int, v T) error {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return fmt.Errorf("%s(%d,%d): %w", ctxGridSet, i, j, ErrOutOfRange)
	}
	g.cells[i*g.cols+j] = v

	return nil
}

// Row returns a copy of row i.
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.rows {
		return nil, fmt.Errorf("%s(%d): %w", ctxGridRow, i, ErrOutOfRange)
	}
	out := make([]T, g.cols)
	copy(out, g.cells[i*g.cols:(i+1)*g.cols])

	return out, nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(i, j int, v T)) {
	for k, v := range g.cells {
		fn(k/g.cols, k%g.cols, v)
	}
}

// Clone returns a shallow copy of the grid: cells are copied by value.
func (g *Grid[T]) Clone() *Grid[T] {
	if g.rows == 0 {
		return &Grid[T]{}
	}
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Normalise every zero-sized shape to the canonical empty 0×0 matrix.
//
// Complexity quicksheet:
//   - At/Set: O(1); Row/Col: O(c)/O(r); Clone: O(r*c); SwapRows: O(c); SwapCols: O(r).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxSetRow   = "SetRow"
	ctxSetCol   = "SetCol"
	ctxSwapRows = "SwapRows"
	ctxSwapCols = "SwapCols"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either both are zero or both positive.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// newDense is the single allocation point for Dense.
// MAIN DESCRIPTION:
//   - Validate non-negative dimensions and allocate a zero-filled buffer.
//
// Behavior highlights:
//   - rows==0 || cols==0 collapses to the canonical empty 0×0 matrix.
//
// Errors:
//   - ErrInvalidDimensions on negative input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func newDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if rows == 0 || cols == 0 {
		return &Dense{}, nil
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m is the canonical empty 0×0 matrix.
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// IsSquare reports whether Rows() == Cols(). The empty matrix is square.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set writes v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i as a Vector.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return Vector{}, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return NewVector(m.data[i*m.c : (i+1)*m.c]...), nil
}

// Col returns a copy of column j as a Vector.
// Errors: ErrOutOfRange.
func (m *Dense) Col(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return Vector{}, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return Vector{elems: out}, nil
}

// SetRow overwrites row i with v.
// MAIN DESCRIPTION:
//   - Bounds-check i, require v.Dim() == Cols(), copy components in order.
//
// Errors:
//   - ErrOutOfRange (bad row), ErrDimensionMismatch (bad length).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SetRow(i int, v Vector) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if v.Dim() != m.c {
		return denseErrorf(ctxSetRow, i, 0, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v.elems)

	return nil
}

// SetCol overwrites column j with v.
// Errors: ErrOutOfRange (bad column), ErrDimensionMismatch (v.Dim() != Rows()).
func (m *Dense) SetCol(j int, v Vector) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if v.Dim() != m.r {
		return denseErrorf(ctxSetCol, 0, j, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v.elems[i]
	}

	return nil
}

// SwapRows exchanges rows a and b in place. Swapping a row with itself is a no-op.
func (m *Dense) SwapRows(a, b int) error {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return denseErrorf(ctxSwapRows, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// SwapCols exchanges columns a and b in place.
func (m *Dense) SwapCols(a, b int) error {
	if a < 0 || a >= m.c || b < 0 || b >= m.c {
		return denseErrorf(ctxSwapCols, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+a], m.data[base+b] = m.data[base+b], m.data[base+a]
	}

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	if m.IsEmpty() {
		return &Dense{}
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Equal reports exact element-wise equality (shape must match).
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT

// Package matrix — constructors for *Dense.
//
// Purpose:
//   - Provide every documented way to build a Dense: empty, zeros, identity,
//     flat data, rows, columns, and an element rule f(i, j).
//   - All constructors copy their inputs; the result never aliases caller memory.
//
// Determinism & Policy:
//   - Fixed i→j fill order.
//   - A zero row or column count always yields the canonical empty 0×0 matrix.

package matrix

import "fmt"

// Operation tags for constructor errors.
const (
	opNewDense = "NewDense"
	opFromData = "NewFromData"
	opFromRows = "FromRows"
	opFromCols = "FromCols"
	opFromRule = "FromRule"
	opIdentity = "Identity"
)

// Empty returns the canonical empty 0×0 matrix.
// Its determinant is 1 (vacuous product).
func Empty() *Dense { return &Dense{} }

// NewDense returns a rows×cols zero matrix.
// Negative sizes fail with ErrInvalidDimensions; a zero size yields Empty().
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	m, err := newDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return m, nil
}

// Zeros is an intention-revealing alias of NewDense.
func Zeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Identity(0) is the empty matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	m, err := newDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewFromData builds a rows×cols matrix from a row-major flat slice.
// MAIN DESCRIPTION:
//   - Copy data into fresh storage; len(data) must equal rows*cols.
//
// Errors:
//   - ErrInvalidDimensions (negative sizes), ErrDimensionMismatch (length).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewFromData(rows, cols int, data []float64) (*Dense, error) {
	m, err := newDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromData, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromData, fmt.Errorf("want %d values, got %d: %w", rows*cols, len(data), ErrDimensionMismatch))
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix whose i-th row is rows[i].
// No rows (or rows of dimension 0) yield Empty(). All rows must share one
// dimension, otherwise ErrDimensionMismatch.
func FromRows(rows ...Vector) (*Dense, error) {
	if len(rows) == 0 {
		return Empty(), nil
	}
	cols := rows[0].Dim()
	for i := 1; i < len(rows); i++ {
		if rows[i].Dim() != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has dim %d, want %d: %w", i, rows[i].Dim(), cols, ErrDimensionMismatch))
		}
	}
	m, err := newDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	if m.IsEmpty() {
		return m, nil
	}
	for i, v := range rows {
		copy(m.data[i*cols:(i+1)*cols], v.elems)
	}

	return m, nil
}

// FromCols builds a matrix whose j-th column is cols[j].
// Same validation as FromRows.
func FromCols(cols ...Vector) (*Dense, error) {
	m, err := FromRows(cols...)
	if err != nil {
		return nil, matrixErrorf(opFromCols, err)
	}

	return transposeDense(m), nil
}

// FromRule builds a rows×cols matrix with element (i, j) = f(i, j).
// MAIN DESCRIPTION:
//   - Deterministic i→j evaluation order; f is called exactly rows*cols times.
//
// Behavior highlights:
//   - rows==0 || cols==0 yields Empty() without calling f.
//   - A nil f leaves the matrix zero-filled.
//
// Errors:
//   - ErrInvalidDimensions on negative sizes.
func FromRule(rows, cols int, f func(i, j int) float64) (*Dense, error) {
	m, err := newDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromRule, err)
	}
	if f == nil {
		return m, nil
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.data[i*m.c+j] = f(i, j)
		}
	}

	return m, nil
}

// Gram returns the Gram matrix G[i][j] = vs[i]·vs[j].
// All vectors must share one dimension.
func Gram(vs ...Vector) (*Dense, error) {
	n := len(vs)
	for i := 1; i < n; i++ {
		if vs[i].Dim() != vs[0].Dim() {
			return nil, matrixErrorf("Gram", ErrDimensionMismatch)
		}
	}

	return FromRule(n, n, func(i, j int) float64 {
		d, _ := vs[i].Dot(vs[j]) // dimensions checked above
		return d
	})
}

// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, matrix-vector
// products, transpose and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates exactly one result.
//   - Non-*Dense inputs are materialised once through asDense, then the flat
//     kernel runs; results are identical either way.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, _ := newDense(da.r, da.c) // shape already validated
	for k := range res.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b. Shapes must match (ErrDimensionMismatch).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b. Shapes must match (ErrDimensionMismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loop; one allocation for C.
//   - An inner dimension of 0 (A is r×0 empty) yields the empty matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, _ := newDense(aRows, bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulVec returns y = m·v.
// Errors: ErrNilMatrix, ErrDimensionMismatch when m.Cols() != v.Dim().
// Complexity: O(r*c).
func MulVec(m Matrix, v Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return Vector{}, matrixErrorf(opMulVec, err)
	}
	if m.Cols() != v.Dim() {
		return Vector{}, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	dm, err := asDense(m)
	if err != nil {
		return Vector{}, matrixErrorf(opMulVec, err)
	}
	out := make([]float64, dm.r)
	var (
		i, k int
		sum  float64
		base int
	)
	for i = 0; i < dm.r; i++ {
		sum = ZeroSum
		base = i * dm.c
		for k = 0; k < dm.c; k++ {
			sum += dm.data[base+k] * v.elems[k]
		}
		out[i] = sum
	}

	return Vector{elems: out}, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Always defined; the empty matrix transposes to itself.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(dm), nil
}

// transposeDense is the flat kernel behind Transpose and FromCols.
// data[i*cols + j] → res.data[j*rows + i]
func transposeDense(dm *Dense) *Dense {
	rows, cols := dm.r, dm.c
	res, _ := newDense(cols, rows)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// ApproxEqual reports whether a and b have the same shape and every pair of
// elements differs by strictly less than eps.
// A nil operand, a shape mismatch or a negative/NaN eps reports false.
func ApproxEqual(a, b Matrix, eps float64) bool {
	if ValidateSameShape(a, b) != nil || !(eps >= 0) {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for k := range da.data {
		if !(math.Abs(da.data[k]-db.data[k]) < eps) {
			return false
		}
	}

	return true
}

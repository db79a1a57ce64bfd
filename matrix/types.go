// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense kernels.
// This file intentionally contains ONLY the public Matrix interface and the
// numeric constants used across kernels. Errors live in errors.go.
package matrix

// MachineEpsilon is the float64 machine epsilon (2^-52). Inverse treats any
// |det| below it as singular.
const MachineEpsilon = 0x1p-52

// ZeroSum is the initial value for dot products and other accumulations.
const ZeroSum = 0.0

// ZeroPivot is the exact value that marks a missing pivot in Determinant.
const ZeroPivot = 0.0

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the only implementation in this package; kernels accept the
// interface and take a flat-slice fast path when handed a *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package (vectors, dense matrices and grids). All kernels MUST return these
// sentinels, possibly wrapped, and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// failing operation is visible; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> square-only -> numeric (singular/zero).

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero dimensions are legal and produce the canonical empty value.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row, column or component) is
	// outside valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of vectors of different length, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Determinant, Adjoint, Inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by Inverse when |det| is below machine epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroVector is returned when an operation needs a non-zero magnitude
	// (Normalized, RotationBetween).
	ErrZeroVector = errors.New("matrix: zero-length vector")

	// ErrNonFinite is returned by Normalized when a component is NaN or ±Inf.
	ErrNonFinite = errors.New("matrix: non-finite vector component")

	// ErrNotTwoDimensional is returned by 2-D only vector operations.
	ErrNotTwoDimensional = errors.New("matrix: vector is not 2-dimensional")

	// ErrNotThreeDimensional is returned by 3-D only vector operations
	// (Cross, Rotate3D, RotationBetween).
	ErrNotThreeDimensional = errors.New("matrix: vector is not 3-dimensional")
)

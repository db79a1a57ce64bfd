// SPDX-License-Identifier: MIT

// Package matrix is the linear-algebra kernel behind raydepth.
//
// It provides three value families:
//
//   - Vector: an n-dimensional float64 tuple with arithmetic, norms, dot and
//     cross products, and 2-D/3-D rotation helpers.
//   - Dense: a row-major r×c matrix with Add, Sub, Mul, MulVec, Transpose,
//     Scale, Determinant, Minor, Adjoint and Inverse.
//   - Grid[T]: a row-major r×c container of arbitrary cells, used for ray and
//     depth grids.
//
// Rotation constructors (Rotation2D, RotationX/Y/Z, Rotation3D,
// RotationBetween) return ready-to-use *Dense values.
//
// Error policy:
//
//	No public function panics on bad input. Every failure wraps one of the
//	sentinels in errors.go and is matched with errors.Is.
//
// Numeric policy:
//
//	Values follow IEEE-754; NaN and ±Inf propagate. Determinant uses partial
//	pivoting and returns an exact 0 when no pivot is found. Inverse rejects
//	|det| < MachineEpsilon with ErrSingular.
//
// The canonical empty matrix is 0×0; any constructor asked for a zero row or
// column count returns it, and Determinant(Empty()) == 1.
package matrix

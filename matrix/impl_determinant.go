// SPDX-License-Identifier: MIT

// Package matrix — square-only kernels: Determinant, Minor, Adjoint, Inverse.
//
// Purpose:
//   - Determinant by Gaussian elimination with partial pivoting (exact 0 when
//     a column has no non-zero pivot, sign flipped per row swap).
//   - Adjoint by cofactor expansion; Inverse = Adjoint / det.
//
// Determinism & Policy:
//   - Fixed pivot search order (top-down, largest magnitude, first wins on ties).
//   - The empty 0×0 matrix has determinant 1 (vacuous product).
//   - Inverse treats |det| < MachineEpsilon as singular.

package matrix

import (
	"fmt"
	"math"
)

const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
)

// Determinant returns det(m) for a square matrix.
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m into a scratch buffer (input is never mutated).
//   - Stage 2: For each column i, pick the row p ≥ i with the largest |a[p][i]|.
//     If that value is exactly ZeroPivot the matrix is singular and 0 is returned.
//     Otherwise swap rows p and i (flipping the sign) and eliminate below the pivot.
//   - Stage 3: Return sign × Π a[i][i].
//
// Behavior highlights:
//   - Largest-magnitude pivoting keeps the multipliers |l| ≤ 1.
//   - det(Empty()) == 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) scratch.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinantDense(dm), nil
}

// determinantDense assumes a square input.
func determinantDense(dm *Dense) float64 {
	n := dm.r
	if n == 0 {
		return 1
	}
	a := dm.clone()
	sign := 1.0
	var (
		i, j, k, p   int
		best, cand   float64
		pivot, ratio float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		// partial pivoting: largest |a[p][i]| for p in [i, n)
		p, best = i, math.Abs(a.data[i*n+i])
		for j = i + 1; j < n; j++ {
			cand = math.Abs(a.data[j*n+i])
			if cand > best {
				p, best = j, cand
			}
		}
		if best == ZeroPivot {
			return 0
		}
		if p != i {
			_ = a.SwapRows(i, p) // indices are in range
			sign = -sign
		}

		baseI = i * n
		pivot = a.data[baseI+i]
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			ratio = a.data[baseJ+i] / pivot
			if ratio == 0 {
				continue
			}
			a.data[baseJ+i] = 0
			for k = i + 1; k < n; k++ {
				a.data[baseJ+k] -= ratio * a.data[baseI+k]
			}
		}
	}

	det := sign
	for i = 0; i < n; i++ {
		det *= a.data[i*n+i]
	}

	return det
}

// Minor returns the submatrix of m after deleting the given rows and columns.
// Duplicate indices are ignored. Deleting every row or column yields Empty().
// Errors: ErrNilMatrix, ErrOutOfRange for an index outside m.
// Complexity: O(r*c).
func Minor(m Matrix, excludedRows, excludedCols []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	keepRows, err := keptIndices(dm.r, excludedRows)
	if err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("rows: %w", err))
	}
	keepCols, err := keptIndices(dm.c, excludedCols)
	if err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("cols: %w", err))
	}

	return minorDense(dm, keepRows, keepCols), nil
}

// keptIndices returns [0,n) minus excluded, in ascending order.
func keptIndices(n int, excluded []int) ([]int, error) {
	drop := make([]bool, n)
	for _, x := range excluded {
		if x < 0 || x >= n {
			return nil, fmt.Errorf("index %d: %w", x, ErrOutOfRange)
		}
		drop[x] = true
	}
	kept := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !drop[i] {
			kept = append(kept, i)
		}
	}

	return kept, nil
}

func minorDense(dm *Dense, rows, cols []int) *Dense {
	out, _ := newDense(len(rows), len(cols))
	if out.IsEmpty() {
		return out
	}
	for oi, i := range rows {
		for oj, j := range cols {
			out.data[oi*out.c+oj] = dm.data[i*dm.c+j]
		}
	}

	return out
}

// Adjoint returns the adjugate of a square matrix: the transpose of its
// cofactor matrix C[i][j] = (-1)^(i+j) · det(Minor(i, j)).
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: For each (i, j) compute the cofactor and write it at (j, i).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^5) (n^2 determinants of order n-1). Intended for small n.
func Adjoint(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return adjointDense(dm), nil
}

func adjointDense(dm *Dense) *Dense {
	n := dm.r
	adj, _ := newDense(n, n)
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	without := func(skip int) []int {
		out := make([]int, 0, n-1)
		out = append(out, all[:skip]...)
		return append(out, all[skip+1:]...)
	}
	var (
		i, j     int
		cofactor float64
	)
	for i = 0; i < n; i++ {
		rows := without(i)
		for j = 0; j < n; j++ {
			cofactor = determinantDense(minorDense(dm, rows, without(j)))
			if (i+j)%2 == 1 {
				cofactor = -cofactor
			}
			adj.data[j*n+i] = cofactor // transposed write
		}
	}

	return adj
}

// Inverse computes A^{-1} = Adjoint(A) / det(A).
// Implementation:
//   - Stage 1: ValidateSquare(m); det := Determinant(m).
//   - Stage 2: |det| < MachineEpsilon or det NaN → ErrSingular.
//   - Stage 3: Scale the adjoint by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Dominated by Adjoint; intended for the small (2×2, 3×3, 4×4) matrices of
//     geometry code.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := determinantDense(dm)
	if !(math.Abs(det) >= MachineEpsilon) { // NaN counts as singular
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	inv := adjointDense(dm)
	for k := range inv.data {
		inv.data[k] /= det
	}

	return inv, nil
}

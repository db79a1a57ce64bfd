// SPDX-License-Identifier: MIT

// Package matrix — rotation matrix constructors.
//
// Conventions:
//   - Angles are radians, counter-clockwise for a right-handed frame.
//   - Rotation3D(x, y, z) = Rx(x)·Ry(y)·Rz(z). Applied to a column vector the
//     rotations therefore act right-to-left: Z first, then Y, then X. Camera
//     ray generation depends on this exact order.

package matrix

import (
	"fmt"
	"math"
)

const opRotationBetween = "RotationBetween"

// Rotation2D returns the 2×2 counter-clockwise rotation by theta.
func Rotation2D(theta float64) *Dense {
	s, c := math.Sincos(theta)

	return &Dense{r: 2, c: 2, data: []float64{
		c, -s,
		s, c,
	}}
}

// RotationX returns the 3×3 rotation about the X axis.
func RotationX(theta float64) *Dense {
	s, c := math.Sincos(theta)

	return &Dense{r: 3, c: 3, data: []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// RotationY returns the 3×3 rotation about the Y axis.
func RotationY(theta float64) *Dense {
	s, c := math.Sincos(theta)

	return &Dense{r: 3, c: 3, data: []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// RotationZ returns the 3×3 rotation about the Z axis.
func RotationZ(theta float64) *Dense {
	s, c := math.Sincos(theta)

	return &Dense{r: 3, c: 3, data: []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// Rotation3D returns Rx(x)·Ry(y)·Rz(z).
// Zero angles produce the exact identity matrix.
func Rotation3D(x, y, z float64) *Dense {
	xy, _ := Mul(RotationX(x), RotationY(y)) // 3×3 · 3×3 is always compatible
	xyz, _ := Mul(xy, RotationZ(z))

	return xyz
}

// RotationBetween returns the 3×3 rotation R with R·(from/|from|) = to/|to|,
// rotating about from×to by the angle between them (Rodrigues' formula).
// Implementation:
//   - Stage 1: Validate 3-D, non-zero inputs; normalise both.
//   - Stage 2: Parallel inputs → identity; anti-parallel inputs → half-turn
//     about an axis perpendicular to from.
//   - Stage 3: R = I + [k]× + [k]×² · (1 − cos θ)/sin²θ with k = from×to.
//
// Errors:
//   - ErrNotThreeDimensional, ErrZeroVector.
func RotationBetween(from, to Vector) (*Dense, error) {
	if from.Dim() != 3 || to.Dim() != 3 {
		return nil, matrixErrorf(opRotationBetween, ErrNotThreeDimensional)
	}
	u, err := from.Normalized()
	if err != nil {
		return nil, matrixErrorf(opRotationBetween, fmt.Errorf("from: %w", err))
	}
	v, err := to.Normalized()
	if err != nil {
		return nil, matrixErrorf(opRotationBetween, fmt.Errorf("to: %w", err))
	}

	k, _ := u.Cross(v) // both 3-D
	cosTheta, _ := u.Dot(v)
	sin2 := k.SquareMagnitude()
	if sin2 == 0 {
		if cosTheta > 0 {
			return Identity(3)
		}
		return halfTurn(u), nil
	}

	kx, ky, kz := k.elems[0], k.elems[1], k.elems[2]
	skew := &Dense{r: 3, c: 3, data: []float64{
		0, -kz, ky,
		kz, 0, -kx,
		-ky, kx, 0,
	}}
	skew2, _ := Mul(skew, skew)
	f := (1 - cosTheta) / sin2
	r, _ := Identity(3)
	for i := range r.data {
		r.data[i] += skew.data[i] + skew2.data[i]*f
	}

	return r, nil
}

// halfTurn returns the rotation by π about a unit axis perpendicular to u:
// R = 2·a·aᵀ − I.
func halfTurn(u Vector) *Dense {
	// pick the basis vector least aligned with u to build a perpendicular axis
	basis := Vec3(1, 0, 0)
	ax, ay, az := math.Abs(u.elems[0]), math.Abs(u.elems[1]), math.Abs(u.elems[2])
	if ay < ax && ay <= az {
		basis = Vec3(0, 1, 0)
	} else if az < ax && az < ay {
		basis = Vec3(0, 0, 1)
	}
	perp, _ := u.Cross(basis)
	a, _ := perp.Normalized() // basis is never parallel to u
	r, _ := newDense(3, 3)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r.data[i*3+j] = 2 * a.elems[i] * a.elems[j]
		}
		r.data[i*3+i]--
	}

	return r
}

// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"

	"github.com/katalvlaran/raydepth/geometry"
	"github.com/katalvlaran/raydepth/matrix"
)

// Hyperellipsoid is the surface x²/a² + y²/b² + z²/c² = 1 in its local frame.
//
// The local X axis is aligned with pose.Direction(); for the default
// direction (1,0,0) no rotation is applied and the semi-axes are world-aligned.
type Hyperellipsoid struct {
	a, b, c float64
}

// NewHyperellipsoid validates the semi-axes.
// Errors: ErrBadSemiAxis when any axis is ≤ 0, NaN or ±Inf.
func NewHyperellipsoid(a, b, c float64) (Hyperellipsoid, error) {
	for i, v := range [3]float64{a, b, c} {
		if !(v > 0) || math.IsInf(v, 1) {
			return Hyperellipsoid{}, fmt.Errorf("NewHyperellipsoid: axis %d = %g: %w", i, v, ErrBadSemiAxis)
		}
	}

	return Hyperellipsoid{a: a, b: b, c: c}, nil
}

// Sphere is a Hyperellipsoid with three equal semi-axes.
func Sphere(r float64) (Hyperellipsoid, error) { return NewHyperellipsoid(r, r, r) }

// SemiAxes returns (a, b, c).
func (e Hyperellipsoid) SemiAxes() (a, b, c float64) { return e.a, e.b, e.c }

// Kind implements Surface.
func (Hyperellipsoid) Kind() Kind { return KindHyperellipsoid }

// IntersectionDistance returns the smallest non-negative root of the
// ray/ellipsoid quadratic.
// Implementation:
//   - Stage 1: Move the ray into the local frame: x0 = Rᵀ(o − C), d' = Rᵀd,
//     with R the rotation taking (1,0,0) onto the pose direction.
//   - Stage 2: Multiply the implicit equation through by a²b²c² and form
//     A t² + 2B t + D = 0.
//   - Stage 3: Δ = B² − AD. Δ < 0 or A == 0 misses; otherwise pick among
//     (−B ± √Δ)/A the smaller non-negative root.
//
// Behavior highlights:
//   - A ray whose origin lies on the surface and points outward hits at t = 0.
//   - Both roots negative (ellipsoid behind the origin) is a miss.
func (e Hyperellipsoid) IntersectionDistance(pose geometry.Transform, ray geometry.Ray) (float64, bool) {
	x0, d, ok := toLocal(pose, ray)
	if !ok {
		return 0, false
	}
	px, py, pz, _ := x0.XYZ()
	dx, dy, dz, _ := d.XYZ()

	a2, b2, c2 := e.a*e.a, e.b*e.b, e.c*e.c
	bc, ac, ab := b2*c2, a2*c2, a2*b2

	qa := dx*dx*bc + dy*dy*ac + dz*dz*ab
	qb := px*dx*bc + py*dy*ac + pz*dz*ab
	qd := px*px*bc + py*py*ac + pz*pz*ab - a2*b2*c2

	if qa == 0 {
		return 0, false
	}
	disc := qb*qb - qa*qd
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	near, far := (-qb-sq)/qa, (-qb+sq)/qa // qa > 0, so near ≤ far
	switch {
	case far < 0:
		return 0, false
	case near >= 0:
		return near, true
	default:
		return far, true
	}
}

var unitX = matrix.Vec3(1, 0, 0)

// toLocal expresses the ray in the surface frame: origin relative to the pose
// position, both vectors rotated by the inverse of the pose orientation.
func toLocal(pose geometry.Transform, ray geometry.Ray) (origin, direction matrix.Vector, ok bool) {
	rel, err := ray.Origin.Sub(pose.Position())
	if err != nil || rel.Dim() != 3 || ray.Direction.Dim() != 3 {
		return matrix.Vector{}, matrix.Vector{}, false
	}
	dir := pose.Direction()
	if dir.Equal(unitX) {
		return rel, ray.Direction, true
	}
	r, err := matrix.RotationBetween(unitX, dir)
	if err != nil {
		return matrix.Vector{}, matrix.Vector{}, false
	}
	rt, _ := matrix.Transpose(r)
	origin, _ = matrix.MulVec(rt, rel)
	direction, _ = matrix.MulVec(rt, ray.Direction)

	return origin, direction, true
}

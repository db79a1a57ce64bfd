// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/katalvlaran/raydepth/geometry"
)

// Hyperplane is the plane through pose.Position() with unit normal
// pose.Direction(). It has no intrinsic parameters.
type Hyperplane struct{}

// Kind implements Surface.
func (Hyperplane) Kind() Kind { return KindHyperplane }

// IntersectionDistance solves N·(o + t·d) = N·P for t.
//
// Behavior highlights:
//   - t is returned signed: a plane behind the ray origin yields t < 0.
//     Callers that want only forward hits must filter.
//   - A ray parallel to the plane hits at t = 0 when its origin lies on the
//     plane (exact comparison) and misses otherwise.
func (Hyperplane) IntersectionDistance(pose geometry.Transform, ray geometry.Ray) (float64, bool) {
	n := pose.Direction()
	if n.Dim() != 3 || ray.Origin.Dim() != 3 || ray.Direction.Dim() != 3 || pose.Position().Dim() != 3 {
		return 0, false
	}
	b, _ := n.Dot(pose.Position())
	no, _ := n.Dot(ray.Origin)
	nd, _ := n.Dot(ray.Direction)

	if nd == 0 {
		if no == b {
			return 0, true
		}
		return 0, false
	}

	return (b - no) / nd, true
}

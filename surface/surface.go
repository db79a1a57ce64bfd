// SPDX-License-Identifier: MIT

// Package surface implements ray intersection for implicit 3-D surfaces.
//
// A Surface carries only its intrinsic shape; where it sits in the world is
// supplied per call as a geometry.Transform (the pose). Intersection returns
// the ray parameter t such that origin + t·direction lies on the surface.
//
// Geometric non-intersection is not an error: it is reported as (0, false).
// Inputs of the wrong dimension (for example a zero-value Ray or Transform)
// are treated the same way.
package surface

import (
	"github.com/katalvlaran/raydepth/geometry"
)

// Kind identifies a concrete Surface for logs and tests.
type Kind uint8

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota
	// KindHyperplane is an infinite plane.
	KindHyperplane
	// KindHyperellipsoid is an ellipsoid with three semi-axes.
	KindHyperellipsoid
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindHyperplane:
		return "hyperplane"
	case KindHyperellipsoid:
		return "hyperellipsoid"
	default:
		return "unknown"
	}
}

// Surface is an implicit surface positioned by a pose.
type Surface interface {
	// IntersectionDistance returns (t, true) when the ray meets the surface
	// and (0, false) otherwise. Implementations define whether t may be negative.
	IntersectionDistance(pose geometry.Transform, ray geometry.Ray) (float64, bool)

	// Kind reports the concrete surface variant.
	Kind() Kind
}

// Compile-time conformance.
var (
	_ Surface = Hyperplane{}
	_ Surface = Hyperellipsoid{}
)

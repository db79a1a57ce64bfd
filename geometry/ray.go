// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/raydepth/matrix"
)

const opNewRay = "NewRay"

// Ray is a half-line origin + t·direction. Distances along a ray are
// measured in units of Direction, which need not be unit length.
type Ray struct {
	Origin    matrix.Vector
	Direction matrix.Vector
}

// NewRay validates that both vectors are 3-D and the direction is non-zero.
func NewRay(origin, direction matrix.Vector) (Ray, error) {
	if origin.Dim() != 3 || direction.Dim() != 3 {
		return Ray{}, fmt.Errorf("%s: %w", opNewRay, ErrNotThreeDimensional)
	}
	if direction.Equal(matrix.ZeroVector(3)) {
		return Ray{}, fmt.Errorf("%s: %w: %w", opNewRay, ErrZeroDirection, matrix.ErrZeroVector)
	}

	return Ray{Origin: origin, Direction: direction}, nil
}

// PointAt returns origin + t·direction.
func (r Ray) PointAt(t float64) (matrix.Vector, error) {
	return r.Origin.Add(r.Direction.Scale(t))
}

// String renders the ray for logs.
func (r Ray) String() string {
	return fmt.Sprintf("o=%v d=%v", r.Origin, r.Direction)
}

// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/raydepth/matrix"
)

// DirectionTolerance bounds | |direction| − 1 | for every constructed Transform.
const DirectionTolerance = 1e-6

const (
	opNewTransform = "NewTransform"
	opRotated      = "Transform.Rotated"
	opTranslated   = "Transform.Translated"
)

// Transform is a pose in 3-D space: a position and a unit direction.
// The zero value has no components; surfaces treat it as "no hit".
type Transform struct {
	position  matrix.Vector
	direction matrix.Vector
}

// DefaultTransform returns the pose at the origin looking along +X.
func DefaultTransform() Transform {
	return Transform{
		position:  matrix.Vec3(0, 0, 0),
		direction: matrix.Vec3(1, 0, 0),
	}
}

// NewTransform validates position and direction and stores the direction
// normalised.
//
// Errors:
//   - ErrNotThreeDimensional when either vector is not 3-D.
//   - ErrZeroDirection (wrapping matrix.ErrZeroVector) for a zero direction.
//   - matrix.ErrNonFinite when the direction has a NaN or ±Inf component.
func NewTransform(position, direction matrix.Vector) (Transform, error) {
	if position.Dim() != 3 || direction.Dim() != 3 {
		return Transform{}, fmt.Errorf("%s: %w", opNewTransform, ErrNotThreeDimensional)
	}
	unit, err := direction.Normalized()
	if errors.Is(err, matrix.ErrZeroVector) {
		return Transform{}, fmt.Errorf("%s: %w: %w", opNewTransform, ErrZeroDirection, err)
	}
	if err != nil {
		return Transform{}, fmt.Errorf("%s: %w", opNewTransform, err)
	}

	return Transform{position: position, direction: unit}, nil
}

// At builds a Transform from raw components.
func At(px, py, pz, dx, dy, dz float64) (Transform, error) {
	return NewTransform(matrix.Vec3(px, py, pz), matrix.Vec3(dx, dy, dz))
}

// Position returns the pose origin.
func (t Transform) Position() matrix.Vector { return t.position }

// Direction returns the unit forward vector.
func (t Transform) Direction() matrix.Vector { return t.direction }

// IsZero reports whether t is the zero value.
func (t Transform) IsZero() bool { return t.position.Dim() == 0 && t.direction.Dim() == 0 }

// Translated returns t moved by delta.
func (t Transform) Translated(delta matrix.Vector) (Transform, error) {
	p, err := t.position.Add(delta)
	if err != nil {
		return Transform{}, fmt.Errorf("%s: %w", opTranslated, err)
	}

	return Transform{position: p, direction: t.direction}, nil
}

// Rotated returns t with its direction turned by Rotation3D(x, y, z).
// The position is unchanged. A yaw is Rotated(0, 0, θ).
func (t Transform) Rotated(x, y, z float64) (Transform, error) {
	d, err := t.direction.Rotate3D(x, y, z)
	if err != nil {
		return Transform{}, fmt.Errorf("%s: %w", opRotated, err)
	}

	return NewTransform(t.position, d)
}

// String renders the pose for logs.
func (t Transform) String() string {
	return fmt.Sprintf("pos=%v dir=%v", t.position, t.direction)
}

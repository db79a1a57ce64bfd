// SPDX-License-Identifier: MIT

package geometry

import "errors"

var (
	// ErrNotThreeDimensional is returned when a position, direction or ray
	// component is not a 3-D vector.
	ErrNotThreeDimensional = errors.New("geometry: vector is not 3-dimensional")

	// ErrZeroDirection is returned when a direction has zero length.
	// It wraps matrix.ErrZeroVector, so either sentinel matches.
	ErrZeroDirection = errors.New("geometry: zero-length direction")
)

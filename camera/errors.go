// SPDX-License-Identifier: MIT

package camera

import "errors"

var (
	// ErrBadFOV rejects a field of view that is not a finite value > 0.
	ErrBadFOV = errors.New("camera: field of view must be finite and > 0")

	// ErrBadDrawDistance rejects a draw distance that is not a finite value > 0.
	ErrBadDrawDistance = errors.New("camera: draw distance must be finite and > 0")

	// ErrBadRaster rejects a raster with a non-positive width or height.
	ErrBadRaster = errors.New("camera: raster dimensions must be > 0")

	// ErrNoPose rejects the zero-value Transform.
	ErrNoPose = errors.New("camera: pose is not set")
)

// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrMissingKey is returned by Load when a required key is absent.
	ErrMissingKey = errors.New("config: missing key")

	// ErrBadScreenSize rejects non-positive screen dimensions.
	ErrBadScreenSize = errors.New("config: screen dimensions must be > 0")

	// ErrBadFPS rejects a target frame rate outside [1, MaxTargetFPS].
	ErrBadFPS = errors.New("config: target_fps must be in [1, 1000]")

	// ErrBadFOV rejects a horizontal field of view outside (0, π).
	ErrBadFOV = errors.New("config: camera_fov must be in (0, π) radians")

	// ErrBadDrawDistance rejects a non-positive or non-finite draw distance.
	ErrBadDrawDistance = errors.New("config: camera_draw_distance must be finite and > 0")
)

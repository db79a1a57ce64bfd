// SPDX-License-Identifier: MIT

// Package camera turns a pose and a field of view into a rectilinear grid of rays.
//
// Conventions:
//   - Grid rows are vertical pixels (j), columns are horizontal pixels (i).
//   - Pixel offsets are measured from the pixel centre, so the grid is
//     symmetric about the view direction and a 1×1 raster looks straight ahead.
//   - Rays share the camera position as origin; directions are scaled so
//     their projection onto the view axis equals |direction|² (fisheye fix),
//     which makes t a distance along the view axis rather than along the ray.
package camera

import (
	"fmt"
	"math"

	"github.com/katalvlaran/raydepth"
	"github.com/katalvlaran/raydepth/config"
	"github.com/katalvlaran/raydepth/geometry"
	"github.com/katalvlaran/raydepth/matrix"
)

const (
	opNew          = "camera.New"
	opGenerateRays = "camera.GenerateRays"
)

// Camera is an immutable pose plus projection parameters.
type Camera struct {
	pose         geometry.Transform
	hfov, vfov   float64
	drawDistance float64
}

// New validates and builds a Camera.
// FOVs must be finite and > 0; values ≥ π are accepted but logged at WARN,
// since the fisheye correction degenerates near the edge of such a view.
//
// Errors: ErrNoPose, ErrBadFOV, ErrBadDrawDistance.
func New(pose geometry.Transform, hfov, vfov, drawDistance float64) (Camera, error) {
	if pose.IsZero() {
		return Camera{}, fmt.Errorf("%s: %w", opNew, ErrNoPose)
	}
	for _, fov := range [2]float64{hfov, vfov} {
		if !(fov > 0) || math.IsInf(fov, 1) {
			return Camera{}, fmt.Errorf("%s: fov=%g: %w", opNew, fov, ErrBadFOV)
		}
	}
	if !(drawDistance > 0) || math.IsInf(drawDistance, 1) {
		return Camera{}, fmt.Errorf("%s: draw=%g: %w", opNew, drawDistance, ErrBadDrawDistance)
	}
	if hfov >= math.Pi || vfov >= math.Pi {
		raydepth.Logger().Warn("camera: field of view >= π, peripheral rays will be distorted",
			"hfov", hfov, "vfov", vfov)
	}

	return Camera{pose: pose, hfov: hfov, vfov: vfov, drawDistance: drawDistance}, nil
}

// FromConfig builds a camera from cfg: the horizontal FOV is cfg.CameraFOV and
// the vertical FOV follows from the screen aspect ratio.
func FromConfig(pose geometry.Transform, cfg config.Config) (Camera, error) {
	if err := cfg.Validate(); err != nil {
		return Camera{}, fmt.Errorf("%s: %w", opNew, err)
	}

	return New(pose, cfg.CameraFOV, VerticalFOV(cfg.CameraFOV, cfg.AspectRatio()), cfg.CameraDrawDistance)
}

// VerticalFOV derives the vertical field of view from the horizontal one:
// atan(aspect · tan(hfov/2)).
func VerticalFOV(hfov, aspect float64) float64 {
	return math.Atan(aspect * math.Tan(hfov/2))
}

// Pose returns the camera transform.
func (c Camera) Pose() geometry.Transform { return c.pose }

// WithPose returns a copy of c placed at pose.
func (c Camera) WithPose(pose geometry.Transform) (Camera, error) {
	if pose.IsZero() {
		return Camera{}, fmt.Errorf("%s: %w", opNew, ErrNoPose)
	}
	c.pose = pose

	return c, nil
}

// HorizontalFOV returns the horizontal field of view in radians.
func (c Camera) HorizontalFOV() float64 { return c.hfov }

// VerticalFOV returns the vertical field of view in radians.
func (c Camera) VerticalFOV() float64 { return c.vfov }

// DrawDistance returns the far limit used by presentation.
func (c Camera) DrawDistance() float64 { return c.drawDistance }

// Rays is shorthand for GenerateRays(c, n, m).
func (c Camera) Rays(n, m int) (*matrix.Grid[geometry.Ray], error) {
	return GenerateRays(c, n, m)
}

// GenerateRays returns the m×n grid of primary rays for a raster n pixels
// wide and m pixels high.
// Implementation:
//   - Stage 1: δα = Hfov/n, δβ = Vfov/m.
//   - Stage 2: For pixel (i, j): α = δα(i+½) − Hfov/2, β = δβ(j+½) − Vfov/2,
//     v = direction rotated by Rotation3D(0, β, α).
//   - Stage 3: Scale v by |direction|² / (direction·v) and pair it with the
//     camera position.
//
// Errors:
//   - ErrBadRaster when n ≤ 0 or m ≤ 0.
//
// Complexity:
//   - Time O(n·m), one 3×3 rotation per pixel.
func GenerateRays(c Camera, n, m int) (*matrix.Grid[geometry.Ray], error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opGenerateRays, n, m, ErrBadRaster)
	}
	if c.pose.IsZero() {
		return nil, fmt.Errorf("%s: %w", opGenerateRays, ErrNoPose)
	}

	dir := c.pose.Direction()
	origin := c.pose.Position()
	focal := dir.SquareMagnitude()
	dAlpha := c.hfov / float64(n)
	dBeta := c.vfov / float64(m)

	var genErr error
	grid, err := matrix.NewGrid(m, n, func(j, i int) geometry.Ray {
		if genErr != nil {
			return geometry.Ray{}
		}
		alpha := dAlpha*(float64(i)+0.5) - c.hfov/2
		beta := dBeta*(float64(j)+0.5) - c.vfov/2
		v, err := dir.Rotate3D(0, beta, alpha)
		if err != nil {
			genErr = err
			return geometry.Ray{}
		}
		proj, _ := dir.Dot(v) // both 3-D
		return geometry.Ray{Origin: origin, Direction: v.Scale(focal / proj)}
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGenerateRays, err)
	}
	if genErr != nil {
		return nil, fmt.Errorf("%s: %w", opGenerateRays, genErr)
	}

	return grid, nil
}

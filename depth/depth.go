// SPDX-License-Identifier: MIT

// Package depth assembles a depth field: for every camera ray, the distance
// to the nearest surface in the scene.
//
// Policy:
//   - Only hits with t ≥ 0 count. Negative t (a plane behind the camera) and
//     NaN are discarded here, not in the surfaces.
//   - A pixel with no surviving hit is the zero Sample (background).
//   - The field is rebuilt in full on every call; Compute keeps no state, so
//     the same camera and entries always produce the same grid.
package depth

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/raydepth"
	"github.com/katalvlaran/raydepth/camera"
	"github.com/katalvlaran/raydepth/geometry"
	"github.com/katalvlaran/raydepth/matrix"
	"github.com/katalvlaran/raydepth/scene"
)

const opCompute = "depth.Compute"

// Sample is one depth-field cell. Hit is false for background pixels, in
// which case Distance is 0.
type Sample struct {
	Distance float64
	Hit      bool
}

// Field is the per-pixel depth grid, rows = vertical pixels.
type Field = matrix.Grid[Sample]

// Trace returns the nearest non-negative hit of ray among entries.
// Entries with a nil Surface are skipped.
func Trace(ray geometry.Ray, entries []scene.Entry) Sample {
	best := Sample{Distance: math.Inf(1)}
	for _, e := range entries {
		if e.Surface == nil {
			continue
		}
		t, ok := e.Surface.IntersectionDistance(e.Pose, ray)
		if !ok || !(t >= 0) {
			continue
		}
		if t < best.Distance {
			best = Sample{Distance: t, Hit: true}
		}
	}
	if !best.Hit {
		return Sample{}
	}

	return best
}

// Compute builds the m×n depth field seen by cam for a raster n pixels wide
// and m pixels high.
// Implementation:
//   - Stage 1: Generate the ray grid (camera.GenerateRays).
//   - Stage 2: Trace rows on an errgroup bounded by WithWorkers; each goroutine
//     owns one row of the output.
//   - Stage 3: Log per-frame statistics at DEBUG.
//
// Errors:
//   - camera.ErrBadRaster / camera.ErrNoPose from ray generation.
//   - ErrFrameAbandoned (wrapping the context error) on cancellation.
//
// Complexity:
//   - Time O(n·m·len(entries)), Space O(n·m).
func Compute(cam camera.Camera, n, m int, entries []scene.Entry, opts ...Option) (*Field, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	rays, err := camera.GenerateRays(cam, n, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	out, err := matrix.NewGrid[Sample](m, n, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	g, ctx := errgroup.WithContext(o.ctx)
	g.SetLimit(o.workers)
	abandoned := false
	for j := 0; j < m; j++ {
		if ctx.Err() != nil {
			abandoned = true
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := rays.Row(j)
			if err != nil {
				return err
			}
			for i, ray := range row {
				if err = out.Set(j, i, Trace(ray, entries)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err = g.Wait()
	if err != nil || abandoned {
		if cause := o.ctx.Err(); cause != nil {
			err = fmt.Errorf("%w: %w", ErrFrameAbandoned, cause)
		}
		raydepth.Logger().Warn("depth: frame failed", "width", n, "height", m, "err", err)
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	log := raydepth.Logger()
	if log.Enabled(o.ctx, slog.LevelDebug) {
		log.Debug("depth: frame",
			"width", n, "height", m,
			"entries", len(entries),
			"workers", o.workers,
			"coverage", Coverage(out),
			"elapsed", time.Since(start))
	}

	return out, nil
}

// Nearest returns the closest hit in the field; ok is false when nothing was hit.
func Nearest(f *Field) (s Sample, ok bool) {
	f.Each(func(_, _ int, v Sample) {
		if v.Hit && (!ok || v.Distance < s.Distance) {
			s, ok = v, true
		}
	})

	return s, ok
}

// Coverage returns the fraction of pixels that hit something, in [0, 1].
// An empty field has coverage 0.
func Coverage(f *Field) float64 {
	rows, cols := f.Shape()
	if rows == 0 || cols == 0 {
		return 0
	}
	hits := 0
	f.Each(func(_, _ int, v Sample) {
		if v.Hit {
			hits++
		}
	})

	return float64(hits) / float64(rows*cols)
}

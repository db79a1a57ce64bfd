// SPDX-License-Identifier: MIT
package depth_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/raydepth/camera"
	"github.com/katalvlaran/raydepth/depth"
	"github.com/katalvlaran/raydepth/geometry"
	"github.com/katalvlaran/raydepth/scene"
	"github.com/katalvlaran/raydepth/surface"
	"github.com/stretchr/testify/require"
)

// fixed is a Surface that always reports the same result.
type fixed struct {
	t  float64
	ok bool
}

func (f fixed) IntersectionDistance(geometry.Transform, geometry.Ray) (float64, bool) {
	return f.t, f.ok
}

func (fixed) Kind() surface.Kind { return surface.KindUnknown }

func mustPose(t testing.TB, px, py, pz, dx, dy, dz float64) geometry.Transform {
	t.Helper()
	p, err := geometry.At(px, py, pz, dx, dy, dz)
	require.NoError(t, err)

	return p
}

func mustCamera(t testing.TB) camera.Camera {
	t.Helper()
	c, err := camera.New(geometry.DefaultTransform(), math.Pi/2, math.Pi/3, 100)
	require.NoError(t, err)

	return c
}

// demoEntries is a sphere in front, a wall behind it and a floor.
func demoEntries(t testing.TB) []scene.Entry {
	t.Helper()
	sc := scene.New()
	ball, err := surface.Sphere(1)
	require.NoError(t, err)
	egg, err := surface.NewHyperellipsoid(2, 0.5, 1)
	require.NoError(t, err)

	_, err = sc.Add(mustPose(t, 5, 0, 0, 1, 0, 0), ball)
	require.NoError(t, err)
	_, err = sc.Add(mustPose(t, 8, 3, 1, 1, 1, 0), egg)
	require.NoError(t, err)
	_, err = sc.Add(mustPose(t, 20, 0, 0, 1, 0, 0), surface.Hyperplane{})
	require.NoError(t, err)
	_, err = sc.Add(mustPose(t, 0, 0, -2, 0, 0, 1), surface.Hyperplane{})
	require.NoError(t, err)

	return sc.Snapshot()
}

func entry(t testing.TB, pose geometry.Transform, s surface.Surface) scene.Entry {
	t.Helper()
	return scene.Entry{Pose: pose, Surface: s}
}

func TestSinglePixel(t *testing.T) {
	c := mustCamera(t)
	ball, err := surface.Sphere(1)
	require.NoError(t, err)

	cases := []struct {
		name    string
		entries []scene.Entry
		want    depth.Sample
	}{
		{"empty scene", nil, depth.Sample{}},
		{"sphere ahead", []scene.Entry{entry(t, mustPose(t, 5, 0, 0, 1, 0, 0), ball)}, depth.Sample{Distance: 4, Hit: true}},
		{"plane behind filtered", []scene.Entry{entry(t, mustPose(t, -3, 0, 0, 1, 0, 0), surface.Hyperplane{})}, depth.Sample{}},
		{"nearest wins", []scene.Entry{
			entry(t, mustPose(t, 10, 0, 0, 1, 0, 0), surface.Hyperplane{}),
			entry(t, mustPose(t, 5, 0, 0, 1, 0, 0), ball),
		}, depth.Sample{Distance: 4, Hit: true}},
		{"NaN discarded", []scene.Entry{entry(t, geometry.DefaultTransform(), fixed{math.NaN(), true})}, depth.Sample{}},
		{"nil surface skipped", []scene.Entry{{Pose: geometry.DefaultTransform()}}, depth.Sample{}},
		{"zero distance kept", []scene.Entry{entry(t, geometry.DefaultTransform(), fixed{0, true})}, depth.Sample{Distance: 0, Hit: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := depth.Compute(c, 1, 1, tc.entries)
			require.NoError(t, err)
			got, err := f.At(0, 0)
			require.NoError(t, err)
			require.Equal(t, tc.want.Hit, got.Hit)
			require.InDelta(t, tc.want.Distance, got.Distance, 1e-12)
		})
	}
}

// TestFlatWallUniformDepth relies on the fisheye fix: a wall perpendicular to
// the view axis is at the same depth in every pixel.
func TestFlatWallUniformDepth(t *testing.T) {
	c := mustCamera(t)
	wall := []scene.Entry{entry(t, mustPose(t, 10, 0, 0, 1, 0, 0), surface.Hyperplane{})}

	f, err := depth.Compute(c, 9, 7, wall)
	require.NoError(t, err)
	f.Each(func(j, i int, s depth.Sample) {
		require.True(t, s.Hit, "pixel (%d,%d)", j, i)
		require.InDelta(t, 10.0, s.Distance, 1e-9, "pixel (%d,%d)", j, i)
	})
	require.Equal(t, 1.0, depth.Coverage(f))
}

func TestParallelMatchesSequential(t *testing.T) {
	c := mustCamera(t)
	entries := demoEntries(t)

	seq, err := depth.Compute(c, 40, 30, entries)
	require.NoError(t, err)
	par, err := depth.Compute(c, 40, 30, entries, depth.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, seq, par)

	again, err := depth.Compute(c, 40, 30, entries)
	require.NoError(t, err)
	require.Equal(t, seq, again, "recomputing must be idempotent")
}

func TestNearestAndCoverage(t *testing.T) {
	c := mustCamera(t)
	f, err := depth.Compute(c, 21, 15, demoEntries(t))
	require.NoError(t, err)

	near, ok := depth.Nearest(f)
	require.True(t, ok)
	require.Greater(t, near.Distance, 0.0)
	require.LessOrEqual(t, near.Distance, 4.0+1e-9)

	cov := depth.Coverage(f)
	require.Greater(t, cov, 0.0)
	require.LessOrEqual(t, cov, 1.0)

	empty, err := depth.Compute(c, 3, 2, nil)
	require.NoError(t, err)
	_, ok = depth.Nearest(empty)
	require.False(t, ok)
	require.Equal(t, 0.0, depth.Coverage(empty))
}

func TestComputeErrors(t *testing.T) {
	c := mustCamera(t)
	_, err := depth.Compute(c, 0, 4, nil)
	require.ErrorIs(t, err, camera.ErrBadRaster)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = depth.Compute(c, 8, 8, demoEntries(t), depth.WithContext(ctx), depth.WithWorkers(2))
	require.ErrorIs(t, err, depth.ErrFrameAbandoned)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionPanics(t *testing.T) {
	require.PanicsWithValue(t, "depth: WithWorkers: n must be >= 1", func() { depth.WithWorkers(0) })
	var nilCtx context.Context
	require.Panics(t, func() { depth.WithContext(nilCtx) })
}

// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raydepth/camera"
	"github.com/katalvlaran/raydepth/config"
	"github.com/katalvlaran/raydepth/depth"
	"github.com/katalvlaran/raydepth/geometry"
	"github.com/katalvlaran/raydepth/surface"
)

func TestDemoScene(t *testing.T) {
	sc, eggID, err := demoScene()
	require.NoError(t, err)
	require.Equal(t, 4, sc.Len())

	egg, err := sc.Get(eggID)
	require.NoError(t, err)
	require.Equal(t, surface.KindHyperellipsoid, egg.Surface.Kind())
}

func TestDemoSceneFrame(t *testing.T) {
	sc, _, err := demoScene()
	require.NoError(t, err)

	cfg := config.Default()
	cam, err := camera.FromConfig(geometry.DefaultTransform(), cfg)
	require.NoError(t, err)

	f, err := depth.Compute(cam, 30, 20, sc.Snapshot(), depth.WithWorkers(2))
	require.NoError(t, err)

	// the back wall fills every ray pointing forward, so everything is hit
	require.Equal(t, 1.0, depth.Coverage(f))
	near, ok := depth.Nearest(f)
	require.True(t, ok)
	require.Less(t, near.Distance, 40.0)
}

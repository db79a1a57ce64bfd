// SPDX-License-Identifier: MIT
package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/raydepth/geometry"
	"github.com/katalvlaran/raydepth/matrix"
	"github.com/stretchr/testify/require"
)

func TestDefaultTransform(t *testing.T) {
	tr := geometry.DefaultTransform()
	require.True(t, tr.Position().Equal(matrix.Vec3(0, 0, 0)))
	require.True(t, tr.Direction().Equal(matrix.Vec3(1, 0, 0)))
	require.False(t, tr.IsZero())
	require.True(t, geometry.Transform{}.IsZero())
}

func TestNewTransformNormalizes(t *testing.T) {
	tr, err := geometry.At(1, 2, 3, 0, 3, 4)
	require.NoError(t, err)
	require.InDelta(t, 1.0, tr.Direction().Magnitude(), geometry.DirectionTolerance)
	require.True(t, tr.Direction().ApproxEqual(matrix.Vec3(0, 0.6, 0.8), 1e-12))
	require.True(t, tr.Position().Equal(matrix.Vec3(1, 2, 3)))
}

func TestNewTransformErrors(t *testing.T) {
	_, err := geometry.At(0, 0, 0, 0, 0, 0)
	require.ErrorIs(t, err, geometry.ErrZeroDirection)
	require.ErrorIs(t, err, matrix.ErrZeroVector)

	_, err = geometry.At(0, 0, 0, math.Inf(-1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrNonFinite)

	_, err = geometry.NewTransform(matrix.Vec2(0, 0), matrix.Vec3(1, 0, 0))
	require.ErrorIs(t, err, geometry.ErrNotThreeDimensional)
	_, err = geometry.NewTransform(matrix.Vec3(0, 0, 0), matrix.NewVector(1, 0, 0, 0))
	require.ErrorIs(t, err, geometry.ErrNotThreeDimensional)
}

// TestNewTransformExtremeDirections keeps the unit-direction rule for
// components whose squares leave the float64 range.
func TestNewTransformExtremeDirections(t *testing.T) {
	big, err := geometry.At(0, 0, 0, 1e200, 0, 0)
	require.NoError(t, err)
	require.True(t, big.Direction().ApproxEqual(matrix.Vec3(1, 0, 0), 1e-15), "got %v", big.Direction())

	diag, err := geometry.At(0, 0, 0, 0, -1e300, 1e300)
	require.NoError(t, err)
	require.InDelta(t, 1.0, diag.Direction().Magnitude(), geometry.DirectionTolerance)

	small, err := geometry.At(0, 0, 0, 0, 1e-300, 0)
	require.NoError(t, err)
	require.True(t, small.Direction().ApproxEqual(matrix.Vec3(0, 1, 0), 1e-15), "got %v", small.Direction())

	r, err := geometry.NewRay(matrix.Vec3(0, 0, 0), matrix.Vec3(1e-200, 0, 0))
	require.NoError(t, err)
	require.Equal(t, 1e-200, r.Direction.Elements()[0])
}

func TestTransformRotatedTranslated(t *testing.T) {
	tr := geometry.DefaultTransform()

	yawed, err := tr.Rotated(0, 0, math.Pi/2)
	require.NoError(t, err)
	require.True(t, yawed.Direction().ApproxEqual(matrix.Vec3(0, 1, 0), 1e-12))
	require.True(t, yawed.Position().Equal(tr.Position()))

	moved, err := tr.Translated(matrix.Vec3(1, -1, 2))
	require.NoError(t, err)
	require.True(t, moved.Position().Equal(matrix.Vec3(1, -1, 2)))
	require.True(t, moved.Direction().Equal(tr.Direction()))

	_, err = tr.Translated(matrix.Vec2(1, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewRay(t *testing.T) {
	r, err := geometry.NewRay(matrix.Vec3(1, 1, 1), matrix.Vec3(0, 0, 2))
	require.NoError(t, err)

	p, err := r.PointAt(1.5)
	require.NoError(t, err)
	require.True(t, p.Equal(matrix.Vec3(1, 1, 4)))

	_, err = geometry.NewRay(matrix.Vec3(0, 0, 0), matrix.Vec3(0, 0, 0))
	require.ErrorIs(t, err, geometry.ErrZeroDirection)
	_, err = geometry.NewRay(matrix.Vec2(0, 0), matrix.Vec3(1, 0, 0))
	require.ErrorIs(t, err, geometry.ErrNotThreeDimensional)
}

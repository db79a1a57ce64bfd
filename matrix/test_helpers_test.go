// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for builders and kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/raydepth/matrix"
	"github.com/stretchr/testify/require"
)

// eps is the default tolerance for floating-point comparisons in this package.
const eps = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels down their non-*Dense path.
type hide struct{ matrix.Matrix }

// MustDense builds an r×c matrix from row-major data or fails the test.
func MustDense(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(tb, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Identity(n)
	require.NoError(tb, err)

	return m
}

// MustMul returns a·b or fails the test.
func MustMul(tb testing.TB, a, b matrix.Matrix) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Mul(a, b)
	require.NoError(tb, err)

	return m
}

// RequireMatrixNear asserts that got and want share a shape and agree within tol.
func RequireMatrixNear(tb testing.TB, want, got matrix.Matrix, tol float64) {
	tb.Helper()
	require.Truef(tb, matrix.ApproxEqual(want, got, tol), "want\n%v\ngot\n%v", want, got)
}

// RequireVectorNear asserts that got and want share a dimension and agree within tol.
func RequireVectorNear(tb testing.TB, want, got matrix.Vector, tol float64) {
	tb.Helper()
	require.Truef(tb, want.ApproxEqual(got, tol), "want %v, got %v", want, got)
}

// randDense fills an n×n matrix with values in [-1, 1) from a seeded source.
func randDense(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.FromRule(n, n, func(_, _ int) float64 { return rng.Float64()*2 - 1 })
	require.NoError(tb, err)

	return m
}

// randVec3 returns a 3-D vector with components in [-10, 10).
func randVec3(rng *rand.Rand) matrix.Vector {
	return matrix.Vec3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
}

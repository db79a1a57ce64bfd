// SPDX-License-Identifier: MIT

// Package matrix — Vector: a dimension-generic float64 tuple.
//
// Purpose:
//   - Value semantics: constructors copy their input and every operation
//     (including the indexed setter With) returns a fresh Vector, so two
//     Vector values never observe each other's writes.
//   - Binary operations require equal dimensions (ErrDimensionMismatch);
//     nothing is padded or truncated.
//
// Complexity quicksheet:
//   - Dim/At: O(1); arithmetic, norms, Dot: O(n); Rotate2D/Rotate3D: O(1) (fixed size).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	opVecAt        = "Vector.At"
	opVecWith      = "Vector.With"
	opVecAdd       = "Vector.Add"
	opVecSub       = "Vector.Sub"
	opVecDot       = "Vector.Dot"
	opVecCross     = "Vector.Cross"
	opVecDistance  = "Vector.Distance"
	opVecNormalize = "Vector.Normalized"
	opVecRotate2D  = "Vector.Rotate2D"
	opVecRotate3D  = "Vector.Rotate3D"
	opVecAngle2D   = "Vector.Angle2D"
)

// Vector is an ordered sequence of float64 components.
// The zero value is the 0-dimensional vector.
type Vector struct {
	elems []float64
}

var _ fmt.Stringer = Vector{}

// NewVector returns a vector holding a copy of xs.
func NewVector(xs ...float64) Vector {
	if len(xs) == 0 {
		return Vector{}
	}
	buf := make([]float64, len(xs))
	copy(buf, xs)

	return Vector{elems: buf}
}

// Vec2 is shorthand for NewVector(x, y).
func Vec2(x, y float64) Vector { return Vector{elems: []float64{x, y}} }

// Vec3 is shorthand for NewVector(x, y, z).
func Vec3(x, y, z float64) Vector { return Vector{elems: []float64{x, y, z}} }

// ZeroVector returns the n-dimensional zero vector. Negative n yields dim 0.
func ZeroVector(n int) Vector {
	if n <= 0 {
		return Vector{}
	}

	return Vector{elems: make([]float64, n)}
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.elems) }

// At returns component i, or ErrOutOfRange when i < 0 or i >= Dim().
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.elems) {
		return 0, matrixErrorf(opVecAt, fmt.Errorf("index %d of dim %d: %w", i, len(v.elems), ErrOutOfRange))
	}

	return v.elems[i], nil
}

// With returns a copy of v with component i replaced by x.
// Errors: ErrOutOfRange when i < 0 or i >= Dim().
func (v Vector) With(i int, x float64) (Vector, error) {
	if i < 0 || i >= len(v.elems) {
		return Vector{}, matrixErrorf(opVecWith, fmt.Errorf("index %d of dim %d: %w", i, len(v.elems), ErrOutOfRange))
	}
	out := v.clone()
	out.elems[i] = x

	return out, nil
}

// XYZ unpacks a 3-D vector. ok is false for any other dimension.
func (v Vector) XYZ() (x, y, z float64, ok bool) {
	if len(v.elems) != 3 {
		return 0, 0, 0, false
	}

	return v.elems[0], v.elems[1], v.elems[2], true
}

// Elements returns a copy of the components.
func (v Vector) Elements() []float64 {
	return v.clone().elems
}

func (v Vector) clone() Vector {
	return NewVector(v.elems...)
}

// Add returns v + o.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v.elems) != len(o.elems) {
		return Vector{}, matrixErrorf(opVecAdd, ErrDimensionMismatch)
	}
	out := make([]float64, len(v.elems))
	for i := range out {
		out[i] = v.elems[i] + o.elems[i]
	}

	return Vector{elems: out}, nil
}

// Sub returns v − o.
func (v Vector) Sub(o Vector) (Vector, error) {
	if len(v.elems) != len(o.elems) {
		return Vector{}, matrixErrorf(opVecSub, ErrDimensionMismatch)
	}
	out := make([]float64, len(v.elems))
	for i := range out {
		out[i] = v.elems[i] - o.elems[i]
	}

	return Vector{elems: out}, nil
}

// Neg returns −v.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// Scale returns k·v. Always defined.
func (v Vector) Scale(k float64) Vector {
	out := v.clone()
	for i := range out.elems {
		out.elems[i] *= k
	}

	return out
}

// Div returns v / k element-wise. Division by zero follows IEEE-754 (±Inf, NaN).
func (v Vector) Div(k float64) Vector {
	out := v.clone()
	for i := range out.elems {
		out.elems[i] /= k
	}

	return out
}

// Dot returns Σ v_i·o_i.
func (v Vector) Dot(o Vector) (float64, error) {
	if len(v.elems) != len(o.elems) {
		return 0, matrixErrorf(opVecDot, ErrDimensionMismatch)
	}

	return dot(v.elems, o.elems), nil
}

func dot(a, b []float64) float64 {
	sum := ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Cross returns v × o. Both vectors must be 3-dimensional.
func (v Vector) Cross(o Vector) (Vector, error) {
	if len(v.elems) != 3 || len(o.elems) != 3 {
		return Vector{}, matrixErrorf(opVecCross, ErrNotThreeDimensional)
	}
	a, b := v.elems, o.elems

	return Vec3(
		a[1]*b[2]-b[1]*a[2],
		b[0]*a[2]-a[0]*b[2],
		a[0]*b[1]-b[0]*a[1],
	), nil
}

// SquareMagnitude returns v·v.
func (v Vector) SquareMagnitude() float64 { return dot(v.elems, v.elems) }

// Magnitude returns the Euclidean norm |v|.
func (v Vector) Magnitude() float64 { return math.Sqrt(v.SquareMagnitude()) }

// SquareDistance returns |v − o|².
func (v Vector) SquareDistance(o Vector) (float64, error) {
	if len(v.elems) != len(o.elems) {
		return 0, matrixErrorf(opVecDistance, ErrDimensionMismatch)
	}
	var sum, d float64
	for i := range v.elems {
		d = o.elems[i] - v.elems[i]
		sum += d * d
	}

	return sum, nil
}

// Distance returns |v − o|.
func (v Vector) Distance(o Vector) (float64, error) {
	sq, err := v.SquareDistance(o)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// Normalized returns v / |v|.
// The vector is first divided by its largest absolute component, so |v| may
// exceed the float64 range without the result collapsing to zero.
//
// Errors:
//   - ErrZeroVector when every component is 0 (this includes the 0-dim vector).
//   - ErrNonFinite when a component is NaN or ±Inf.
func (v Vector) Normalized() (Vector, error) {
	var peak, a float64
	for _, x := range v.elems {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Vector{}, matrixErrorf(opVecNormalize, ErrNonFinite)
		}
		if a = math.Abs(x); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return Vector{}, matrixErrorf(opVecNormalize, ErrZeroVector)
	}
	scaled := v.Div(peak)

	return scaled.Div(scaled.Magnitude()), nil
}

// ApproxEqual reports whether v and o share a dimension and every pair of
// components differs by strictly less than eps.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i := range v.elems {
		if !(math.Abs(v.elems[i]-o.elems[i]) < eps) {
			return false
		}
	}

	return true
}

// Equal reports exact component-wise equality.
func (v Vector) Equal(o Vector) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != o.elems[i] {
			return false
		}
	}

	return true
}

// Rotate2D rotates a 2-D vector counter-clockwise by radians.
// Errors: ErrNotTwoDimensional.
func (v Vector) Rotate2D(radians float64) (Vector, error) {
	if len(v.elems) != 2 {
		return Vector{}, matrixErrorf(opVecRotate2D, ErrNotTwoDimensional)
	}

	return MulVec(Rotation2D(radians), v)
}

// Rotate3D applies Rotation3D(x, y, z) to a 3-D vector.
// Errors: ErrNotThreeDimensional.
func (v Vector) Rotate3D(x, y, z float64) (Vector, error) {
	if len(v.elems) != 3 {
		return Vector{}, matrixErrorf(opVecRotate3D, ErrNotThreeDimensional)
	}

	return MulVec(Rotation3D(x, y, z), v)
}

// Angle2D returns the counter-clockwise angle in [0, 2π) that rotates o onto v.
// Errors: ErrNotTwoDimensional.
func (v Vector) Angle2D(o Vector) (float64, error) {
	if len(v.elems) != 2 || len(o.elems) != 2 {
		return 0, matrixErrorf(opVecAngle2D, ErrNotTwoDimensional)
	}
	delta := math.Atan2(v.elems[1], v.elems[0]) - math.Atan2(o.elems[1], o.elems[0])
	if delta < 0 {
		delta += 2 * math.Pi
	}
	if delta >= 2*math.Pi {
		delta -= 2 * math.Pi
	}

	return delta, nil
}

// String renders the vector as "(x, y, z)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.elems {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(')')

	return sb.String()
}

// Package math3d provides the vector and matrix primitives used by the cam3d
// rasterization pipeline.
package math3d

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types a Vec3 can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec3 is a three component value. It carries positions, directions and,
// after projection, a screen point whose Z is a normalized depth.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 creates a new Vec3.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Convert returns v with every component converted to U.
func Convert[U, T Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s. Dividing by zero is a programming
// error and panics.
func (a Vec3[T]) Div(s T) Vec3[T] {
	if s == 0 {
		panic("math3d: Vec3 division by zero")
	}
	return Vec3[T]{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Cross2D returns the perp-dot product of the XY parts of a and b.
// Z is ignored.
func (a Vec3[T]) Cross2D(b Vec3[T]) T {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length (magnitude) of the vector.
func (a Vec3[T]) Len() float64 {
	return math.Sqrt(float64(a.X*a.X + a.Y*a.Y + a.Z*a.Z))
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (a Vec3[T]) Normalize() Vec3[T] {
	l := a.Len()
	if l == 0 {
		return a
	}
	return Vec3[T]{
		T(float64(a.X) / l),
		T(float64(a.Y) / l),
		T(float64(a.Z) / l),
	}
}

// Negate returns the negated vector.
func (a Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3[T]) Lerp(b Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Min returns the component-wise minimum.
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Equal reports whether a and b are component-wise identical.
func (a Vec3[T]) Equal(b Vec3[T]) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

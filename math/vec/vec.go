// SPDX-License-Identifier: GPL-2.0-or-later

// Package vec holds the three component vector used both for positions and
// for displacements.
package vec

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"polybsp/math"
)

type Vec3 struct {
	X, Y, Z float32
}

func VFromA(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Length returns the length of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(Dot(v, v))
}

// Unit returns the vector scaled to length 1. A vector shorter than
// math.Epsilon has no direction and yields math.ErrDivideByZero.
func (v Vec3) Unit() (Vec3, error) {
	l := math.Scalar(v.Length())
	x, err := math.Scalar(v.X).Div(l)
	if err != nil {
		return Vec3{}, errors.Wrapf(err, "unit of %v", v)
	}
	y, _ := math.Scalar(v.Y).Div(l)
	z, _ := math.Scalar(v.Z).Div(l)
	return Vec3{float32(x), float32(y), float32(z)}, nil
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// DoublePrecDot return a dot b calculated in double precision
func DoublePrecDot(a Vec3, b Vec3) float32 {
	p := func(x, y float32) float64 {
		return float64(x) * float64(y)
	}
	return float32(p(a.X, b.X) + p(a.Y, b.Y) + p(a.Z, b.Z))
}

// Cross returns a cross b
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Lerp computes a weighted average between two points
func Lerp(a, b Vec3, frac float32) Vec3 {
	return Vec3{
		math.Lerp(a.X, b.X, frac),
		math.Lerp(a.Y, b.Y, frac),
		math.Lerp(a.Z, b.Z, frac),
	}
}

// Distance returns the euclidean distance between two points
func Distance(a, b Vec3) float32 {
	return Sub(a, b).Length()
}

// Equal compares componentwise with math.Epsilon tolerance.
func Equal(a Vec3, b Vec3) bool {
	return math.Scalar(a.X).Eq(math.Scalar(b.X)) &&
		math.Scalar(a.Y).Eq(math.Scalar(b.Y)) &&
		math.Scalar(a.Z).Eq(math.Scalar(b.Z))
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

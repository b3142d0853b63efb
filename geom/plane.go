// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import (
	"fmt"

	"github.com/pkg/errors"

	"polybsp/math"
	"polybsp/math/vec"
)

var ErrParallel = errors.New("line is parallel to plane")

// Plane is given by a point on it and a unit normal. The normal points to
// the front half-space.
type Plane struct {
	point  vec.Vec3
	normal vec.Vec3
}

// NewPlane normalizes normal. A zero normal fails with math.ErrDivideByZero.
func NewPlane(point, normal vec.Vec3) (Plane, error) {
	n, err := normal.Unit()
	if err != nil {
		return Plane{}, errors.Wrap(err, "plane normal")
	}
	return Plane{point: point, normal: n}, nil
}

func (p Plane) Point() vec.Vec3 {
	return p.point
}

func (p Plane) Normal() vec.Vec3 {
	return p.normal
}

// Flip returns the same plane facing the other way.
func (p Plane) Flip() Plane {
	return Plane{point: p.point, normal: p.normal.Neg()}
}

// Distance returns the signed distance of v, positive in front.
func (p Plane) Distance(v vec.Vec3) math.Scalar {
	return math.Scalar(vec.DoublePrecDot(vec.Sub(v, p.point), p.normal))
}

// Side returns 1 for points in front, -1 for points behind and 0 for points
// within math.Epsilon of the plane.
func (p Plane) Side(v vec.Vec3) int {
	return p.Distance(v).Sign()
}

// Intersect returns the point where l pierces the plane.
func (p Plane) Intersect(l Line) (vec.Vec3, error) {
	denom := math.Scalar(vec.Dot(p.normal, l.Dir()))
	if denom.Eq(0) {
		return vec.Vec3{}, errors.Wrapf(ErrParallel, "intersect %v with %v", l, p)
	}
	num := math.Scalar(vec.DoublePrecDot(p.normal, vec.Sub(p.point, l.Point())))
	t, err := num.Div(denom)
	if err != nil {
		return vec.Vec3{}, err
	}
	return l.PointAt(float32(t)), nil
}

func (p Plane) String() string {
	return fmt.Sprintf("Point: %v, Normal: %v", p.point, p.normal)
}

// Relation describes where a polygon lies relative to a plane.
type Relation int

const (
	Coincident Relation = iota
	InFront
	Behind
	Spanning
)

func (r Relation) String() string {
	switch r {
	case Coincident:
		return "Coincident"
	case InFront:
		return "In front"
	case Behind:
		return "Behind"
	case Spanning:
		return "Spanning"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import (
	"fmt"

	"github.com/pkg/errors"

	"polybsp/math"
	"polybsp/math/vec"
)

// Line is an infinite line. The direction is always of unit length.
type Line struct {
	point vec.Vec3
	dir   vec.Vec3
}

// NewLine builds a line through p along dir. dir is normalized, a zero
// direction fails with math.ErrDivideByZero.
func NewLine(p, dir vec.Vec3) (Line, error) {
	u, err := dir.Unit()
	if err != nil {
		return Line{}, errors.Wrap(err, "line direction")
	}
	return Line{point: p, dir: u}, nil
}

// LineThrough builds the line from a towards b.
func LineThrough(a, b vec.Vec3) (Line, error) {
	return NewLine(a, vec.Sub(b, a))
}

func (l Line) Point() vec.Vec3 {
	return l.point
}

func (l Line) Dir() vec.Vec3 {
	return l.dir
}

// PointAt returns point + t*dir.
func (l Line) PointAt(t float32) vec.Vec3 {
	return vec.Add(l.point, l.dir.Scale(t))
}

func (l Line) IsParallel(o Line) bool {
	return math.Scalar(vec.Dot(l.dir, o.dir)).Abs().Eq(1)
}

func (l Line) IsOrthogonal(o Line) bool {
	return math.Scalar(vec.Dot(l.dir, o.dir)).Eq(0)
}

func (l Line) String() string {
	return fmt.Sprintf("P:%v V:%v", l.point, l.dir)
}

// Segment is the finite piece of a line between two endpoints.
type Segment struct {
	Start vec.Vec3
	End   vec.Vec3
}

func (s Segment) Length() float32 {
	return vec.Distance(s.Start, s.End)
}

// Line fails for segments shorter than math.Epsilon.
func (s Segment) Line() (Line, error) {
	return LineThrough(s.Start, s.End)
}

func (s Segment) String() string {
	return fmt.Sprintf("[%v to %v]", s.Start, s.End)
}

// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"polybsp/math"
	"polybsp/math/vec"
)

var (
	ErrDegeneratePolygon = errors.New("degenerate polygon")
	ErrNotSpanning       = errors.New("polygon does not span plane")
)

// Polygon is a planar, simple, cyclic vertex sequence. ID identifies the
// polygon a fragment was cut from, every fragment of a split keeps the ID of
// its source.
type Polygon struct {
	ID       uuid.UUID
	Vertices []vec.Vec3
}

// NewPolygon copies vertices and tags the polygon with a fresh ID.
func NewPolygon(vertices ...vec.Vec3) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, errors.Wrapf(ErrDegeneratePolygon, "%d vertices", len(vertices))
	}
	return Polygon{
		ID:       uuid.Must(uuid.NewV7()),
		Vertices: append([]vec.Vec3(nil), vertices...),
	}, nil
}

func (p *Polygon) next(i int) vec.Vec3 {
	return p.Vertices[(i+1)%len(p.Vertices)]
}

// Plane returns the supporting plane. The normal comes from the first run of
// three consecutive vertices that are not collinear, the plane is anchored at
// the first vertex.
func (p *Polygon) Plane() (Plane, error) {
	if len(p.Vertices) < 3 {
		return Plane{}, errors.Wrapf(ErrDegeneratePolygon, "%d vertices", len(p.Vertices))
	}
	for i := 0; i+2 < len(p.Vertices); i++ {
		v1 := vec.Sub(p.Vertices[i], p.Vertices[i+1])
		v2 := vec.Sub(p.Vertices[i+1], p.Vertices[i+2])
		n := vec.Cross(v1, v2)
		if math.Scalar(n.Length()).Eq(0) {
			continue
		}
		return NewPlane(p.Vertices[0], n)
	}
	return Plane{}, errors.Wrap(ErrDegeneratePolygon, "no normal")
}

// Relation classifies the polygon against pl. Vertices within math.Epsilon
// of pl count for neither side.
func (p *Polygon) Relation(pl Plane) Relation {
	front, back := 0, 0
	for _, v := range p.Vertices {
		switch pl.Side(v) {
		case 1:
			front++
		case -1:
			back++
		}
	}
	switch {
	case front == 0 && back == 0:
		return Coincident
	case back == 0:
		return InFront
	case front == 0:
		return Behind
	}
	return Spanning
}

// Split cuts a spanning polygon along pl. Edges whose endpoints lie strictly
// on opposite sides get a new vertex at the crossing which goes to both
// fragments. A vertex on pl is never duplicated by a synthesized point: it
// goes to the side of each of its neighbours, or to both fragments if both
// neighbours lie on pl too. Both fragments keep the vertex order.
func (p *Polygon) Split(pl Plane) (front, back Polygon, err error) {
	if r := p.Relation(pl); r != Spanning {
		return Polygon{}, Polygon{}, errors.Wrapf(ErrNotSpanning, "relation %v", r)
	}
	n := len(p.Vertices)
	sides := make([]int, n)
	for i, v := range p.Vertices {
		sides[i] = pl.Side(v)
	}
	var fv, bv []vec.Vec3
	for i, cur := range p.Vertices {
		sc := sides[i]
		sn := sides[(i+1)%n]
		switch sc {
		case 1:
			fv = append(fv, cur)
		case -1:
			bv = append(bv, cur)
		default:
			sp := sides[(i+n-1)%n]
			toFront := sp == 1 || sn == 1
			toBack := sp == -1 || sn == -1
			if !toFront && !toBack {
				toFront, toBack = true, true
			}
			if toFront {
				fv = append(fv, cur)
			}
			if toBack {
				bv = append(bv, cur)
			}
		}
		if sc*sn == -1 {
			l, err := LineThrough(cur, p.next(i))
			if err != nil {
				return Polygon{}, Polygon{}, errors.Wrapf(err, "edge %d", i)
			}
			x, err := pl.Intersect(l)
			if err != nil {
				return Polygon{}, Polygon{}, errors.Wrapf(err, "edge %d", i)
			}
			fv = append(fv, x)
			bv = append(bv, x)
		}
	}
	if len(fv) < 3 || len(bv) < 3 {
		return Polygon{}, Polygon{}, errors.Wrapf(ErrDegeneratePolygon,
			"split fragments with %d and %d vertices", len(fv), len(bv))
	}
	return Polygon{ID: p.ID, Vertices: fv}, Polygon{ID: p.ID, Vertices: bv}, nil
}

// Contains reports whether v, a point on the polygon's plane, lies inside
// the polygon or on its boundary. It sums the signed angles the edges
// subtend at v, which is a full turn inside and zero outside whether or not
// the polygon is convex.
func (p *Polygon) Contains(v vec.Vec3) bool {
	pl, err := p.Plane()
	if err != nil {
		return false
	}
	n := pl.Normal()
	var sum float32
	for i, a := range p.Vertices {
		b := p.next(i)
		if onSegment(v, a, b) {
			return true
		}
		da := vec.Sub(a, v)
		db := vec.Sub(b, v)
		sum += math.Atan2(vec.Dot(n, vec.Cross(da, db)), vec.Dot(da, db))
	}
	return math.Scalar(sum).Abs().Eq(math.TwoPi)
}

func onSegment(v, a, b vec.Vec3) bool {
	ab := vec.Sub(b, a)
	l2 := vec.Dot(ab, ab)
	if l2 == 0 {
		return vec.Equal(v, a)
	}
	t := math.Clamp(0, vec.Dot(vec.Sub(v, a), ab)/l2, 1)
	return math.Scalar(vec.Distance(v, vec.Add(a, ab.Scale(t)))).Eq(0)
}

// Area returns the surface area of the polygon.
func (p *Polygon) Area() float32 {
	if len(p.Vertices) < 3 {
		return 0
	}
	o := p.Vertices[0]
	var sum vec.Vec3
	for i := 1; i+1 < len(p.Vertices); i++ {
		sum = vec.Add(sum, vec.Cross(vec.Sub(p.Vertices[i], o), vec.Sub(p.Vertices[i+1], o)))
	}
	return sum.Length() / 2
}

// Centroid returns the vertex average.
func (p *Polygon) Centroid() vec.Vec3 {
	var c vec.Vec3
	if len(p.Vertices) == 0 {
		return c
	}
	for _, v := range p.Vertices {
		c = vec.Add(c, v)
	}
	return c.Scale(1 / float32(len(p.Vertices)))
}

// Reverse returns the polygon with opposite winding and the same ID.
func (p *Polygon) Reverse() Polygon {
	r := make([]vec.Vec3, len(p.Vertices))
	for i, v := range p.Vertices {
		r[len(r)-1-i] = v
	}
	return Polygon{ID: p.ID, Vertices: r}
}

// Equal compares the vertex sequences with tolerance. IDs are ignored.
func (p *Polygon) Equal(o *Polygon) bool {
	if len(p.Vertices) != len(o.Vertices) {
		return false
	}
	for i := range p.Vertices {
		if !vec.Equal(p.Vertices[i], o.Vertices[i]) {
			return false
		}
	}
	return true
}

func (p *Polygon) String() string {
	var b strings.Builder
	b.WriteString("Vertices:")
	for _, v := range p.Vertices {
		b.WriteByte(' ')
		b.WriteString(v.String())
	}
	return b.String()
}

// SPDX-License-Identifier: GPL-2.0-or-later

// Package scene generates reproducible polygon soups and trace segments.
package scene

import (
	"polybsp/geom"
	"polybsp/math/vec"
	"polybsp/rand"
)

// maxTries bounds the rejection loops, a generator that can't find a usable
// shape after that many draws yields fewer shapes.
const maxTries = 64

func point(g *rand.Generator, extent float32) vec.Vec3 {
	return vec.Vec3{
		X: g.Uniform(-extent, extent),
		Y: g.Uniform(-extent, extent),
		Z: g.Uniform(-extent, extent),
	}
}

// Triangles returns n triangles with corners inside the cube
// [-extent,extent]^3. Slivers with less than 1% of extent^2 area are redrawn.
func Triangles(g *rand.Generator, n int, extent float32) []geom.Polygon {
	ps := make([]geom.Polygon, 0, n)
	minArea := extent * extent / 100
	for len(ps) < n {
		p, ok := triangle(g, extent, minArea)
		if !ok {
			break
		}
		ps = append(ps, p)
	}
	return ps
}

func triangle(g *rand.Generator, extent, minArea float32) (geom.Polygon, bool) {
	for i := 0; i < maxTries; i++ {
		p, err := geom.NewPolygon(point(g, extent), point(g, extent), point(g, extent))
		if err != nil || p.Area() < minArea {
			continue
		}
		if _, err := p.Plane(); err != nil {
			continue
		}
		return p, true
	}
	return geom.Polygon{}, false
}

// Quads returns n rectangles centered inside the cube [-extent,extent]^3
// with random orientation and side lengths between extent/5 and extent.
func Quads(g *rand.Generator, n int, extent float32) []geom.Polygon {
	ps := make([]geom.Polygon, 0, n)
	for len(ps) < n {
		p, ok := quad(g, extent)
		if !ok {
			break
		}
		ps = append(ps, p)
	}
	return ps
}

func quad(g *rand.Generator, extent float32) (geom.Polygon, bool) {
	for i := 0; i < maxTries; i++ {
		c := point(g, extent)
		u, err := point(g, 1).Unit()
		if err != nil {
			continue
		}
		v, err := vec.Cross(u, point(g, 1)).Unit()
		if err != nil {
			continue
		}
		a := u.Scale(g.Uniform(extent/10, extent/2))
		b := v.Scale(g.Uniform(extent/10, extent/2))
		p, err := geom.NewPolygon(
			vec.Sub(vec.Sub(c, a), b),
			vec.Sub(vec.Add(c, a), b),
			vec.Add(vec.Add(c, a), b),
			vec.Add(vec.Sub(c, a), b),
		)
		if err != nil {
			continue
		}
		if _, err := p.Plane(); err != nil {
			continue
		}
		return p, true
	}
	return geom.Polygon{}, false
}

// Segments returns n segments with endpoints inside the cube
// [-2*extent,2*extent]^3 and at least extent long.
func Segments(g *rand.Generator, n int, extent float32) []geom.Segment {
	ss := make([]geom.Segment, 0, n)
	for len(ss) < n {
		s, ok := segment(g, extent)
		if !ok {
			break
		}
		ss = append(ss, s)
	}
	return ss
}

func segment(g *rand.Generator, extent float32) (geom.Segment, bool) {
	for i := 0; i < maxTries; i++ {
		s := geom.Segment{Start: point(g, 2*extent), End: point(g, 2*extent)}
		if s.Length() >= extent {
			return s, true
		}
	}
	return geom.Segment{}, false
}

// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"

	"polybsp/geom"
	"polybsp/math/vec"
)

// Hit is the first polygon along a traced segment.
type Hit struct {
	Polygon *geom.Polygon
	// Point is where the segment meets Polygon.
	Point vec.Vec3
	// Node stores Polygon.
	Node NodeID
}

// DetectCollision returns the polygon nearest to s.Start that s touches, or
// nil if there is none.
func (t *Tree) DetectCollision(s geom.Segment) (*geom.Polygon, error) {
	h, err := t.Trace(s)
	if err != nil || h == nil {
		return nil, err
	}
	return h.Polygon, nil
}

// Trace is DetectCollision with the hit location.
func (t *Tree) Trace(s geom.Segment) (*Hit, error) {
	if t.IsEmpty() {
		return nil, nil
	}
	var h *Hit
	var err error
	if t.iter {
		h, err = t.traceStack(s)
	} else {
		h, err = t.trace(0, s)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "trace %v", s)
	}
	return h, nil
}

// traceStep is one unit of trace work. Either seg is traced through node or,
// with check set, the polygons of node are tested at point.
type traceStep struct {
	node  NodeID
	seg   geom.Segment
	check bool
	point vec.Vec3
}

// steps returns the work for s at node id in the order it has to be done:
// the side of s.Start first, then the polygons of the node, then the far
// side. Children that do not exist are left out.
func (t *Tree) steps(id NodeID, s geom.Segment) ([]traceStep, error) {
	n := t.nodes[id]
	s1 := n.Plane.Side(s.Start)
	s2 := n.Plane.Side(s.End)

	visit := func(c NodeID, seg geom.Segment) []traceStep {
		if c == NoNode {
			return nil
		}
		return []traceStep{{node: c, seg: seg}}
	}
	check := traceStep{node: id, check: true}

	switch {
	case s1 == s2 && s1 != 0:
		// the other side can't be reached without crossing the plane
		return visit(n.child(s1), s), nil
	case s1 == 0 && s2 == 0:
		// s lies in the plane and crosses it nowhere in particular
		return append(visit(n.Children[front], s), visit(n.Children[back], s)...), nil
	case s1 == 0:
		check.point = s.Start
		return append([]traceStep{check}, visit(n.child(s2), s)...), nil
	case s2 == 0:
		check.point = s.End
		return append(visit(n.child(s1), s), check), nil
	}
	l, err := s.Line()
	if err != nil {
		return nil, err
	}
	mid, err := n.Plane.Intersect(l)
	if err != nil {
		return nil, errors.Wrapf(err, "node %d", id)
	}
	check.point = mid
	ws := visit(n.child(s1), geom.Segment{Start: s.Start, End: mid})
	ws = append(ws, check)
	return append(ws, visit(n.child(s2), geom.Segment{Start: mid, End: s.End})...), nil
}

// hit tests the polygons of node id at p.
func (t *Tree) hit(id NodeID, p vec.Vec3) *Hit {
	for _, poly := range t.nodes[id].Polygons {
		if poly.Contains(p) {
			return &Hit{Polygon: poly, Point: p, Node: id}
		}
	}
	return nil
}

func (t *Tree) trace(id NodeID, s geom.Segment) (*Hit, error) {
	ws, err := t.steps(id, s)
	if err != nil {
		return nil, err
	}
	for _, w := range ws {
		var h *Hit
		if w.check {
			h = t.hit(w.node, w.point)
		} else if h, err = t.trace(w.node, w.seg); err != nil {
			return nil, err
		}
		if h != nil {
			return h, nil
		}
	}
	return nil, nil
}

func (t *Tree) traceStack(s geom.Segment) (*Hit, error) {
	stack := []traceStep{{node: 0, seg: s}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.check {
			if h := t.hit(w.node, w.point); h != nil {
				return h, nil
			}
			continue
		}
		ws, err := t.steps(w.node, w.seg)
		if err != nil {
			return nil, err
		}
		for i := len(ws) - 1; i >= 0; i-- {
			stack = append(stack, ws[i])
		}
	}
	return nil, nil
}

// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"log/slog"

	"github.com/pkg/errors"

	"polybsp/geom"
)

type opKind byte

const (
	opAppend opKind = iota // add poly to node
	opChild                // hang a new leaf for poly below node
	opSplit
)

// op is one pending mutation. Inserting a polygon first collects all of
// them and only applies them once nothing can fail anymore.
type op struct {
	kind  opKind
	node  NodeID
	side  int
	poly  geom.Polygon
	plane geom.Plane
}

// Insert stores p, splitting it along every partition plane it spans. On
// error the tree is left unchanged.
func (t *Tree) Insert(p geom.Polygon) error {
	pl, err := p.Plane()
	if err != nil {
		return errors.Wrap(err, "insert")
	}
	if t.IsEmpty() {
		t.newNode(pl, NoNode, &p)
		t.inserted++
		t.log.Debug("bsp: new root", slog.String("polygon", p.ID.String()))
		return nil
	}
	var ops []op
	if t.iter {
		ops, err = t.planStack(p)
	} else {
		ops, err = t.plan(0, p, nil)
	}
	if err != nil {
		return errors.Wrap(err, "insert")
	}
	t.apply(ops)
	t.inserted++
	return nil
}

// InsertAll inserts ps in order and stops at the first failure. Polygons
// inserted before the failing one stay in the tree.
func (t *Tree) InsertAll(ps []geom.Polygon) error {
	for i, p := range ps {
		if err := t.Insert(p); err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
	}
	return nil
}

func (t *Tree) plan(id NodeID, p geom.Polygon, ops []op) ([]op, error) {
	n := t.nodes[id]
	switch r := p.Relation(n.Plane); r {
	case geom.Coincident:
		return append(ops, op{kind: opAppend, node: id, poly: p}), nil
	case geom.InFront:
		return t.planChild(id, front, p, ops)
	case geom.Behind:
		return t.planChild(id, back, p, ops)
	case geom.Spanning:
		f, b, err := p.Split(n.Plane)
		if err != nil {
			return nil, errors.Wrapf(err, "node %d", id)
		}
		ops = append(ops, op{kind: opSplit, node: id, poly: p})
		// the fragments are not classified against n.Plane again
		ops, err = t.planChild(id, front, f, ops)
		if err != nil {
			return nil, err
		}
		return t.planChild(id, back, b, ops)
	default:
		return nil, t.invariant(id, r)
	}
}

func (t *Tree) planChild(id NodeID, side int, p geom.Polygon, ops []op) ([]op, error) {
	if c := t.nodes[id].Children[side]; c != NoNode {
		return t.plan(c, p, ops)
	}
	pl, err := p.Plane()
	if err != nil {
		return nil, errors.Wrapf(err, "new leaf below node %d", id)
	}
	return append(ops, op{kind: opChild, node: id, side: side, poly: p, plane: pl}), nil
}

// pending asks to place poly in child side of parent. A NoNode parent
// stands for the root.
type pending struct {
	parent NodeID
	side   int
	poly   geom.Polygon
}

// planStack produces the same ops in the same order as plan.
func (t *Tree) planStack(p geom.Polygon) ([]op, error) {
	var ops []op
	stack := []pending{{NoNode, front, p}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := NodeID(0)
		if w.parent != NoNode {
			id = t.nodes[w.parent].Children[w.side]
		}
		if id == NoNode {
			pl, err := w.poly.Plane()
			if err != nil {
				return nil, errors.Wrapf(err, "new leaf below node %d", w.parent)
			}
			ops = append(ops, op{kind: opChild, node: w.parent, side: w.side, poly: w.poly, plane: pl})
			continue
		}
		n := t.nodes[id]
		switch r := w.poly.Relation(n.Plane); r {
		case geom.Coincident:
			ops = append(ops, op{kind: opAppend, node: id, poly: w.poly})
		case geom.InFront:
			stack = append(stack, pending{id, front, w.poly})
		case geom.Behind:
			stack = append(stack, pending{id, back, w.poly})
		case geom.Spanning:
			f, b, err := w.poly.Split(n.Plane)
			if err != nil {
				return nil, errors.Wrapf(err, "node %d", id)
			}
			ops = append(ops, op{kind: opSplit, node: id, poly: w.poly})
			stack = append(stack, pending{id, back, b}, pending{id, front, f})
		default:
			return nil, t.invariant(id, r)
		}
	}
	return ops, nil
}

func (t *Tree) apply(ops []op) {
	for _, o := range ops {
		p := o.poly
		switch o.kind {
		case opAppend:
			n := t.nodes[o.node]
			n.Polygons = append(n.Polygons, &p)
		case opChild:
			id := t.newNode(o.plane, o.node, &p)
			t.nodes[o.node].Children[o.side] = id
			t.log.Debug("bsp: new leaf",
				slog.Int("node", int(id)), slog.Int("parent", int(o.node)),
				slog.String("polygon", p.ID.String()))
		case opSplit:
			t.splits++
			t.log.Debug("bsp: split",
				slog.Int("node", int(o.node)), slog.String("polygon", p.ID.String()))
		}
	}
}

func (t *Tree) invariant(id NodeID, r geom.Relation) error {
	t.log.Error("bsp: unclassifiable polygon", slog.Int("node", int(id)), slog.Any("relation", r))
	return errors.Wrapf(ErrInvariant, "node %d: relation %v", id, r)
}

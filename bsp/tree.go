// SPDX-License-Identifier: GPL-2.0-or-later

// Package bsp keeps polygons in a binary space partition tree and traces
// segments against them.
//
// Nodes live in an arena owned by the Tree and refer to each other by
// NodeID. The tree only ever grows. Insert, DetectCollision and
// PolygonsCount recurse as deep as the tree is; a tree built from
// adversarially ordered input can degenerate into a list, in that case set
// Options.Iterative to walk it with an explicit stack instead.
//
// A Tree is not safe for concurrent use, see SyncTree.
package bsp

import (
	"log/slog"

	"github.com/pkg/errors"

	"polybsp/geom"
)

var ErrInvariant = errors.New("bsp invariant violated")

type NodeID int

const NoNode NodeID = -1

const (
	front = 0
	back  = 1
)

type Node struct {
	Plane geom.Plane
	// Polygons lying in Plane.
	Polygons []*geom.Polygon
	// Children[0] is in front of Plane, Children[1] behind it.
	Children [2]NodeID
	// Parent is NoNode for the root.
	Parent NodeID
	Depth  int
}

func (n *Node) Front() NodeID {
	return n.Children[front]
}

func (n *Node) Back() NodeID {
	return n.Children[back]
}

func (n *Node) IsLeaf() bool {
	return n.Children[front] == NoNode && n.Children[back] == NoNode
}

// child maps a plane side as returned by geom.Plane.Side to a child.
func (n *Node) child(side int) NodeID {
	if side < 0 {
		return n.Children[back]
	}
	return n.Children[front]
}

type Options struct {
	// Iterative selects the explicit stack variants of insert, trace and
	// count.
	Iterative bool
	Logger    *slog.Logger
}

type Tree struct {
	nodes    []*Node
	iter     bool
	log      *slog.Logger
	inserted int
	splits   int
}

func New(opts Options) *Tree {
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Tree{
		iter: opts.Iterative,
		log:  l,
	}
}

func (t *Tree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Root returns nil for an empty tree.
func (t *Tree) Root() *Node {
	if t.IsEmpty() {
		return nil
	}
	return t.nodes[0]
}

// Node returns nil for NoNode.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

func (t *Tree) Parent(id NodeID) NodeID {
	n := t.Node(id)
	if n == nil {
		return NoNode
	}
	return n.Parent
}

func (t *Tree) NodesCount() int {
	return len(t.nodes)
}

func (t *Tree) newNode(pl geom.Plane, parent NodeID, p *geom.Polygon) NodeID {
	id := NodeID(len(t.nodes))
	depth := 0
	if parent != NoNode {
		depth = t.nodes[parent].Depth + 1
	}
	t.nodes = append(t.nodes, &Node{
		Plane:    pl,
		Polygons: []*geom.Polygon{p},
		Children: [2]NodeID{NoNode, NoNode},
		Parent:   parent,
		Depth:    depth,
	})
	return id
}

// RootPolygonsCount returns the number of polygons stored in the root.
func (t *Tree) RootPolygonsCount() int {
	if t.IsEmpty() {
		return 0
	}
	return len(t.nodes[0].Polygons)
}

// PolygonsCount returns the number of stored polygons, fragments included.
func (t *Tree) PolygonsCount() int {
	if t.IsEmpty() {
		return 0
	}
	if t.iter {
		return t.countStack(0)
	}
	return t.count(0)
}

func (t *Tree) count(id NodeID) int {
	if id == NoNode {
		return 0
	}
	n := t.nodes[id]
	return len(n.Polygons) + t.count(n.Children[front]) + t.count(n.Children[back])
}

func (t *Tree) countStack(id NodeID) int {
	c := 0
	stack := []NodeID{id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == NoNode {
			continue
		}
		n := t.nodes[id]
		c += len(n.Polygons)
		stack = append(stack, n.Children[front], n.Children[back])
	}
	return c
}

// Depth returns the number of levels, 0 for an empty tree.
func (t *Tree) Depth() int {
	d := 0
	for _, n := range t.nodes {
		d = max(d, n.Depth+1)
	}
	return d
}

// Walk visits the nodes in pre-order, front before back. Returning false
// from fn skips the children of that node.
func (t *Tree) Walk(fn func(id NodeID, n *Node) bool) {
	if t.IsEmpty() {
		return
	}
	stack := []NodeID{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[id]
		if !fn(id, n) {
			continue
		}
		for _, c := range []NodeID{n.Children[back], n.Children[front]} {
			if c != NoNode {
				stack = append(stack, c)
			}
		}
	}
}

type Stats struct {
	Nodes    int
	Leaves   int
	Polygons int
	Inserted int
	Splits   int
	Depth    int
}

func (t *Tree) Stats() Stats {
	s := Stats{
		Nodes:    len(t.nodes),
		Polygons: t.PolygonsCount(),
		Inserted: t.inserted,
		Splits:   t.splits,
		Depth:    t.Depth(),
	}
	for _, n := range t.nodes {
		if n.IsLeaf() {
			s.Leaves++
		}
	}
	return s
}

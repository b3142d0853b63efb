// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented description of the tree to w. The format is meant
// for humans and may change.
func (t *Tree) Dump(w io.Writer) error {
	return t.DumpDepth(w, -1)
}

// DumpDepth is Dump restricted to nodes at most maxDepth below the root. A
// negative maxDepth means no limit.
func (t *Tree) DumpDepth(w io.Writer, maxDepth int) error {
	if t.IsEmpty() {
		_, err := fmt.Fprintln(w, "empty")
		return err
	}
	var err error
	t.Walk(func(id NodeID, n *Node) bool {
		if err != nil {
			return false
		}
		side := "root"
		if n.Parent != NoNode {
			side = "front"
			if t.nodes[n.Parent].Children[back] == id {
				side = "back"
			}
		}
		ind := strings.Repeat("  ", n.Depth)
		if _, err = fmt.Fprintf(w, "%s%s node %d [%v]\n", ind, side, id, n.Plane); err != nil {
			return false
		}
		for _, p := range n.Polygons {
			if _, err = fmt.Fprintf(w, "%s  %v\n", ind, p); err != nil {
				return false
			}
		}
		return maxDepth < 0 || n.Depth < maxDepth
	})
	return err
}

func (t *Tree) String() string {
	var b strings.Builder
	t.Dump(&b)
	return b.String()
}

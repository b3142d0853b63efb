// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"io"
	"sync"

	"polybsp/geom"
)

// SyncTree guards a Tree with a reader/writer lock. Inserts are exclusive,
// traces and counts may run in parallel.
type SyncTree struct {
	mu   sync.RWMutex
	tree *Tree
}

func NewSync(opts Options) *SyncTree {
	return &SyncTree{tree: New(opts)}
}

func (s *SyncTree) Insert(p geom.Polygon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(p)
}

func (s *SyncTree) DetectCollision(seg geom.Segment) (*geom.Polygon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.DetectCollision(seg)
}

func (s *SyncTree) Trace(seg geom.Segment) (*Hit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Trace(seg)
}

func (s *SyncTree) PolygonsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.PolygonsCount()
}

func (s *SyncTree) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Stats()
}

func (s *SyncTree) DumpDepth(w io.Writer, maxDepth int) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.DumpDepth(w, maxDepth)
}

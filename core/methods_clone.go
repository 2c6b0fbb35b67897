// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Snapshotting graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices, adjacency lists (arc order
// preserved) and the canonical edge table.
//
// Algorithms that may run while another goroutine calls RemoveEdge should work
// on a clone: removal rewrites adjacency lists in place.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make(map[int][]Arc, len(g.adjacency)),
		edges:     make(map[int]Edge, len(g.edges)),
	}
	for id, arcs := range g.adjacency {
		cp := make([]Arc, len(arcs))
		copy(cp, arcs)
		clone.adjacency[id] = cp
	}
	for id, e := range g.edges {
		clone.edges[id] = e
	}

	return clone
}

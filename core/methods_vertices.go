// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - AddVertex under the write lock; queries under the read lock.

package core

import "sort"

// AddVertex inserts a vertex with an empty adjacency list.
// Adding an existing vertex is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return // no-op for existing vertex
	}
	g.adjacency[id] = make([]Arc, 0)
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// MaxVertex returns the largest vertex ID, or false when the graph is empty.
// It is the "last" vertex of a contiguous 0-based or 1-based numbering.
// Complexity: O(V).
func (g *Graph) MaxVertex() (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		maxID int
		found bool
	)
	for id := range g.adjacency {
		if !found || id > maxID {
			maxID, found = id, true
		}
	}

	return maxID, found
}

// Arcs returns a copy of the adjacency list of v in insertion order.
// Returns ErrVertexNotFound if v was never added.
// Complexity: O(deg(v)).
func (g *Graph) Arcs(v int) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out, nil
}

// Degree returns the number of arcs stored in v's adjacency list.
// A self-loop counts twice.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(arcs), nil
}

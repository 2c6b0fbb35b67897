// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/FindEdge/RemoveEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - Arc order inside an adjacency list is insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge stores an undirected edge u—v with the caller-assigned ID.
//
// Steps:
//  1. Validate weight (ErrNegativeWeight).
//  2. Lock, check both endpoints exist (ErrVertexNotFound) and the ID is unused (ErrDuplicateEdgeID).
//  3. Append Arc{id, v} to u's list and Arc{id, u} to v's list.
//  4. Record the canonical triple under id.
//
// Parallel edges (same endpoints, different IDs) are allowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64, id int) error {
	// 1) Input validation
	if weight < 0 {
		return fmt.Errorf("%w: edge %d (%d—%d) weight=%d", ErrNegativeWeight, id, u, v, weight)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	if _, ok := g.adjacency[v]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if _, taken := g.edges[id]; taken {
		return fmt.Errorf("%w: %d", ErrDuplicateEdgeID, id)
	}

	// 3) Both halves share the same ID; each records only its far endpoint.
	g.adjacency[u] = append(g.adjacency[u], Arc{EdgeID: id, To: v, Weight: weight})
	g.adjacency[v] = append(g.adjacency[v], Arc{EdgeID: id, To: u, Weight: weight})

	// 4) Canonical entry
	g.edges[id] = Edge{ID: id, U: u, V: v, Weight: weight}

	return nil
}

// FindEdge returns the canonical (U, V, Weight) record of the edge with the given ID,
// or ErrEdgeNotFound if no such edge is present.
// Complexity: O(1).
func (g *Graph) FindEdge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return e, nil
}

// RemoveEdge deletes the edge with the given ID from both endpoint lists and
// from the canonical table. Removing an absent edge is a no-op.
// Complexity: O(deg(U) + deg(V)).
func (g *Graph) RemoveEdge(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return
	}
	g.adjacency[e.U] = dropArcs(g.adjacency[e.U], id)
	if e.V != e.U {
		g.adjacency[e.V] = dropArcs(g.adjacency[e.V], id)
	}
	delete(g.edges, id)
}

// HasEdge reports whether an edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasEdge(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// Edges returns all canonical edges sorted by ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges in the canonical table.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// dropArcs filters out every arc carrying edgeID, reusing the backing array.
func dropArcs(arcs []Arc, edgeID int) []Arc {
	kept := arcs[:0]
	for _, a := range arcs {
		if a.EdgeID != edgeID {
			kept = append(kept, a)
		}
	}
	// clear the tail so removed arcs do not linger in the backing array
	for i := len(kept); i < len(arcs); i++ {
		arcs[i] = Arc{}
	}

	return kept
}

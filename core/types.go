// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Arc, Edge and Graph declarations, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - A single sync.RWMutex guards both the adjacency lists and the canonical edge table.
//   - Read queries take the read lock; AddVertex/AddEdge/RemoveEdge take the write lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that was never added.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a lookup of an edge ID absent from the canonical table.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrDuplicateEdgeID indicates AddEdge was called with an ID that is already in use.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")
)

// Arc is one directed half of an undirected edge.
//
// An Arc lives in the adjacency list of its "from" vertex and records only
// the opposite endpoint. The from endpoint is positional: it is the vertex
// whose list holds the arc.
type Arc struct {
	// EdgeID is shared by both arcs of the same edge.
	EdgeID int

	// To is the vertex this arc leads to.
	To int

	// Weight is the non-negative cost of traversing the edge.
	Weight int64
}

// Edge is the canonical record of an undirected edge.
//
// U and V keep the order the edge was inserted with; that order carries no
// meaning beyond reproducibility.
type Edge struct {
	ID     int
	U      int
	V      int
	Weight int64
}

// Other returns the endpoint opposite to x. If x is not an endpoint, U is returned.
func (e Edge) Other(x int) int {
	if x == e.U {
		return e.V
	}

	return e.U
}

// Graph is an undirected, weighted graph with integer vertex IDs.
//
// Storage:
//   - adjacency[v] is the ordered list of arcs leaving v.
//   - edges[id] is the canonical (U, V, Weight) triple used for reverse lookup and removal.
//
// Invariant: for every id in edges, exactly one arc carrying that id sits in the
// adjacency list of each endpoint (a self-loop contributes two arcs to the same list).
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	adjacency map[int][]Arc
	edges     map[int]Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[int][]Arc),
		edges:     make(map[int]Edge),
	}
}

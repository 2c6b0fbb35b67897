// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted undirected graphs.
//
// Dijkstra computes the minimum-cost distance from a single source vertex to all
// other vertices of a core.Graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes arcs in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is finalized at most once (V extracts).
//	   • Each arc relaxation may push into the priority queue (up to 2E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance and finalized maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Determinism:
//
//	The queue is ordered by (distance, vertex ID), so equal-distance vertices are
//	finalized in ascending ID order and repeated runs pop vertices identically.
//
// Options:
//
//	– WithContext: cancellation, checked once per popped vertex.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//
// Finalization order:
//
//	Search also returns the vertices in the order they were finalized. Every vertex
//	but the source is finalized after the neighbour that gave it its final distance,
//	so shortest-path arcs taken in that order form a DAG even with zero-weight edges.
//	Order replays it from an existing Distances map.
//
// Example usage:
//
//	dist, err := dijkstra.Dijkstra(g, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if dist.Reachable(4) {
//	    fmt.Printf("distance to 4: %d\n", dist[4])
//	}
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Infinity marks an unreachable vertex in a Distances map.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Distances maps every vertex ID of the graph to its shortest distance from the
// source. Unreachable vertices map to Infinity.
type Distances map[int]int64

// Reachable reports whether v is a known vertex with a finite distance.
func (d Distances) Reachable(v int) bool {
	dv, ok := d[v]

	return ok && dv != Infinity
}

// Add returns a + b, or Infinity when either operand is Infinity or the sum
// would overflow int64. Both operands must be non-negative.
func Add(a, b int64) int64 {
	if a == Infinity || b == Infinity || a > Infinity-b {
		return Infinity
	}

	return a + b
}

// Result is the outcome of Search.
type Result struct {
	Dist Distances

	// Order lists the reachable vertices in the order they were finalized, source
	// first. Distances along Order never decrease; equal distances appear in pop order,
	// which is not ID order when zero-weight edges are involved.
	Order []int
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Ctx context.Context // cancellation for long runs; never nil after DefaultOptions
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Ctx: context.Background()
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

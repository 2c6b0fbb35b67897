// Package pathcount counts distinct shortest paths from a source vertex to every
// vertex of a core.Graph.
//
// Given dist = dijkstra.Dijkstra(g, source), an arc v→w of weight ω belongs to the
// shortest-path DAG iff dist[v] + ω == dist[w]. Counts are propagated along DAG arcs:
//
//	count[source] = 1
//	count[w]     += count[v]   for every DAG arc v→w
//
// A vertex must be final before it propagates, so vertices are processed in the order
// Dijkstra finalized them (dijkstra.Search) and a DAG arc only propagates to a vertex
// later in that order. With positive weights this changes nothing: a DAG arc always
// leads to a strictly farther vertex. A zero-weight edge between two equidistant
// vertices satisfies the DAG condition both ways; it is counted once, in finalization
// order. Every reachable vertex other than the source was reached from an earlier
// vertex, so its count is positive. Self-loop arcs are ignored: a path never revisits
// a vertex.
//
// When zero-weight edges join equidistant vertices, paths crossing such an edge against
// finalization order are not counted, so a count can be lower than the number of
// distinct shortest simple paths. It is exact otherwise.
//
// Counts use math/big and never overflow: a ladder of k diamonds already has 2^k
// shortest paths.
//
// Complexity: O(V log V + E) additions of big integers.
package pathcount

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/dijkstra"
)

// Sentinel errors returned by CountPaths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("pathcount: graph is nil")

	// ErrDistanceMismatch indicates dist was not computed from source (dist[source] != 0).
	ErrDistanceMismatch = errors.New("pathcount: distances were not computed from source")
)

// Counts maps every vertex ID to the number of distinct shortest paths from the
// source. The source maps to 1; unreachable vertices map to 0.
type Counts map[int]*big.Int

// Get returns the count for v, or zero for an unknown vertex. The result must not be mutated.
func (c Counts) Get(v int) *big.Int {
	if n, ok := c[v]; ok {
		return n
	}

	return new(big.Int)
}

// CountPaths computes the number of shortest paths from source to every vertex of g.
// dist must be the result of dijkstra.Dijkstra(g, source).
func CountPaths(g *core.Graph, source int, dist dijkstra.Distances) (Counts, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if d, ok := dist[source]; !ok || d != 0 {
		return nil, fmt.Errorf("%w: source %d", ErrDistanceMismatch, source)
	}
	order, err := dijkstra.Order(g, source, dist)
	if err != nil {
		return nil, fmt.Errorf("pathcount: %w", err)
	}

	return propagate(g, source, dist, order)
}

// propagate counts along the DAG arcs of dist, visiting vertices in finalization order.
func propagate(g *core.Graph, source int, dist dijkstra.Distances, order []int) (Counts, error) {
	// 2) Every vertex starts at zero; the source has exactly one (empty) path.
	vertices := g.Vertices()
	count := make(Counts, len(vertices))
	for _, v := range vertices {
		count[v] = new(big.Int)
	}
	count[source].SetInt64(1)

	// 3) Rank in finalization order.
	rank := make(map[int]int, len(order))
	for i, v := range order {
		rank[v] = i
	}

	// 4) Propagate along DAG arcs in that order.
	for _, v := range order {
		if count[v].Sign() == 0 {
			continue // nothing to propagate
		}
		arcs, err := g.Arcs(v)
		if err != nil {
			return nil, fmt.Errorf("pathcount: arcs of %d: %w", v, err)
		}
		for _, a := range arcs {
			r, ok := rank[a.To]
			if !ok || r <= rank[v] {
				continue // unreachable, self-loop, or zero-weight arc against finalization order
			}
			if dijkstra.Add(dist[v], a.Weight) == dist[a.To] {
				count[a.To].Add(count[a.To], count[v])
			}
		}
	}

	return count, nil
}

// FromSource runs Dijkstra from source and counts shortest paths in one call.
func FromSource(ctx context.Context, g *core.Graph, source int) (dijkstra.Distances, Counts, error) {
	res, err := dijkstra.Search(g, source, dijkstra.WithContext(ctx))
	if err != nil {
		return nil, nil, err
	}
	count, err := propagate(g, source, res.Dist, res.Order)
	if err != nil {
		return nil, nil, err
	}

	return res.Dist, count, nil
}

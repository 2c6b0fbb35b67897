// Package shortestedges finds the edges that lie on at least one shortest path
// between two vertices of a core.Graph.
//
// An edge u—w of weight ω lies on some A→B shortest path iff, in one of its two
// orientations,
//
//	distA[u] + ω + distB[w] == D      where D = distA[B]
//
// Both orientations must be tested: an arc only records its far endpoint, and the
// canonical (U, V) order of an edge is insertion order, not travel direction.
// Self-loops are never on a shortest path, whatever their weight.
//
// Complexity: O(E) after the two Dijkstra runs.
package shortestedges

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/dijkstra"
)

// Orient reports the orientation in which the edge u—w (weight ω) lies on a shortest
// A→B path of length d.
//
// The u→w orientation is tested first and wins if both match. Both can only match in
// degenerate cases (zero-weight edges between equidistant vertices); the preference keeps
// the result deterministic.
//
// Sums saturate at dijkstra.Infinity, so an unreachable endpoint or an infinite d never
// matches.
func Orient(u, w int, weight int64, distA, distB dijkstra.Distances, d int64) (from, to int, ok bool) {
	if Tight(u, w, weight, distA, distB, d) {
		return u, w, true
	}
	if Tight(w, u, weight, distA, distB, d) {
		return w, u, true
	}

	return 0, 0, false
}

// Tight reports whether traversing an edge of the given weight from→to lies on a
// shortest A→B path of length d: distA[from] + weight + distB[to] == d.
// Self-loops and an infinite d never match.
func Tight(from, to int, weight int64, distA, distB dijkstra.Distances, d int64) bool {
	if d == dijkstra.Infinity || from == to {
		return false
	}

	return through(at(distA, from), weight, at(distB, to)) == d
}

// at treats vertices missing from d as unreachable.
func at(d dijkstra.Distances, v int) int64 {
	if dv, ok := d[v]; ok {
		return dv
	}

	return dijkstra.Infinity
}

// through is the length of the best A→B walk forced through one arc.
func through(fromA, weight, toB int64) int64 {
	return dijkstra.Add(dijkstra.Add(fromA, weight), toB)
}

// Classify returns, in ascending order and without duplicates, the IDs of every edge
// of g lying on some shortest path from the source of distA to b.
//
// distA and distB must be Dijkstra results from the two endpoints. If b is unreachable
// from the source of distA the result is empty.
//
// Every adjacency list is walked; the from endpoint of an arc is the vertex owning the
// list, and each edge ID is classified once even though it appears in two lists.
func Classify(g *core.Graph, distA, distB dijkstra.Distances, b int) []int {
	d, ok := distA[b]
	if !ok || d == dijkstra.Infinity {
		return []int{}
	}

	seen := make(map[int]bool, g.EdgeCount())
	onPath := make(map[int]bool)
	for _, u := range g.Vertices() {
		arcs, err := g.Arcs(u)
		if err != nil {
			continue // vertex vanished between Vertices and Arcs; nothing to classify
		}
		for _, a := range arcs {
			if seen[a.EdgeID] || a.To == u {
				continue
			}
			seen[a.EdgeID] = true
			if _, _, on := Orient(u, a.To, a.Weight, distA, distB, d); on {
				onPath[a.EdgeID] = true
			}
		}
	}

	return sortedIDs(onPath)
}

// Between runs Dijkstra from a and from b concurrently and classifies the edges of g
// lying on some a→b shortest path.
//
// g must not be mutated while Between runs; callers that cannot guarantee this should
// pass g.Clone().
func Between(ctx context.Context, g *core.Graph, a, b int) ([]int, error) {
	var distA, distB dijkstra.Distances

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		distA, err = dijkstra.Dijkstra(g, a, dijkstra.WithContext(egCtx))
		return err
	})
	eg.Go(func() error {
		var err error
		distB, err = dijkstra.Dijkstra(g, b, dijkstra.WithContext(egCtx))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("shortestedges: %w", err)
	}

	return Classify(g, distA, distB, b), nil
}

func sortedIDs(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

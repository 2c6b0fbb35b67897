package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/critpath/core"
)

// Order returns the reachable vertices of g in the order Search from source finalizes
// them, given dist = Dijkstra(g, source).
//
// The replay keeps one heap entry per vertex, pushed at its final distance when the first
// neighbour u with dist[u] + ω == dist[v] is popped. Search pops the same entries in the
// same (distance, ID) order; its extra entries are stale and never pop first.
func Order(g *core.Graph, source int, dist Distances) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	pushed := map[int]bool{source: true}
	pq := nodePQ{{id: source, dist: 0}}
	order := make([]int, 0, len(dist))
	for pq.Len() > 0 {
		u := heap.Pop(&pq).(*nodeItem).id
		order = append(order, u)

		arcs, err := g.Arcs(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: failed to get arcs of %d: %w", u, err)
		}
		for _, a := range arcs {
			dv, ok := dist[a.To]
			if !ok || dv == Infinity || pushed[a.To] || Add(dist[u], a.Weight) != dv {
				continue
			}
			pushed[a.To] = true
			heap.Push(&pq, &nodeItem{id: a.To, dist: dv})
		}
	}

	return order, nil
}

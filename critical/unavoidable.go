package critical

import (
	"sort"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/shortestedges"
)

// spArc is one tight orientation of a candidate edge.
type spArc struct {
	id, to int
}

// hop is the BFS parent link of a vertex.
type hop struct {
	prev, id int
}

// arcKey identifies an arc by its tail and edge; self-loops are excluded upstream.
type arcKey struct {
	from, id int
}

// unavoidable returns the edges lying on every a→b walk of the shortest-path subgraph
// built from edges (no self-loops).
//
// Every tight arc u→v satisfies distA[v] = distA[u] + ω, so any a→b walk over tight arcs
// has length D, and every shortest path of the graph is such a walk. An edge is
// critical iff removing it disconnects b from a in that subgraph.
//
// One a→b path P = p0..pk is taken by BFS; only its edges can be critical. Edge i of P
// is avoidable iff some p_j with j > i is reachable from p0..pi without the forward arcs
// of P. Scanning i upward with a single growing visited set keeps this O(V + E).
func (an *analysis) unavoidable(edges []core.Edge, d int64) []int {
	// 1) Tight arcs in either direction.
	adj := make(map[int][]spArc)
	for _, e := range edges {
		if shortestedges.Tight(e.U, e.V, e.Weight, an.distA, an.distB, d) {
			adj[e.U] = append(adj[e.U], spArc{id: e.ID, to: e.V})
		}
		if shortestedges.Tight(e.V, e.U, e.Weight, an.distA, an.distB, d) {
			adj[e.V] = append(adj[e.V], spArc{id: e.ID, to: e.U})
		}
	}

	// 2) BFS path a→b.
	parent := map[int]hop{an.a: {prev: an.a}}
	queue := []int{an.a}
	for len(queue) > 0 {
		if _, done := parent[an.b]; done {
			break
		}
		u := queue[0]
		queue = queue[1:]
		for _, arc := range adj[u] {
			if _, ok := parent[arc.to]; ok {
				continue
			}
			parent[arc.to] = hop{prev: u, id: arc.id}
			queue = append(queue, arc.to)
		}
	}
	if _, ok := parent[an.b]; !ok || an.a == an.b {
		return []int{}
	}

	var path []int    // p0..pk
	var pathIDs []int // edge i joins path[i] and path[i+1]
	for v := an.b; v != an.a; v = parent[v].prev {
		path = append(path, v)
		pathIDs = append(pathIDs, parent[v].id)
	}
	path = append(path, an.a)
	reverseInts(path)
	reverseInts(pathIDs)

	pos := make(map[int]int, len(path))
	forward := make(map[arcKey]bool, len(pathIDs))
	for i, v := range path {
		pos[v] = i
		if i < len(pathIDs) {
			forward[arcKey{from: v, id: pathIDs[i]}] = true
		}
	}

	// 3) Grow the set reachable from p0..pi without forward path arcs.
	visited := make(map[int]bool)
	farthest := 0
	var stack []int
	out := []int{}
	for i, id := range pathIDs {
		if !visited[path[i]] {
			visited[path[i]] = true
			stack = append(stack, path[i])
		}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if p, ok := pos[u]; ok && p > farthest {
				farthest = p
			}
			for _, arc := range adj[u] {
				if visited[arc.to] || forward[arcKey{from: u, id: arc.id}] {
					continue
				}
				visited[arc.to] = true
				stack = append(stack, arc.to)
			}
		}
		if farthest <= i {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Package core provides the thread-safe in-memory graph store used by every
// algorithm in critpath.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices are integer IDs, kept exactly as inserted (0-based or 1-based numbering
//     both work; nothing assumes contiguity).
//   - Every edge carries a caller-assigned integer ID and a non-negative weight.
//   - An edge u—v is stored twice, as Arc{ID, To: v} in u's list and Arc{ID, To: u}
//     in v's list. An arc does not know its from endpoint; it is implied by the list
//     that holds it.
//   - A canonical table edges[ID] = Edge{ID, U, V, Weight} is the source of truth for
//     reverse lookup (FindEdge) and removal (RemoveEdge). Adjacency lists are derived
//     indexes kept in sync on every mutation.
//   - Parallel edges (same endpoints, different IDs) are allowed.
//
// Determinism:
//
//	Vertices() and Edges() return results sorted by ID. Arcs(v) preserves insertion order.
//
// Concurrency:
//
//	One sync.RWMutex guards adjacency and the edge table. Queries take the read lock,
//	mutations the write lock. Multi-step algorithms should work on a Clone() when the
//	graph may be mutated concurrently, since RemoveEdge rewrites adjacency lists in place.
//
// Errors:
//
//	ErrVertexNotFound  - AddEdge/Arcs referenced a vertex never added.
//	ErrEdgeNotFound    - FindEdge on an unknown ID.
//	ErrNegativeWeight  - AddEdge with weight < 0.
//	ErrDuplicateEdgeID - AddEdge with an ID already in use.
//
// Quick ASCII example:
//
//	1 ─(e1:1)─ 2
//	 \         │
//	 (e3:5)  (e2:1)
//	   \       │
//	    └───── 3 ─(e4:1)─ 4
package core

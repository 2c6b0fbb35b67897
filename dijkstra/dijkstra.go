// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Every vertex of the graph gets a distance entry (Infinity) before relaxation begins.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries are ordered by (distance, vertex ID) for reproducible pop order.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/critpath/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Infinity if unreachable).
//     Every vertex of g has an entry.
//   - err:  error if inputs are invalid, a negative weight is detected,
//     or the context is cancelled.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (Distances, error) {
	res, err := Search(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Search is Dijkstra that also reports the order in which vertices were finalized.
// Validation and errors are those of Dijkstra.
func Search(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d (%d—%d) weight=%d", ErrNegativeWeight, e.ID, e.U, e.V, e.Weight)
		}
	}

	// 5) Prepare data structures for the algorithm.
	vertices := g.Vertices()
	r := &runner{
		g:         g,
		options:   cfg,
		source:    source,
		dist:      make(Distances, len(vertices)),
		finalized: make(map[int]bool, len(vertices)),
		pq:        make(nodePQ, 0, len(vertices)),
		order:     make([]int, 0, len(vertices)),
	}

	// 6) Initialize algorithm state and run main loop.
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Dist: r.dist, Order: r.order}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         *core.Graph  // The input graph; read-only within Dijkstra.
	options   Options      // Configuration options.
	source    int          // Start vertex.
	dist      Distances    // Maps vertex ID → current best distance from source.
	finalized map[int]bool // Tracks if a vertex's distance is final.
	pq        nodePQ       // Min-heap of *nodeItem for lazy priority queue.
	order     []int        // Finalized vertices, in pop order.
}

// init sets dist[v] = Infinity for every vertex, dist[source] = 0, and seeds the heap.
func (r *runner) init(vertices []int) {
	for _, v := range vertices {
		r.dist[v] = Infinity
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum (distance, ID) and relaxes its arcs until the heap is empty.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		// Cancellation check once per pop keeps the loop responsive on large graphs.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries for vertices already finalized.
		if r.finalized[u] {
			continue
		}
		r.finalized[u] = true
		r.order = append(r.order, u)

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving u and attempts to improve the distance of its far end.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	arcs, err := r.g.Arcs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get arcs of %d: %w", u, err)
	}

	for _, a := range arcs {
		// Strictly-better only: equal distances do not re-push.
		newDist := Add(r.dist[u], a.Weight)
		if newDist >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = newDist
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex ID
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

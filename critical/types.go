// Package critical reports the critical edges between two vertices of a core.Graph.
//
// An edge is critical for the pair (A, B) when removing it strictly increases the
// shortest A→B distance; equivalently, every shortest A→B path traverses it.
//
// Algorithm:
//
//  1. Snapshot the graph (core.Graph.Clone) so concurrent RemoveEdge calls cannot
//     change it mid-analysis.
//  2. Run Dijkstra and path counting from A and from B in parallel (errgroup).
//  3. D = distA[B]. If B is unreachable, nothing is on a shortest path and nothing is critical.
//  4. candidates = shortestedges.Classify(distA, distB).
//  5. total = pathsFromA[B]. Self-loops are dropped. When every candidate has a positive
//     weight, a candidate oriented from→to is critical iff
//     pathsFromA[from] * pathsFromB[to] == total.
//  6. A zero-weight candidate joins equidistant vertices and can be crossed both ways,
//     so counts are not enough. The candidates then form a directed subgraph whose a→B
//     walks are exactly the shortest walks, and an edge is critical iff removing it
//     disconnects B from A there (one BFS path plus one linear reachability scan).
//
// Output contract:
//
//	Report.Critical is an explicit, possibly empty, ascending list. The external text
//	format prints the sentinel -1 when it is empty; Report.CriticalIDs and CriticalEdges
//	produce that form.
//
// Complexity: O((V + E) log V) for the two searches plus O(V + E) for either step 5 or 6.
package critical

import (
	"errors"
	"math/big"
	"time"

	"go.uber.org/zap"
)

// NoCriticalEdges is the sentinel printed in place of an empty critical-edge list.
const NoCriticalEdges = -1

// ErrVertexNotFound indicates that A or B is not a vertex of the graph.
var ErrVertexNotFound = errors.New("critical: vertex not found")

// Stage names passed to Observer.
const (
	StageSnapshot = "snapshot"
	StageSearch   = "search"
	StageClassify = "classify"
	StageCritical = "critical"
)

// Report is the full result of analysing one (Source, Target) pair.
type Report struct {
	Source int
	Target int

	// Distance is the shortest Source→Target distance, dijkstra.Infinity if unreachable.
	Distance  int64
	Reachable bool

	// PathCount is the number of distinct shortest Source→Target paths (0 if unreachable).
	// A zero-weight edge between equidistant vertices is counted in finalization order
	// only, so the count can fall short of the simple paths through such edges.
	PathCount *big.Int

	// OnShortestPath lists, ascending, every edge on at least one shortest path.
	OnShortestPath []int

	// Critical lists, ascending, every edge used by all shortest paths. Never nil.
	Critical []int
}

// CriticalIDs returns Critical, or []int{NoCriticalEdges} when it is empty.
func (r *Report) CriticalIDs() []int {
	if len(r.Critical) == 0 {
		return []int{NoCriticalEdges}
	}
	out := make([]int, len(r.Critical))
	copy(out, r.Critical)

	return out
}

// Observer receives the wall-clock duration of every analysis stage.
type Observer interface {
	ObserveStage(stage string, elapsed time.Duration)
}

// Options configures Analyze.
type Options struct {
	Logger   *zap.Logger
	Observer Observer
}

// Option represents a functional option for configuring Analyze.
type Option func(*Options)

// WithLogger sets the logger used for debug traces. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers a stage-timing hook. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// DefaultOptions returns a no-op logger and no observer.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

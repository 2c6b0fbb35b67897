package critical

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/dijkstra"
	"github.com/katalvlaran/critpath/pathcount"
	"github.com/katalvlaran/critpath/shortestedges"
)

// Analyze computes the shortest distance, the edges on some shortest path and the
// critical edges between a and b.
//
// Disconnection is not an error: the report has Reachable == false and empty edge sets.
// Errors from the underlying searches (cancellation, unknown vertices) are returned as is.
func Analyze(ctx context.Context, g *core.Graph, a, b int, opts ...Option) (*Report, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	an := &analysis{cfg: cfg, a: a, b: b}

	// 2) Validate inputs
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	if !g.HasVertex(a) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, a)
	}
	if !g.HasVertex(b) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, b)
	}

	// 3) Private snapshot; the caller may keep mutating g.
	an.stage(StageSnapshot, func() { an.g = g.Clone() })

	// 4) Both searches are independent.
	var err error
	an.stage(StageSearch, func() { err = an.search(ctx) })
	if err != nil {
		return nil, err
	}

	d := an.distA[b]
	report := &Report{
		Source:         a,
		Target:         b,
		Distance:       d,
		Reachable:      d != dijkstra.Infinity,
		PathCount:      new(big.Int).Set(an.pathsA.Get(b)),
		OnShortestPath: []int{},
		Critical:       []int{},
	}
	if !report.Reachable {
		cfg.Logger.Debug("target unreachable", zap.Int("source", a), zap.Int("target", b))
		return report, nil
	}

	// 5) Candidates
	an.stage(StageClassify, func() {
		report.OnShortestPath = shortestedges.Classify(an.g, an.distA, an.distB, b)
	})

	// 6) Critical subset
	an.stage(StageCritical, func() {
		report.Critical, err = an.critical(report.OnShortestPath, d, report.PathCount)
	})
	if err != nil {
		return nil, err
	}

	cfg.Logger.Debug("critical edge analysis done",
		zap.Int("source", a),
		zap.Int("target", b),
		zap.Int64("distance", d),
		zap.String("path_count", report.PathCount.String()),
		zap.Int("on_shortest_path", len(report.OnShortestPath)),
		zap.Int("critical", len(report.Critical)),
	)

	return report, nil
}

// CriticalEdges returns the ascending critical edge IDs between a and b, or
// []int{NoCriticalEdges} when there are none (including when b is unreachable).
func CriticalEdges(ctx context.Context, g *core.Graph, a, b int, opts ...Option) ([]int, error) {
	report, err := Analyze(ctx, g, a, b, opts...)
	if err != nil {
		return nil, err
	}

	return report.CriticalIDs(), nil
}

// analysis holds the per-call state of Analyze.
type analysis struct {
	cfg    Options
	a, b   int
	g      *core.Graph
	distA  dijkstra.Distances
	distB  dijkstra.Distances
	pathsA pathcount.Counts
	pathsB pathcount.Counts
}

// stage runs fn and reports its duration to the observer, if any.
func (an *analysis) stage(name string, fn func()) {
	start := time.Now()
	fn()
	if an.cfg.Observer != nil {
		an.cfg.Observer.ObserveStage(name, time.Since(start))
	}
}

// search runs distance and path counting from both endpoints concurrently.
// Each goroutine writes only its own fields; the snapshot is read-only.
func (an *analysis) search(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		an.distA, an.pathsA, err = pathcount.FromSource(egCtx, an.g, an.a)
		return err
	})
	eg.Go(func() error {
		var err error
		an.distB, an.pathsB, err = pathcount.FromSource(egCtx, an.g, an.b)
		return err
	})

	return eg.Wait()
}

// critical keeps the candidates that every shortest path traverses.
//
// Path counting decides when every candidate has a positive weight. A zero-weight
// candidate joins two equidistant vertices and can be crossed either way, which the
// counts do not capture; those graphs go through unavoidable instead.
func (an *analysis) critical(candidates []int, d int64, total *big.Int) ([]int, error) {
	out := []int{}
	if total.Sign() == 0 {
		return out, nil
	}

	edges := make([]core.Edge, 0, len(candidates))
	zero := false
	for _, id := range candidates {
		e, err := an.g.FindEdge(id)
		if err != nil {
			return nil, fmt.Errorf("critical: %w", err)
		}
		if e.U == e.V {
			continue
		}
		edges = append(edges, e)
		zero = zero || e.Weight == 0
	}
	if zero {
		return an.unavoidable(edges, d), nil
	}

	through := new(big.Int)
	for _, e := range edges {
		from, to, ok := shortestedges.Orient(e.U, e.V, e.Weight, an.distA, an.distB, d)
		if !ok {
			continue
		}
		// paths using this edge in this orientation: (A→from) × (to→B)
		through.Mul(an.pathsA.Get(from), an.pathsB.Get(to))
		if through.Cmp(total) == 0 {
			out = append(out, e.ID)
		}
	}

	return out, nil
}

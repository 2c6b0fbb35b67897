// Package app wires configuration, graph input, analysis, report output and metrics
// into a single critpath run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/critical"
	"github.com/katalvlaran/critpath/graphio"
	"github.com/katalvlaran/critpath/internal/config"
	"github.com/katalvlaran/critpath/internal/metrics"
)

// ErrEmptyGraph indicates the target defaults to the largest vertex but the graph has none.
var ErrEmptyGraph = errors.New("app: graph has no vertices")

// App runs one analysis described by a Config.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Collector
	stdin   io.Reader
	stdout  io.Writer
	without []int
}

// Option configures an App.
type Option func(*App)

// WithStdin sets the reader used when the input path is "-".
func WithStdin(r io.Reader) Option {
	return func(a *App) { a.stdin = r }
}

// WithStdout sets the report destination.
func WithStdout(w io.Writer) Option {
	return func(a *App) { a.stdout = w }
}

// WithoutEdges removes the given edge IDs from the graph before analysis.
func WithoutEdges(ids ...int) Option {
	return func(a *App) { a.without = append(a.without, ids...) }
}

// WithMetrics replaces the default collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(a *App) {
		if c != nil {
			a.metrics = c
		}
	}
}

// New returns an App reading os.Stdin and writing os.Stdout unless overridden.
func New(cfg *config.Config, log *zap.Logger, opts ...Option) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		cfg:     cfg,
		log:     log,
		metrics: metrics.NewCollector(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Metrics returns the collector fed by Run.
func (a *App) Metrics() *metrics.Collector {
	return a.metrics
}

// Run reads the graph, analyses the configured pair, writes the report and, when
// configured, the metrics textfile. The metrics file is written on failure too.
func (a *App) Run(ctx context.Context) (report *critical.Report, err error) {
	log := a.log.With(zap.String("run_id", uuid.NewString()))

	defer func() {
		if err != nil {
			a.metrics.ObserveError()
			log.Error("run failed", zap.Error(err))
		}
		if a.cfg.Metrics.File == "" {
			return
		}
		if werr := a.metrics.WriteTextfile(a.cfg.Metrics.File); werr != nil {
			log.Warn("metrics export failed", zap.Error(werr))
			if err == nil {
				err = werr
			}
		}
	}()

	// 1) Report format, checked before any work
	format, err := graphio.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	// 2) Graph
	g, err := a.readGraph()
	if err != nil {
		return nil, err
	}
	for _, id := range a.without {
		if !g.HasEdge(id) {
			log.Warn("edge to remove not found", zap.Int("edge", id))
			continue
		}
		g.RemoveEdge(id)
	}
	a.metrics.ObserveGraph(g.VertexCount(), g.EdgeCount())
	log.Info("graph loaded",
		zap.String("input", a.cfg.Input.Path),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Ints("removed", a.without),
	)

	// 3) Endpoints
	source, target, err := a.endpoints(g)
	if err != nil {
		return nil, err
	}

	// 4) Analysis
	report, err = critical.Analyze(ctx, g, source, target,
		critical.WithLogger(log),
		critical.WithObserver(a.metrics),
	)
	if err != nil {
		return nil, err
	}
	a.metrics.ObserveReport(report)
	log.Info("analysis finished",
		zap.Int("source", source),
		zap.Int("target", target),
		zap.Bool("reachable", report.Reachable),
		zap.Int("on_shortest_path", len(report.OnShortestPath)),
		zap.Int("critical", len(report.Critical)),
	)

	// 5) Report
	if err := graphio.WriteReport(a.stdout, report, format); err != nil {
		return nil, err
	}

	return report, nil
}

func (a *App) readGraph() (*core.Graph, error) {
	in := a.stdin
	if path := a.cfg.Input.Path; path != config.StdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("app: open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	return graphio.ReadGraph(in, graphio.WithVertexBase(a.cfg.Input.VertexBase))
}

func (a *App) endpoints(g *core.Graph) (source, target int, err error) {
	source = a.cfg.Query.Source
	if !a.cfg.Query.TargetMax {
		return source, a.cfg.Query.Target, nil
	}
	target, ok := g.MaxVertex()
	if !ok {
		return 0, 0, ErrEmptyGraph
	}

	return source, target, nil
}

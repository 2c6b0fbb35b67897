// Package metrics collects per-run prometheus metrics for critpath and exports them in
// the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/critpath/critical"
)

// Namespace prefixes every metric name.
const Namespace = "critpath"

// Run outcomes for RunsTotal.
const (
	OutcomeSuccess     = "success"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Collector holds the metrics of one process on a private registry.
type Collector struct {
	registry *prometheus.Registry

	StageDuration     *prometheus.HistogramVec
	RunsTotal         *prometheus.CounterVec
	GraphVertices     prometheus.Gauge
	GraphEdges        prometheus.Gauge
	CriticalEdges     prometheus.Gauge
	ShortestPathEdges prometheus.Gauge
}

// NewCollector creates and registers every metric on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of each analysis stage in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"stage"},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "runs_total",
				Help:      "Total number of analysis runs by outcome",
			},
			[]string{"outcome"},
		),
		GraphVertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_vertices",
			Help:      "Number of vertices in the analysed graph",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_edges",
			Help:      "Number of edges in the analysed graph",
		}),
		CriticalEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "critical_edges",
			Help:      "Number of critical edges found by the last run",
		}),
		ShortestPathEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "shortest_path_edges",
			Help:      "Number of edges on at least one shortest path in the last run",
		}),
	}

	c.registry.MustRegister(
		c.StageDuration,
		c.RunsTotal,
		c.GraphVertices,
		c.GraphEdges,
		c.CriticalEdges,
		c.ShortestPathEdges,
	)

	return c
}

// Registry returns the private registry, for gathering.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveStage implements critical.Observer.
func (c *Collector) ObserveStage(stage string, elapsed time.Duration) {
	c.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// ObserveGraph records the size of the graph being analysed.
func (c *Collector) ObserveGraph(vertices, edges int) {
	c.GraphVertices.Set(float64(vertices))
	c.GraphEdges.Set(float64(edges))
}

// ObserveReport records the result of a successful analysis.
func (c *Collector) ObserveReport(r *critical.Report) {
	c.ShortestPathEdges.Set(float64(len(r.OnShortestPath)))
	c.CriticalEdges.Set(float64(len(r.Critical)))
	if r.Reachable {
		c.RunsTotal.WithLabelValues(OutcomeSuccess).Inc()
	} else {
		c.RunsTotal.WithLabelValues(OutcomeUnreachable).Inc()
	}
}

// ObserveError counts a failed run.
func (c *Collector) ObserveError() {
	c.RunsTotal.WithLabelValues(OutcomeError).Inc()
}

// WriteTextfile atomically writes every metric to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

var _ critical.Observer = (*Collector)(nil)

// Package metrics holds the prometheus collectors recorded by hgraph runs and
// exports them as a node-exporter textfile.
package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/3michele/hgraph/core"
)

const namespace = "hgraph"

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	DocumentsLoaded   *prometheus.CounterVec
	Nodes             prometheus.Gauge
	Edges             prometheus.Gauge
	EdgesBySize       *prometheus.GaugeVec
	Components        prometheus.Gauge
	OperationDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DocumentsLoaded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_loaded_total",
			Help:      "Total number of hypergraph documents loaded, labelled by status.",
		}, []string{"status"}),
		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Number of nodes in the current hypergraph.",
		}),
		Edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Number of hyperedges in the current hypergraph.",
		}),
		EdgesBySize: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges_by_size",
			Help:      "Number of hyperedges in the current hypergraph, labelled by size.",
		}, []string{"size"}),
		Components: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "components",
			Help:      "Number of connected components found by the last analysis.",
		}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of hypergraph operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"operation"}),
	}
}

// Registry exposes the underlying registry as a gatherer.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// DocumentLoaded counts a load attempt.
func (m *Metrics) DocumentLoaded(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DocumentsLoaded.WithLabelValues(status).Inc()
}

// ObserveHypergraph sets the shape gauges from h.
func (m *Metrics) ObserveHypergraph(h *core.Hypergraph) {
	m.Nodes.Set(float64(h.NumNodes()))
	m.Edges.Set(float64(h.NumEdges()))
	m.EdgesBySize.Reset()
	for size, count := range h.DistributionOfSizes() {
		m.EdgesBySize.WithLabelValues(strconv.Itoa(size)).Set(float64(count))
	}
}

// Time starts timing op; call the returned function when it completes.
func (m *Metrics) Time(op string) func() {
	start := time.Now()

	return func() {
		m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

// WriteTextfile writes every collected metric to path in the text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "metrics: write %s", path)
	}

	return nil
}

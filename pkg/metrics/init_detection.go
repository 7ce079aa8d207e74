package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDetectionMetrics() {
	r.DetectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_detections_total",
			Help: "Total number of community detection runs",
		},
		[]string{"algorithm", "status"},
	)

	r.DetectionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "community_detection_duration_seconds",
			Help:    "Community detection run duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
		[]string{"algorithm"},
	)

	r.CommunitiesFound = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "community_detection_communities_found",
			Help:    "Number of communities found per run",
			Buckets: []float64{1, 2, 5, 10, 50, 100, 1000},
		},
		[]string{"algorithm"},
	)

	r.ModularityScore = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "community_detection_modularity",
			Help: "Modularity of the most recent partition per algorithm",
		},
		[]string{"algorithm"},
	)

	r.SlowDetections = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_detection_slow_runs_total",
			Help: "Total number of slow detection runs (>1s)",
		},
		[]string{"algorithm"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "community_detection_graph_nodes",
			Help:    "Number of nodes per analyzed graph",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "community_detection_graph_edges",
			Help:    "Number of edges per analyzed graph",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the detection engine
type Registry struct {
	// Detection Metrics
	DetectionsTotal   *prometheus.CounterVec
	DetectionDuration *prometheus.HistogramVec
	CommunitiesFound  *prometheus.HistogramVec
	ModularityScore   *prometheus.GaugeVec
	SlowDetections    *prometheus.CounterVec

	// Graph Metrics
	GraphNodes prometheus.Histogram
	GraphEdges prometheus.Histogram

	registry *prometheus.Registry
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry creates a Registry with all detection metrics registered on a
// fresh prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initDetectionMetrics()
	r.initGraphMetrics()
	return r
}

// Handler returns an HTTP handler exposing the registry in the Prometheus
// text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordDetection records a detection run with its duration and outcome.
func (r *Registry) RecordDetection(algorithm, status string, duration time.Duration, numCommunities int, modularity float64) {
	r.DetectionsTotal.WithLabelValues(algorithm, status).Inc()
	r.DetectionDuration.WithLabelValues(algorithm).Observe(duration.Seconds())

	if status == "ok" {
		r.CommunitiesFound.WithLabelValues(algorithm).Observe(float64(numCommunities))
		r.ModularityScore.WithLabelValues(algorithm).Set(modularity)
	}

	if duration > time.Second {
		r.SlowDetections.WithLabelValues(algorithm).Inc()
	}
}

// ObserveGraphSize records the size of an analyzed graph.
func (r *Registry) ObserveGraphSize(nodes, edges int) {
	r.GraphNodes.Observe(float64(nodes))
	r.GraphEdges.Observe(float64(edges))
}

package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.DetectionsTotal == nil {
		t.Error("DetectionsTotal not initialized")
	}
	if r.DetectionDuration == nil {
		t.Error("DetectionDuration not initialized")
	}
	if r.CommunitiesFound == nil {
		t.Error("CommunitiesFound not initialized")
	}
	if r.ModularityScore == nil {
		t.Error("ModularityScore not initialized")
	}
	if r.SlowDetections == nil {
		t.Error("SlowDetections not initialized")
	}
	if r.GraphNodes == nil {
		t.Error("GraphNodes not initialized")
	}
	if r.GraphEdges == nil {
		t.Error("GraphEdges not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestRecordDetection(t *testing.T) {
	r := NewRegistry()

	r.RecordDetection("louvain", "ok", 100*time.Millisecond, 5, 0.42)
	r.RecordDetection("louvain", "ok", 200*time.Millisecond, 3, 0.38)
	r.RecordDetection("leiden", "panic", 50*time.Millisecond, 0, 0)

	counter, err := r.DetectionsTotal.GetMetricWithLabelValues("louvain", "ok")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 2 {
		t.Errorf("Counter value = %v, want 2", metric.Counter.GetValue())
	}

	panicCounter, err := r.DetectionsTotal.GetMetricWithLabelValues("leiden", "panic")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	metric.Reset()
	if err := panicCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 1 {
		t.Errorf("Panic counter value = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRecordDetection_ModularityGauge(t *testing.T) {
	r := NewRegistry()

	r.RecordDetection("louvain", "ok", 10*time.Millisecond, 2, 0.25)
	r.RecordDetection("louvain", "ok", 10*time.Millisecond, 2, 0.5)

	gauge, err := r.ModularityScore.GetMetricWithLabelValues("louvain")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	// Gauge holds the most recent score
	if metric.Gauge.GetValue() != 0.5 {
		t.Errorf("Gauge value = %v, want 0.5", metric.Gauge.GetValue())
	}
}

func TestRecordDetection_SkipsQualityMetricsOnFailure(t *testing.T) {
	r := NewRegistry()

	r.RecordDetection("louvain", "empty", 10*time.Millisecond, 0, 0)

	hist, err := r.CommunitiesFound.GetMetricWithLabelValues("louvain")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := hist.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Histogram.GetSampleCount() != 0 {
		t.Errorf("CommunitiesFound sample count = %v, want 0", metric.Histogram.GetSampleCount())
	}
}

func TestRecordDetection_SlowRuns(t *testing.T) {
	r := NewRegistry()

	r.RecordDetection("label_propagation", "ok", 2*time.Second, 4, 0.3)
	r.RecordDetection("label_propagation", "ok", 500*time.Millisecond, 4, 0.3)

	counter, err := r.SlowDetections.GetMetricWithLabelValues("label_propagation")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 1 {
		t.Errorf("SlowDetections value = %v, want 1", metric.Counter.GetValue())
	}
}

func TestObserveGraphSize(t *testing.T) {
	r := NewRegistry()

	r.ObserveGraphSize(150, 420)
	r.ObserveGraphSize(7, 9)

	var metric dto.Metric
	if err := r.GraphNodes.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("GraphNodes sample count = %v, want 2", metric.Histogram.GetSampleCount())
	}
	if metric.Histogram.GetSampleSum() != 157 {
		t.Errorf("GraphNodes sample sum = %v, want 157", metric.Histogram.GetSampleSum())
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()

	if r.Handler() == nil {
		t.Fatal("Handler() returned nil")
	}
}

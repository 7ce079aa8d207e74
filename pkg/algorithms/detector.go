package algorithms

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chainbreak/community-engine/pkg/graph"
	"github.com/chainbreak/community-engine/pkg/logging"
	"github.com/chainbreak/community-engine/pkg/metrics"
	"github.com/chainbreak/community-engine/pkg/validation"
)

// comparisonOrder is the fixed evaluation order of CompareAlgorithms. Ties
// on modularity go to the earlier algorithm.
var comparisonOrder = []string{AlgorithmLouvain, AlgorithmLeiden, AlgorithmLabelPropagation}

// DetectorConfig configures a Detector. Zero values select defaults: stdout
// logging, no metrics, clock-seeded randomness, 100-pass iteration cap.
type DetectorConfig struct {
	Logger        logging.Logger
	Metrics       *metrics.Registry
	Rand          *rand.Rand
	MaxIterations int
}

// engineFunc runs one detection algorithm over a built graph.
type engineFunc func(g *graph.WeightedGraph, resolution float64) map[string]int

// Detector dispatches community detection requests to the three engines and
// guarantees a well-formed result structure to its caller.
type Detector struct {
	logger        logging.Logger
	metrics       *metrics.Registry
	rng           *rand.Rand
	maxIterations int
	engines       map[string]engineFunc
}

// NewDetector creates a Detector from the given configuration.
func NewDetector(cfg DetectorConfig) *Detector {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 100
	}
	d := &Detector{
		logger:        logger.With(logging.Component("community-detector")),
		metrics:       cfg.Metrics,
		rng:           cfg.Rand,
		maxIterations: maxIter,
	}
	d.engines = map[string]engineFunc{
		AlgorithmLouvain:          d.runLouvain,
		AlgorithmLeiden:           d.runLeiden,
		AlgorithmLabelPropagation: d.runLabelPropagation,
	}
	return d
}

// Detect builds the weighted graph from raw records and runs the named
// algorithm on it. An empty graph or an unknown algorithm name yields the
// canonical empty result rather than an error; an invalid resolution is a
// precondition violation and is rejected. Any internal failure during a run
// is converted to the empty result, so callers always receive a complete
// structure.
func (d *Detector) Detect(raw *graph.RawGraph, algorithm string, resolution float64) (result *DetectionResult, err error) {
	if verr := validation.ValidateResolution(resolution); verr != nil {
		return nil, fmt.Errorf("detect: %w", verr)
	}

	runID := uuid.NewString()
	logger := d.logger.With(logging.RunID(runID), logging.Algorithm(algorithm))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("community detection failed", logging.Any("panic", r))
			d.record(algorithm, "panic", time.Since(start), nil)
			result = EmptyResult()
			err = nil
		}
	}()

	g := graph.Build(raw)
	logger.Debug("graph built",
		logging.NodeCount(g.NodeCount()),
		logging.EdgeCount(g.EdgeCount()))

	if g.NodeCount() == 0 {
		logger.Warn("empty graph provided")
		d.record(algorithm, "empty", time.Since(start), nil)
		return EmptyResult(), nil
	}

	communities, ok := d.run(g, algorithm, resolution)
	if !ok {
		logger.Warn("unknown algorithm requested")
		d.record(algorithm, "unknown_algorithm", time.Since(start), nil)
		return EmptyResult(), nil
	}

	stats := CalculateStatistics(g, communities)
	result = &DetectionResult{
		Algorithm:      algorithm,
		Communities:    groupMembers(g, communities),
		Statistics:     stats,
		NodeCount:      g.NodeCount(),
		EdgeCount:      g.EdgeCount(),
		CommunityCount: stats.NumCommunities,
	}

	elapsed := time.Since(start)
	logger.Info("community detection complete",
		logging.CommunityCount(result.CommunityCount),
		logging.Modularity(stats.Modularity),
		logging.Latency(elapsed))
	d.record(algorithm, "ok", elapsed, result)

	return result, nil
}

// CompareAlgorithms runs all three engines on the same input, timing each,
// and reports the algorithm with the highest modularity as best.
func (d *Detector) CompareAlgorithms(raw *graph.RawGraph, resolution float64) (*AlgorithmComparison, error) {
	if err := validation.ValidateResolution(resolution); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	comparison := &AlgorithmComparison{
		Results: make(map[string]*ComparisonEntry, len(comparisonOrder)),
	}

	bestModularity := 0.0
	for i, algorithm := range comparisonOrder {
		start := time.Now()
		result, err := d.Detect(raw, algorithm, resolution)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		entry := &ComparisonEntry{
			Result:         result,
			Runtime:        elapsed.Seconds(),
			Modularity:     result.Statistics.Modularity,
			NumCommunities: result.CommunityCount,
		}
		comparison.Results[algorithm] = entry

		if i == 0 || entry.Modularity > bestModularity {
			bestModularity = entry.Modularity
			comparison.BestAlgorithm = algorithm
		}
	}

	comparison.Comparison = ComparisonSummary{
		LouvainModularity:          comparison.Results[AlgorithmLouvain].Modularity,
		LeidenModularity:           comparison.Results[AlgorithmLeiden].Modularity,
		LabelPropagationModularity: comparison.Results[AlgorithmLabelPropagation].Modularity,
		LouvainRuntime:             comparison.Results[AlgorithmLouvain].Runtime,
		LeidenRuntime:              comparison.Results[AlgorithmLeiden].Runtime,
		LabelPropagationRuntime:    comparison.Results[AlgorithmLabelPropagation].Runtime,
	}

	return comparison, nil
}

// run dispatches to an engine by name. ok is false for unknown names.
func (d *Detector) run(g *graph.WeightedGraph, algorithm string, resolution float64) (map[string]int, bool) {
	engine, ok := d.engines[strings.ToLower(algorithm)]
	if !ok {
		return nil, false
	}
	return engine(g, resolution), true
}

func (d *Detector) runLouvain(g *graph.WeightedGraph, resolution float64) map[string]int {
	return Louvain(g, LouvainOptions{
		Resolution:    resolution,
		MaxIterations: d.maxIterations,
		Rand:          d.newRand(),
	})
}

func (d *Detector) runLeiden(g *graph.WeightedGraph, resolution float64) map[string]int {
	return Leiden(g, LeidenOptions{
		Resolution:    resolution,
		MaxIterations: d.maxIterations,
		Rand:          d.newRand(),
	})
}

func (d *Detector) runLabelPropagation(g *graph.WeightedGraph, resolution float64) map[string]int {
	return LabelPropagation(g, LabelPropagationOptions{
		MaxIterations: d.maxIterations,
		Rand:          d.newRand(),
	})
}

// newRand returns the configured random source, or a fresh clock-seeded one
// so unconfigured runs are not reproducible across invocations.
func (d *Detector) newRand() *rand.Rand {
	if d.rng != nil {
		return d.rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (d *Detector) record(algorithm, status string, elapsed time.Duration, result *DetectionResult) {
	if d.metrics == nil {
		return
	}
	if result != nil {
		d.metrics.RecordDetection(algorithm, status, elapsed, result.CommunityCount, result.Statistics.Modularity)
		d.metrics.ObserveGraphSize(result.NodeCount, result.EdgeCount)
		return
	}
	d.metrics.RecordDetection(algorithm, status, elapsed, 0, 0)
}

// EmptyResult returns the canonical empty result structure used for empty
// graphs, unknown algorithm names, and recovered internal failures.
func EmptyResult() *DetectionResult {
	return &DetectionResult{
		Algorithm:   AlgorithmNone,
		Communities: map[int][]string{},
		Statistics: &PartitionStats{
			Communities: []CommunityStats{},
		},
	}
}

// groupMembers inverts a node -> community map into community -> member
// lists, members in node insertion order.
func groupMembers(g *graph.WeightedGraph, communities map[string]int) map[int][]string {
	groups, _ := groupByCommunity(g, communities)
	return groups
}

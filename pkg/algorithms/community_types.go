package algorithms

// Algorithm names accepted by the Detector.
const (
	AlgorithmLouvain          = "louvain"
	AlgorithmLeiden           = "leiden"
	AlgorithmLabelPropagation = "label_propagation"

	// AlgorithmNone marks the canonical empty result.
	AlgorithmNone = "none"
)

// CommunityStats describes one detected community.
type CommunityStats struct {
	CommunityID   int      `json:"community_id"`
	Size          int      `json:"size"`
	InternalEdges int      `json:"internal_edges"`
	ExternalEdges int      `json:"external_edges"`
	Density       float64  `json:"density"`
	TotalVolume   float64  `json:"total_volume"`
	Nodes         []string `json:"nodes"` // sample, capped at 10 members
}

// PartitionStats aggregates quality figures for a whole partition.
type PartitionStats struct {
	Modularity            float64          `json:"modularity"`
	NumCommunities        int              `json:"num_communities"`
	LargestCommunitySize  int              `json:"largest_community_size"`
	SmallestCommunitySize int              `json:"smallest_community_size"`
	AverageCommunitySize  float64          `json:"average_community_size"`
	Communities           []CommunityStats `json:"communities"`
}

// DetectionResult is the outcome of a single-algorithm run.
type DetectionResult struct {
	Algorithm      string           `json:"algorithm"`
	Communities    map[int][]string `json:"communities"`
	Statistics     *PartitionStats  `json:"statistics"`
	NodeCount      int              `json:"node_count"`
	EdgeCount      int              `json:"edge_count"`
	CommunityCount int              `json:"community_count"`
}

// ComparisonEntry holds one algorithm's result within a comparison run.
type ComparisonEntry struct {
	Result         *DetectionResult `json:"result"`
	Runtime        float64          `json:"runtime"` // seconds
	Modularity     float64          `json:"modularity"`
	NumCommunities int              `json:"num_communities"`
}

// ComparisonSummary flattens the headline figures of a comparison run.
type ComparisonSummary struct {
	LouvainModularity          float64 `json:"louvain_modularity"`
	LeidenModularity           float64 `json:"leiden_modularity"`
	LabelPropagationModularity float64 `json:"label_propagation_modularity"`
	LouvainRuntime             float64 `json:"louvain_runtime"`
	LeidenRuntime              float64 `json:"leiden_runtime"`
	LabelPropagationRuntime    float64 `json:"label_propagation_runtime"`
}

// AlgorithmComparison is the outcome of running all three algorithms on the
// same graph.
type AlgorithmComparison struct {
	Results       map[string]*ComparisonEntry `json:"results"`
	BestAlgorithm string                      `json:"best_algorithm"`
	Comparison    ComparisonSummary           `json:"comparison"`
}

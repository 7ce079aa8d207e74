package graph

// satoshiThreshold marks raw edge values that are base-unit amounts
// (satoshis) rather than already-scaled coin values.
const (
	satoshiThreshold = 1000
	satoshisPerCoin  = 100000000.0
)

// NodeRecord is a raw node as received from the ingestion layer. Either ID
// or Address identifies the node; records carrying neither are dropped.
type NodeRecord struct {
	ID      string `json:"id,omitempty"`
	Address string `json:"address,omitempty"`
	Label   string `json:"label,omitempty"`
	Type    string `json:"type,omitempty"`
}

// EdgeRecord is a raw edge as received from the ingestion layer. Value takes
// precedence over Weight when both are present.
type EdgeRecord struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Value  *float64 `json:"value,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// RawGraph is the wire-level graph payload handed to the engine.
type RawGraph struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// Build converts raw records into a WeightedGraph. Node records without an
// id or address and edge records missing an endpoint are dropped. Edges
// referencing unknown ids create those nodes. Raw values above 1000 are
// treated as satoshi amounts and scaled to coins; a missing or zero value
// defaults to 1.0. Build is a pure transform.
func Build(raw *RawGraph) *WeightedGraph {
	g := NewWeightedGraph()
	if raw == nil {
		return g
	}

	for _, rec := range raw.Nodes {
		id := rec.ID
		if id == "" {
			id = rec.Address
		}
		if id == "" {
			continue
		}
		g.AddNode(Node{ID: id, Label: rec.Label, Type: rec.Type})
	}

	for _, rec := range raw.Edges {
		if rec.Source == "" || rec.Target == "" {
			continue
		}
		g.AddEdge(rec.Source, rec.Target, normalizeWeight(rec.rawWeight()))
	}

	return g
}

func (e EdgeRecord) rawWeight() float64 {
	switch {
	case e.Value != nil && *e.Value != 0:
		return *e.Value
	case e.Weight != nil && *e.Weight != 0:
		return *e.Weight
	default:
		return 1.0
	}
}

func normalizeWeight(w float64) float64 {
	if w > satoshiThreshold {
		return w / satoshisPerCoin
	}
	return w
}

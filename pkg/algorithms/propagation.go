package algorithms

import (
	"math"
	"math/rand"
	"time"

	"github.com/chainbreak/community-engine/pkg/graph"
)

// LabelPropagationOptions configures the label propagation engine.
type LabelPropagationOptions struct {
	MaxIterations int
	Rand          *rand.Rand
}

// DefaultLabelPropagationOptions returns the default configuration.
func DefaultLabelPropagationOptions() LabelPropagationOptions {
	return LabelPropagationOptions{
		MaxIterations: 100,
	}
}

// LabelPropagation diffuses labels through the graph. Every node starts with
// a unique label; each pass visits nodes in random order and replaces a
// node's label with the plurality label among its neighbors, where a
// neighbor's vote counts max(1, round(weight)) times. A pass with no label
// changes converges the run. Returned community ids are consecutive from 0.
func LabelPropagation(g *graph.WeightedGraph, opts LabelPropagationOptions) map[string]int {
	opts = opts.withDefaults()

	labels := make(map[string]int, g.NodeCount())
	for idx, id := range g.Nodes() {
		labels[id] = idx
	}
	if len(labels) == 0 {
		return labels
	}

	nodes := append([]string(nil), g.Nodes()...)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		opts.Rand.Shuffle(len(nodes), func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		converged := true
		for _, node := range nodes {
			best, ok := pluralityLabel(g, node, labels)
			if !ok {
				continue
			}
			if labels[node] != best {
				labels[node] = best
				converged = false
			}
		}

		if converged {
			break
		}
	}

	return RenumberCommunities(labels)
}

// pluralityLabel returns the most frequent label among the node's neighbors,
// vote-weighted by edge weight. Ties go to the label whose winning count was
// reached first in neighbor order. ok is false when the node has no
// neighbors.
func pluralityLabel(g *graph.WeightedGraph, node string, labels map[string]int) (int, bool) {
	neighbors := g.Neighbors(node)
	if len(neighbors) == 0 {
		return 0, false
	}

	votes := make(map[int]int, len(neighbors))
	order := make([]int, 0, len(neighbors))
	for _, nb := range neighbors {
		w, _ := g.Weight(node, nb)
		count := int(math.Round(w))
		if count < 1 {
			count = 1
		}
		label := labels[nb]
		if _, seen := votes[label]; !seen {
			order = append(order, label)
		}
		votes[label] += count
	}

	best := order[0]
	for _, label := range order[1:] {
		if votes[label] > votes[best] {
			best = label
		}
	}
	return best, true
}

func (o LabelPropagationOptions) withDefaults() LabelPropagationOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = 100
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

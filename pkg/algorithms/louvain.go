package algorithms

import (
	"math/rand"
	"time"

	"github.com/chainbreak/community-engine/pkg/graph"
)

// LouvainOptions configures the Louvain engine.
type LouvainOptions struct {
	Resolution    float64 // > 1 favors smaller communities
	MaxIterations int     // cap on local-moving passes
	Rand          *rand.Rand
}

// DefaultLouvainOptions returns the default Louvain configuration.
func DefaultLouvainOptions() LouvainOptions {
	return LouvainOptions{
		Resolution:    1.0,
		MaxIterations: 100,
	}
}

// Louvain runs single-level greedy modularity optimization. Each pass visits
// nodes in random order and moves each to the neighboring community with the
// best modularity gain, stopping at convergence (a pass with zero moves) or
// at the pass cap. Returned community ids are consecutive from 0.
func Louvain(g *graph.WeightedGraph, opts LouvainOptions) map[string]int {
	opts = opts.withDefaults()
	state := newPartitionState(g)

	if state.m == 0 {
		return RenumberCommunities(state.communities)
	}

	nodes := append([]string(nil), g.Nodes()...)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		if !localMovingPass(state, nodes, opts.Resolution, opts.Rand, nil) {
			break
		}
	}

	return RenumberCommunities(state.communities)
}

// localMovingPass shuffles nodes and greedily reassigns each one, reporting
// whether any node moved. When moved is non-nil, every relocated node is
// recorded in it.
func localMovingPass(state *partitionState, nodes []string, resolution float64, rng *rand.Rand, moved map[string]bool) bool {
	rng.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	improved := false
	for _, node := range nodes {
		current := state.communities[node]

		best := current
		bestGain := 0.0
		for _, candidate := range state.neighborCommunities(node) {
			gain := state.modularityGain(node, current, candidate, resolution)
			if gain > bestGain {
				bestGain = gain
				best = candidate
			}
		}

		if best != current && bestGain > moveEpsilon {
			state.move(node, best)
			if moved != nil {
				moved[node] = true
			}
			improved = true
		}
	}
	return improved
}

func (o LouvainOptions) withDefaults() LouvainOptions {
	if o.Resolution == 0 {
		o.Resolution = 1.0
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 100
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

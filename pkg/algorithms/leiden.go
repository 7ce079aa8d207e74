package algorithms

import (
	"math/rand"
	"time"

	"github.com/chainbreak/community-engine/pkg/graph"
)

// LeidenOptions configures the Leiden engine.
type LeidenOptions struct {
	Resolution    float64
	MaxIterations int
	Rand          *rand.Rand
}

// DefaultLeidenOptions returns the default Leiden configuration.
func DefaultLeidenOptions() LeidenOptions {
	return LeidenOptions{
		Resolution:    1.0,
		MaxIterations: 100,
	}
}

// Leiden runs Louvain-style local moving with a refinement step after each
// pass: any community touched by a moved node is checked for connectivity
// among those moved nodes, and disconnected components are split off into
// fresh communities. The refinement keeps local moving from fusing two dense
// clusters that only touch through a bridge node.
func Leiden(g *graph.WeightedGraph, opts LeidenOptions) map[string]int {
	opts = opts.withDefaults()
	state := newPartitionState(g)

	if state.m == 0 {
		return RenumberCommunities(state.communities)
	}

	nodes := append([]string(nil), g.Nodes()...)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		moved := make(map[string]bool)
		improved := localMovingPass(state, nodes, opts.Resolution, opts.Rand, moved)

		if len(moved) > 0 {
			refinePartition(state, moved)
		}

		if !improved {
			break
		}
	}

	return RenumberCommunities(state.communities)
}

// refinePartition splits disconnected groups of moved nodes. Moved nodes are
// grouped by their current community; for each group of at least two, the
// induced subgraph over the group is decomposed into connected components
// and every component beyond the first is reassigned a brand-new community
// id. Communities without moved nodes are never re-examined.
func refinePartition(state *partitionState, moved map[string]bool) {
	groups := make(map[int][]string)
	order := make([]int, 0)
	for _, node := range state.g.Nodes() {
		if !moved[node] {
			continue
		}
		c := state.communities[node]
		if _, ok := groups[c]; !ok {
			order = append(order, c)
		}
		groups[c] = append(groups[c], node)
	}

	for _, commID := range order {
		members := groups[commID]
		if len(members) < 2 {
			continue
		}

		components := connectedComponents(state.g, members)
		if len(components) < 2 {
			continue
		}

		maxID := maxCommunityID(state.communities)
		for offset, component := range components[1:] {
			newID := maxID + offset + 1
			for _, node := range component {
				state.move(node, newID)
			}
		}
	}
}

// connectedComponents decomposes the induced subgraph over members into
// connected components via BFS, in member order.
func connectedComponents(g *graph.WeightedGraph, members []string) [][]string {
	inSet := make(map[string]bool, len(members))
	for _, node := range members {
		inSet[node] = true
	}

	visited := make(map[string]bool, len(members))
	components := make([][]string, 0, 1)

	for _, start := range members {
		if visited[start] {
			continue
		}
		component := []string{start}
		visited[start] = true
		queue := []string{start}

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			for _, nb := range g.Neighbors(node) {
				if inSet[nb] && !visited[nb] {
					visited[nb] = true
					component = append(component, nb)
					queue = append(queue, nb)
				}
			}
		}

		components = append(components, component)
	}

	return components
}

func maxCommunityID(communities map[string]int) int {
	max := 0
	first := true
	for _, c := range communities {
		if first || c > max {
			max = c
			first = false
		}
	}
	return max
}

func (o LeidenOptions) withDefaults() LeidenOptions {
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

package algorithms

import (
	"sort"

	"github.com/chainbreak/community-engine/pkg/graph"
)

// communitySampleSize caps the member ids reported per community.
const communitySampleSize = 10

// CalculateStatistics computes per-community and aggregate figures for a
// partition. Communities are reported in descending size order; ties keep
// the order in which communities first appear in node iteration. Inputs are
// not mutated.
func CalculateStatistics(g *graph.WeightedGraph, communities map[string]int) *PartitionStats {
	groups, order := groupByCommunity(g, communities)

	stats := make([]CommunityStats, 0, len(order))
	for _, commID := range order {
		stats = append(stats, communityStats(g, communities, commID, groups[commID]))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Size > stats[j].Size
	})

	result := &PartitionStats{
		Modularity:     Modularity(g, communities),
		NumCommunities: len(stats),
		Communities:    stats,
	}

	if len(stats) > 0 {
		result.LargestCommunitySize = stats[0].Size
		result.SmallestCommunitySize = stats[len(stats)-1].Size
		total := 0
		for _, cs := range stats {
			total += cs.Size
		}
		result.AverageCommunitySize = float64(total) / float64(len(stats))
	}

	return result
}

// groupByCommunity collects members per community in node insertion order
// and returns community ids in first-appearance order.
func groupByCommunity(g *graph.WeightedGraph, communities map[string]int) (map[int][]string, []int) {
	groups := make(map[int][]string)
	order := make([]int, 0)
	for _, node := range g.Nodes() {
		c, ok := communities[node]
		if !ok {
			continue
		}
		if _, seen := groups[c]; !seen {
			order = append(order, c)
		}
		groups[c] = append(groups[c], node)
	}
	return groups, order
}

func communityStats(g *graph.WeightedGraph, communities map[string]int, commID int, members []string) CommunityStats {
	inComm := make(map[string]bool, len(members))
	for _, node := range members {
		inComm[node] = true
	}

	internal := 0
	volume := 0.0
	external := 0
	for _, node := range members {
		for _, nb := range g.Neighbors(node) {
			if !inComm[nb] {
				external++
				continue
			}
			// Count each internal edge from one endpoint only.
			if node < nb || node == nb {
				w, _ := g.Weight(node, nb)
				internal++
				volume += w
			}
		}
	}

	density := 0.0
	if n := len(members); n >= 2 {
		possible := float64(n*(n-1)) / 2
		density = float64(internal) / possible
	}

	sample := members
	if len(sample) > communitySampleSize {
		sample = sample[:communitySampleSize]
	}

	return CommunityStats{
		CommunityID:   commID,
		Size:          len(members),
		InternalEdges: internal,
		ExternalEdges: external,
		Density:       density,
		TotalVolume:   volume,
		Nodes:         sample,
	}
}

package algorithms

import (
	"math/rand"
	"testing"

	"github.com/chainbreak/community-engine/pkg/graph"
)

// testRand returns a deterministic random source for reproducible runs.
func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// triangleGraph returns 3 nodes fully connected with unit weights.
func triangleGraph() *graph.WeightedGraph {
	g := graph.NewWeightedGraph()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 1)
	g.AddEdge("b", "c", 1)
	return g
}

// twoTrianglesGraph returns two disjoint unit-weight triangles.
func twoTrianglesGraph() *graph.WeightedGraph {
	g := graph.NewWeightedGraph()
	g.AddEdge("a1", "a2", 1)
	g.AddEdge("a1", "a3", 1)
	g.AddEdge("a2", "a3", 1)
	g.AddEdge("b1", "b2", 1)
	g.AddEdge("b1", "b3", 1)
	g.AddEdge("b2", "b3", 1)
	return g
}

// bridgedTrianglesGraph returns two unit-weight triangles joined through a
// dedicated bridge node: 7 nodes, 8 edges.
func bridgedTrianglesGraph() *graph.WeightedGraph {
	g := twoTrianglesGraph()
	g.AddEdge("a3", "x", 1)
	g.AddEdge("x", "b1", 1)
	return g
}

// ringGraph returns a cycle of n unit-weight edges.
func ringGraph(n int) *graph.WeightedGraph {
	g := graph.NewWeightedGraph()
	for i := 0; i < n; i++ {
		u := nodeName(i)
		v := nodeName((i + 1) % n)
		g.AddEdge(u, v, 1)
	}
	return g
}

func nodeName(i int) string {
	return string(rune('a'+i%26)) + string(rune('0'+i/26))
}

// assertValidPartition checks that communities covers every node exactly
// once and that ids form the contiguous range 0..k-1.
func assertValidPartition(t *testing.T, g *graph.WeightedGraph, communities map[string]int) {
	t.Helper()

	if len(communities) != g.NodeCount() {
		t.Errorf("Partition covers %d nodes, graph has %d", len(communities), g.NodeCount())
	}
	for _, node := range g.Nodes() {
		if _, ok := communities[node]; !ok {
			t.Errorf("Node %q missing from partition", node)
		}
	}

	seen := make(map[int]bool)
	maxID := -1
	for _, c := range communities {
		seen[c] = true
		if c > maxID {
			maxID = c
		}
		if c < 0 {
			t.Errorf("Negative community id %d", c)
		}
	}
	for i := 0; i <= maxID; i++ {
		if !seen[i] {
			t.Errorf("Community ids not contiguous: %d missing (max %d)", i, maxID)
		}
	}
}

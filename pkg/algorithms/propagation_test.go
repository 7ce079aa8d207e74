package algorithms

import (
	"testing"

	"github.com/chainbreak/community-engine/pkg/graph"
)

func TestLabelPropagation_EmptyGraph(t *testing.T) {
	g := graph.NewWeightedGraph()

	labels := LabelPropagation(g, LabelPropagationOptions{Rand: testRand(1)})

	if len(labels) != 0 {
		t.Errorf("Expected empty partition, got %v", labels)
	}
}

func TestLabelPropagation_NoEdgesKeepsUniqueLabels(t *testing.T) {
	g := graph.NewWeightedGraph()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		g.AddNode(graph.Node{ID: id})
	}

	labels := LabelPropagation(g, LabelPropagationOptions{Rand: testRand(1)})

	assertValidPartition(t, g, labels)
	if n := countCommunities(labels); n != 5 {
		t.Errorf("Expected 5 communities without edges, got %d", n)
	}
}

func TestLabelPropagation_TriangleConverges(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := triangleGraph()

		labels := LabelPropagation(g, LabelPropagationOptions{Rand: testRand(seed)})

		assertValidPartition(t, g, labels)
		if n := countCommunities(labels); n != 1 {
			t.Errorf("Seed %d: expected 1 community, got %d: %v", seed, n, labels)
		}
	}
}

func TestLabelPropagation_DisjointTrianglesStaySeparate(t *testing.T) {
	g := twoTrianglesGraph()

	labels := LabelPropagation(g, LabelPropagationOptions{Rand: testRand(9)})

	assertValidPartition(t, g, labels)
	if n := countCommunities(labels); n != 2 {
		t.Errorf("Expected 2 communities, got %d: %v", n, labels)
	}
	if labels["a1"] == labels["b1"] {
		t.Errorf("Labels crossed a component boundary: %v", labels)
	}
}

func TestLabelPropagation_WeightedVotesDominate(t *testing.T) {
	// Heavy pair edges pull each middle node toward its heavy partner; the
	// weight-1 link between b and c cannot outvote them.
	for seed := int64(1); seed <= 5; seed++ {
		g := graph.NewWeightedGraph()
		g.AddEdge("a", "b", 10)
		g.AddEdge("b", "c", 1)
		g.AddEdge("c", "d", 10)

		labels := LabelPropagation(g, LabelPropagationOptions{Rand: testRand(seed)})

		assertValidPartition(t, g, labels)
		if labels["a"] != labels["b"] {
			t.Errorf("Seed %d: expected a,b together, got %v", seed, labels)
		}
		if labels["c"] != labels["d"] {
			t.Errorf("Seed %d: expected c,d together, got %v", seed, labels)
		}
		if labels["b"] == labels["c"] {
			t.Errorf("Seed %d: expected weight-1 bridge to lose the vote, got %v", seed, labels)
		}
	}
}

func TestLabelPropagation_IsolatedNodeKeepsLabel(t *testing.T) {
	g := triangleGraph()
	g.AddNode(graph.Node{ID: "iso"})

	labels := LabelPropagation(g, LabelPropagationOptions{Rand: testRand(4)})

	assertValidPartition(t, g, labels)
	for _, other := range []string{"a", "b", "c"} {
		if labels["iso"] == labels[other] {
			t.Errorf("Isolated node adopted a neighbor label: %v", labels)
		}
	}
}

func TestLabelPropagation_TerminatesWithinCap(t *testing.T) {
	g := ringGraph(60)

	labels := LabelPropagation(g, LabelPropagationOptions{Rand: testRand(17), MaxIterations: 100})

	assertValidPartition(t, g, labels)
}

func TestPluralityLabel_TieBreaksOnFirstSeen(t *testing.T) {
	g := graph.NewWeightedGraph()
	g.AddEdge("center", "first", 1)
	g.AddEdge("center", "second", 1)

	labels := map[string]int{"center": 0, "first": 1, "second": 2}

	best, ok := pluralityLabel(g, "center", labels)
	if !ok {
		t.Fatal("Expected a vote result")
	}
	if best != 1 {
		t.Errorf("Expected tie to go to first-seen label 1, got %d", best)
	}
}

func TestPluralityLabel_RoundsWeights(t *testing.T) {
	// 2.6 rounds to 3 votes, beating two unit votes; 0.2 still counts once.
	g := graph.NewWeightedGraph()
	g.AddEdge("center", "u", 1)
	g.AddEdge("center", "v", 1)
	g.AddEdge("center", "w", 2.6)

	labels := map[string]int{"center": 9, "u": 5, "v": 5, "w": 6}
	if best, _ := pluralityLabel(g, "center", labels); best != 6 {
		t.Errorf("Expected rounded heavy vote to win, got %d", best)
	}

	g2 := graph.NewWeightedGraph()
	g2.AddEdge("center", "tiny", 0.2)
	labels2 := map[string]int{"center": 0, "tiny": 3}
	if best, _ := pluralityLabel(g2, "center", labels2); best != 3 {
		t.Errorf("Expected minimum single vote, got %d", best)
	}
}

func TestPluralityLabel_NoNeighbors(t *testing.T) {
	g := graph.NewWeightedGraph()
	g.AddNode(graph.Node{ID: "lone"})

	if _, ok := pluralityLabel(g, "lone", map[string]int{"lone": 0}); ok {
		t.Error("Expected no vote result for isolated node")
	}
}

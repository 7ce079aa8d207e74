package graph

// Node is a graph vertex identified by an opaque string (an address or
// transaction id). Label and Type are pass-through attributes the engines
// never interpret.
type Node struct {
	ID    string
	Label string
	Type  string
}

// WeightedGraph is an undirected graph with weighted edges, keyed by string
// node ids. Node and neighbor iteration order is insertion order, which the
// engines rely on for deterministic tie-breaking under a fixed random seed.
type WeightedGraph struct {
	nodes map[string]*Node
	order []string       // node ids in insertion order
	index map[string]int // node id -> position in order

	adj           map[string]map[string]float64
	neighborOrder map[string][]string // first-seen neighbor order per node

	edgeCount int
}

// NewWeightedGraph creates an empty graph.
func NewWeightedGraph() *WeightedGraph {
	return &WeightedGraph{
		nodes:         make(map[string]*Node),
		index:         make(map[string]int),
		adj:           make(map[string]map[string]float64),
		neighborOrder: make(map[string][]string),
	}
}

// AddNode inserts a node. Re-adding an existing id updates its attributes
// without disturbing iteration order or edges.
func (g *WeightedGraph) AddNode(node Node) {
	if node.ID == "" {
		return
	}
	if existing, ok := g.nodes[node.ID]; ok {
		existing.Label = node.Label
		existing.Type = node.Type
		return
	}
	n := node
	g.nodes[node.ID] = &n
	g.index[node.ID] = len(g.order)
	g.order = append(g.order, node.ID)
	g.adj[node.ID] = make(map[string]float64)
}

// AddEdge inserts an undirected edge, creating missing endpoints. A repeated
// unordered pair overwrites the stored weight; weights are never summed.
func (g *WeightedGraph) AddEdge(source, target string, weight float64) {
	if source == "" || target == "" {
		return
	}
	if _, ok := g.nodes[source]; !ok {
		g.AddNode(Node{ID: source})
	}
	if _, ok := g.nodes[target]; !ok {
		g.AddNode(Node{ID: target})
	}

	if _, seen := g.adj[source][target]; !seen {
		g.edgeCount++
		g.neighborOrder[source] = append(g.neighborOrder[source], target)
		if source != target {
			g.neighborOrder[target] = append(g.neighborOrder[target], source)
		}
	}
	g.adj[source][target] = weight
	g.adj[target][source] = weight
}

// HasNode reports whether the node id exists.
func (g *WeightedGraph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for the given id, or nil.
func (g *WeightedGraph) Node(id string) *Node {
	return g.nodes[id]
}

// Nodes returns all node ids in insertion order. The caller must not mutate
// the returned slice.
func (g *WeightedGraph) Nodes() []string {
	return g.order
}

// Neighbors returns the neighbors of id in first-seen order. A self-loop
// lists the node itself once.
func (g *WeightedGraph) Neighbors(id string) []string {
	return g.neighborOrder[id]
}

// Weight returns the weight of the edge between u and v.
func (g *WeightedGraph) Weight(u, v string) (float64, bool) {
	w, ok := g.adj[u][v]
	return w, ok
}

// WeightedDegree returns the sum of weights of edges incident to id. A
// self-loop contributes its weight twice, once per endpoint.
func (g *WeightedGraph) WeightedDegree(id string) float64 {
	sum := 0.0
	for nb, w := range g.adj[id] {
		sum += w
		if nb == id {
			sum += w
		}
	}
	return sum
}

// NodeCount returns the number of nodes.
func (g *WeightedGraph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of distinct unordered edges.
func (g *WeightedGraph) EdgeCount() int {
	return g.edgeCount
}

// Edges calls fn once per distinct undirected edge. Iteration follows node
// insertion order and per-node neighbor order, so it is deterministic.
func (g *WeightedGraph) Edges(fn func(u, v string, weight float64)) {
	for _, u := range g.order {
		for _, v := range g.neighborOrder[u] {
			// Visit each unordered pair once, from its earlier endpoint.
			if g.index[u] > g.index[v] {
				continue
			}
			fn(u, v, g.adj[u][v])
		}
	}
}

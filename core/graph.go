package core

import "iter"

// Graph is a directed weighted graph, immutable after construction.
//
// Nodes keep insertion order for deterministic enumeration. Parallel
// edges between the same ordered pair are tracked independently, and
// self-loops are permitted. A Graph is safe for concurrent readers
// because nothing can mutate it once a constructor returns.
type Graph struct {
	nodes []string          // insertion order
	index map[string]int    // membership and position
	adj   map[string][]Edge // out-edges per node, insertion order
	edges []Edge            // full edge list, insertion order
}

// newGraph allocates an empty graph sized for v nodes and e edges.
func newGraph(v, e int) *Graph {
	return &Graph{
		nodes: make([]string, 0, v),
		index: make(map[string]int, v),
		adj:   make(map[string][]Edge, v),
		edges: make([]Edge, 0, e),
	}
}

// addNode appends id, reporting whether it was already present.
func (g *Graph) addNode(id string) bool {
	if _, ok := g.index[id]; ok {
		return false
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, id)

	return true
}

// addEdge appends e; endpoints must already be valid nodes.
func (g *Graph) addEdge(e Edge) {
	g.edges = append(g.edges, e)
	g.adj[e.From] = append(g.adj[e.From], e)
}

// HasNode reports whether id is a member of the node set.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|, counting parallel edges individually.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all node identifiers in insertion order.
// The returned slice is a copy; callers may mutate it freely.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns the full edge list in insertion order.
// The returned slice is a copy; callers may mutate it freely.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors yields (target, weight) for every edge leaving id, in edge
// insertion order. The sequence is finite and restartable, and is empty
// when id has no outgoing edges or is not in the graph.
func (g *Graph) Neighbors(id string) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, e := range g.adj[id] {
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}

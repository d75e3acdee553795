package core

import "fmt"

// NewGraph builds a graph from an explicit node set and edge list.
//
// Every edge endpoint must be a member of nodes; the first violation is
// reported as ErrInvalidEdge with the offending edge. Node identifiers
// must be unique (ErrDuplicateNode). Weights are unconstrained reals,
// including zero; parallel edges and self-loops are accepted as-is.
//
// Complexity: O(V + E) time and memory.
func NewGraph(nodes []string, edges []Edge) (*Graph, error) {
	g := newGraph(len(nodes), len(edges))

	// 1) Register the node set, rejecting duplicates eagerly.
	for _, id := range nodes {
		if !g.addNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
	}

	// 2) Validate and append each edge; both endpoints must be declared.
	for _, e := range edges {
		if !g.HasNode(e.From) {
			return nil, fmt.Errorf("%w: edge %s→%s references unknown %q", ErrInvalidEdge, e.From, e.To, e.From)
		}
		if !g.HasNode(e.To) {
			return nil, fmt.Errorf("%w: edge %s→%s references unknown %q", ErrInvalidEdge, e.From, e.To, e.To)
		}
		g.addEdge(e)
	}

	return g, nil
}

// NewSequential builds a chain graph from an ordered node sequence:
// one directed edge from each node to its successor, all carrying the
// same weight (DefaultStepWeight unless WithStepWeight overrides it).
//
// The sequence must be non-empty (ErrEmptySequence) and free of repeated
// identifiers (ErrDuplicateNode); a repeat would make the chain
// self-referential. A single-node sequence yields a graph with no edges.
// Sequential construction can never introduce a cycle.
//
// Complexity: O(V) time and memory.
func NewSequential(seq []string, opts ...Option) (*Graph, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Reject an empty sequence before allocating anything.
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	// 3) Register nodes in order, rejecting duplicates eagerly.
	g := newGraph(len(seq), len(seq)-1)
	for _, id := range seq {
		if !g.addNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
	}

	// 4) Chain consecutive nodes with the uniform step weight.
	for i := 0; i+1 < len(seq); i++ {
		g.addEdge(Edge{From: seq[i], To: seq[i+1], Weight: cfg.StepWeight})
	}

	return g, nil
}

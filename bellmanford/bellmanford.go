// Package bellmanford implements the Bellman–Ford algorithm on directed
// ΔG-weighted graphs.
//
// Compute finds the minimum cumulative free-energy change from a single
// source node to every other reachable node. Unlike Dijkstra-family
// methods it tolerates negative edge weights, which is what makes it fit
// for energy landscapes where most transitions are favorable (ΔG < 0).
// The price is more relaxation work and one genuinely new failure mode:
// a reachable cycle whose total weight is negative makes "lowest energy"
// undefined, so Compute detects such cycles and reports their edges
// instead of pretending the converged distances are meaningful.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Up to V−1 relaxation rounds over the full edge list, with early
//     exit when a round applies no update.
//   - One unconditional probe round for negative-cycle detection.
//   - Cycle extraction: O(V) per flagged node, O(V+E) overall.
//   - Space: O(V)
//   - Distance, predecessor, and step-weight maps.
//
// Notes on implementation choices:
//
//   - Edges are scanned in insertion order every round, so tie-breaking
//     between equal-cost paths is deterministic.
//   - The probe round never mutates distances; it only flags nodes whose
//     distance could still improve.
//   - Cycle membership is recovered by walking predecessor links |V|
//     steps from each flagged node (guaranteed to land inside a cycle),
//     then walking that cycle once to collect its edges.
package bellmanford

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/foldpath/core"
)

// Compute runs Bellman–Ford from source over g and returns the converged
// distances with predecessor links plus a negative-cycle report.
//
// Returns:
//
//   - *Result: Dist/Pred for every node (math.Inf(1) = unreachable).
//   - *CycleReport: HasCycle plus the detected cycle edges.
//   - error: ErrNilGraph, ErrUnknownSource, a context error, or an
//     OnRelax hook error. Negative cycles are never an error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrUnknownSource).
func Compute(g *core.Graph, source string, opts ...Option) (*Result, *CycleReport, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph.
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	// 4) Snapshot nodes and edges once; every round scans this edge list.
	nodes := g.Nodes()
	edges := g.Edges()
	r := &runner{
		opts:  cfg,
		nodes: nodes,
		edges: edges,
		res: &Result{
			Source: source,
			Dist:   make(map[string]float64, len(nodes)),
			Pred:   make(map[string]string, len(nodes)),
			stepW:  make(map[string]float64, len(nodes)),
		},
	}

	// 5) Initialize distances and run the relaxation rounds.
	r.init()
	if err := r.relaxRounds(); err != nil {
		return nil, nil, err
	}

	// 6) Probe unconditionally, then extract cycle edges if flagged.
	report := r.extractCycles(r.probe())

	return r.res, report, nil
}

// runner holds the mutable state for a single Compute execution.
type runner struct {
	opts  Options     // configuration (context, hooks)
	nodes []string    // node snapshot, insertion order
	edges []core.Edge // edge snapshot, insertion order
	res   *Result     // distances, predecessors, step weights
	loops []core.Edge // still-improvable self-loops found by the probe
}

// init sets dist[v] = +∞ for every node, then dist[source] = 0.
// No predecessors exist until the first relaxation applies.
func (r *runner) init() {
	for _, id := range r.nodes {
		r.res.Dist[id] = math.Inf(1)
	}
	r.res.Dist[r.res.Source] = 0
}

// relaxRounds performs up to |V|−1 full passes over the edge list,
// stopping early once a pass applies no update. The negative-cycle probe
// still runs afterwards regardless of how relaxation halted.
func (r *runner) relaxRounds() error {
	for round := 1; round < len(r.nodes); round++ {
		// cancellation check (once per round)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		changed, err := r.relaxPass()
		if err != nil {
			return err
		}
		if !changed {
			break
		}
	}

	return nil
}

// relaxPass applies the relaxation rule to every edge once, in insertion
// order, and reports whether any distance improved.
func (r *runner) relaxPass() (bool, error) {
	changed := false
	var du, nd float64
	for _, e := range r.edges {
		// 1) Skip edges whose origin is still unreached.
		du = r.res.Dist[e.From]
		if math.IsInf(du, 1) {
			continue
		}

		// 2) Relax: keep the strictly better cumulative ΔG.
		nd = du + e.Weight
		if nd >= r.res.Dist[e.To] {
			continue
		}
		r.res.Dist[e.To] = nd
		r.res.Pred[e.To] = e.From
		r.res.stepW[e.To] = e.Weight
		changed = true

		// 3) Notify the observer hook; its error aborts the run.
		if err := r.opts.OnRelax(e.From, e.To, e.Weight, nd); err != nil {
			return false, fmt.Errorf("bellmanford: OnRelax error at %s→%s: %w", e.From, e.To, err)
		}
	}

	return changed, nil
}

// probe performs the detection pass: one more scan over all edges with
// distances frozen. Nodes whose distance could still improve are
// returned in first-flagged order; any such node proves a negative
// cycle reachable from the source.
//
// Negative self-loops are their own one-edge cycle and are recorded
// directly on the runner, since a zero-round computation (single-node
// graph) has no predecessor state to walk.
func (r *runner) probe() []string {
	var flagged []string
	seen := make(map[string]bool)
	var du float64
	for _, e := range r.edges {
		du = r.res.Dist[e.From]
		if math.IsInf(du, 1) || du+e.Weight >= r.res.Dist[e.To] {
			continue
		}
		if e.From == e.To {
			r.loops = append(r.loops, e)
		}
		if !seen[e.To] {
			seen[e.To] = true
			flagged = append(flagged, e.To)
		}
	}

	return flagged
}

// extractCycles recovers the edges of every detected negative cycle.
//
// For each flagged node: walk predecessor links |V| steps to guarantee
// landing inside a cycle of the predecessor graph (any "still
// improvable" node re-enters such a cycle within |V| hops), then walk
// that cycle once more collecting its edges. Edges are unioned across
// all flagged nodes, deduplicated, and sorted by (From, To) so reports
// are deterministic.
func (r *runner) extractCycles(flagged []string) *CycleReport {
	rep := &CycleReport{}
	if len(flagged) == 0 {
		return rep
	}
	rep.HasCycle = true

	unique := make(map[core.Edge]struct{})
	// 1) Self-loops found by the probe are cycles in their own right.
	for _, e := range r.loops {
		unique[e] = struct{}{}
	}

	n := len(r.nodes)
	var inside, cur, prev string
	var ok bool
	for _, v := range flagged {
		// 2) Move |V| steps back to land inside a predecessor cycle.
		inside = v
		for i := 0; i < n; i++ {
			if prev, ok = r.res.Pred[inside]; !ok {
				inside = ""

				break
			}
			inside = prev
		}
		if inside == "" {
			continue
		}

		// 3) Walk the cycle once, collecting its edges.
		cur = inside
		for {
			prev, ok = r.res.Pred[cur]
			if !ok {
				break
			}
			unique[core.Edge{From: prev, To: cur, Weight: r.res.stepW[cur]}] = struct{}{}
			cur = prev
			if cur == inside {
				break
			}
		}
	}

	// 4) Deterministic report order.
	rep.Edges = make([]core.Edge, 0, len(unique))
	for e := range unique {
		rep.Edges = append(rep.Edges, e)
	}
	sort.Slice(rep.Edges, func(i, j int) bool {
		if rep.Edges[i].From != rep.Edges[j].From {
			return rep.Edges[i].From < rep.Edges[j].From
		}

		return rep.Edges[i].To < rep.Edges[j].To
	})

	return rep
}

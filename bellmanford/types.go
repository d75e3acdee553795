// Package bellmanford defines options, errors, and result types for
// single-source lowest-energy path computation over a core.Graph.
//
// Results:
//
//   - Result: per-node cumulative ΔG from the source plus predecessor
//     links; +Inf marks unreachable nodes.
//   - CycleReport: whether a negative cycle is reachable from the source,
//     and the edges of every such cycle that was detected.
//
// Errors:
//
//   - ErrNilGraph: a nil *core.Graph was passed to Compute.
//   - ErrUnknownSource: the requested source node is not in the graph.
package bellmanford

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/foldpath/core"
)

// Sentinel errors for Compute.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrUnknownSource is returned when the source ID is absent.
	ErrUnknownSource = errors.New("bellmanford: source node not found")
)

// Option configures Compute behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a computation.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per
	// relaxation round. Defaults to context.Background().
	Ctx context.Context

	// OnRelax is called on every applied relaxation with the edge and
	// the improved distance. If it returns an error, Compute aborts
	// and propagates that error.
	OnRelax func(from, to string, weight, dist float64) error
}

// DefaultOptions returns Options with sane defaults:
//   - Background context
//   - no-op OnRelax hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnRelax: func(string, string, float64, float64) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRelax registers a callback observing each applied relaxation;
// returning an error from the callback stops the computation.
func WithOnRelax(fn func(from, to string, weight, dist float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result holds the converged state of one computation:
//   - Source: the node distances are measured from.
//   - Dist: node ID → minimum cumulative ΔG from Source
//     (math.Inf(1) for unreachable nodes).
//   - Pred: node ID → predecessor on the recorded best path; absent for
//     the source and for unreached nodes.
//
// A Result is created fresh per Compute call and owned by the caller;
// computations never share state.
type Result struct {
	Source string
	Dist   map[string]float64
	Pred   map[string]string

	// stepW records the weight of the edge that last set Pred, so paths
	// can be reconstructed without re-querying the graph.
	stepW map[string]float64
}

// Reachable reports whether id was reached from the source.
func (r *Result) Reachable(id string) bool {
	d, ok := r.Dist[id]

	return ok && !math.IsInf(d, 1)
}

// PathTo reconstructs the recorded path from the source to target as an
// ordered edge sequence. It returns nil for unknown or unreachable
// targets and for target == source (a zero-edge path).
//
// The predecessor walk is bounded by |V| edges and guarded against
// revisits. When no negative cycle was detected the walk reaches the
// source and the result is a genuine lowest-energy path. When one was
// detected, predecessor state may be tainted: the walk then stops at the
// first revisit and yields a best-effort path containing the cycle at
// most once; pair it with the CycleReport advisory.
func (r *Result) PathTo(target string) []core.Edge {
	// 1) Unknown or unreachable targets have no path.
	if !r.Reachable(target) {
		return nil
	}

	// 2) Walk predecessor links back from the target.
	bound := len(r.Dist)
	seen := make(map[string]bool, bound)
	seen[target] = true
	rev := make([]core.Edge, 0, bound)
	cur := target
	for cur != r.Source {
		prev, ok := r.Pred[cur]
		if !ok {
			// Broken chain: nothing trustworthy to report.
			return nil
		}
		rev = append(rev, core.Edge{From: prev, To: cur, Weight: r.stepW[cur]})
		if len(rev) >= bound || seen[prev] {
			break
		}
		seen[prev] = true
		cur = prev
	}
	if len(rev) == 0 {
		return nil
	}

	// 3) Reverse into source→target order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// CycleReport flags a reachable negative cycle and lists its edges.
//
// A negative cycle is an expected analytical outcome, not an error:
// traversing it repeatedly lowers cumulative ΔG without bound, so
// "lowest energy" is undefined for paths that could pass through it.
type CycleReport struct {
	// HasCycle is true when at least one negative-total cycle is
	// reachable from the source.
	HasCycle bool

	// Edges lists every edge found to lie on a detected negative cycle,
	// deduplicated and ordered by (From, To). Nil when HasCycle is false.
	Edges []core.Edge
}

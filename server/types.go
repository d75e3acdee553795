// types.go defines the wire types of the HTTP API: request bodies for the
// analysis and render endpoints and the JSON shape of an analysis response.

package server

import (
	"math"

	"github.com/katalvlaran/foldpath/bellmanford"
	"github.com/katalvlaran/foldpath/core"
)

// cycleAdvisory accompanies every response computed under a detected
// negative cycle: the distances and path are best effort, not minima.
const cycleAdvisory = "negative ΔG cycle detected; distances and path are best effort, not finite minima"

// EdgeJSON is one directed ΔG transition on the wire.
type EdgeJSON struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// AnalyzeRequest is the body of POST /analyze: an explicit energy
// landscape plus the analysis end-points.
type AnalyzeRequest struct {
	// Label names the run when it is persisted.
	Label string `json:"label"`
	// Nodes is the full node set; Edges must stay within it.
	Nodes []string   `json:"nodes"`
	Edges []EdgeJSON `json:"edges"`
	// Source is the state distances are measured from. Required.
	Source string `json:"source"`
	// Target selects the node to reconstruct a path to. Optional.
	Target string `json:"target"`
	// Persist stores the run; requires a configured store.
	Persist bool `json:"persist"`
}

// SequentialRequest is the body of POST /analyze/sequential: an ordered
// state sequence chained with one uniform ΔG per step.
type SequentialRequest struct {
	Label    string   `json:"label"`
	Sequence []string `json:"sequence"`
	// StepWeight overrides the −0.5 kcal/mol default; a pointer so an
	// explicit zero survives.
	StepWeight *float64 `json:"step_weight"`
	// Source defaults to the first sequence element.
	Source  string `json:"source"`
	Target  string `json:"target"`
	Persist bool   `json:"persist"`
}

// RenderRequest is the body of POST /render: an explicit graph plus the
// diagram parameters. With a Source the analysis is computed and drawn in;
// without one the diagram shows sign-classified edges only.
type RenderRequest struct {
	Nodes  []string   `json:"nodes"`
	Edges  []EdgeJSON `json:"edges"`
	Source string     `json:"source"`
	Target string     `json:"target"`
	// Format is one of svg, dot, ascii, json.
	Format string `json:"format"`
	// Width and Height override the default canvas when positive.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Seed fixes the force-directed layout; zero keeps the default.
	Seed int64 `json:"seed"`
}

// AnalyzeResponse is the outcome of one computation. Distance values are
// float64 kcal/mol, except unreachable nodes which serialize as the string
// "unreachable" (+Inf is not a valid JSON number).
type AnalyzeResponse struct {
	Source       string            `json:"source"`
	Target       string            `json:"target,omitempty"`
	Distances    map[string]any    `json:"distances"`
	Predecessors map[string]string `json:"predecessors"`
	HasCycle     bool              `json:"has_cycle"`
	CycleEdges   []EdgeJSON        `json:"cycle_edges,omitempty"`
	// Path is the reconstructed route to Target; best effort when
	// HasCycle is true (see Advisory).
	Path        []EdgeJSON `json:"path,omitempty"`
	TotalWeight float64    `json:"total_weight"`
	Advisory    string     `json:"advisory,omitempty"`
	// RunID is set when the run was persisted.
	RunID string `json:"run_id,omitempty"`
}

// newAnalyzeResponse flattens an analysis into its wire shape.
func newAnalyzeResponse(res *bellmanford.Result, rep *bellmanford.CycleReport, target string) *AnalyzeResponse {
	resp := &AnalyzeResponse{
		Source:       res.Source,
		Target:       target,
		Distances:    make(map[string]any, len(res.Dist)),
		Predecessors: res.Pred,
		HasCycle:     rep.HasCycle,
	}
	for id, d := range res.Dist {
		if math.IsInf(d, +1) {
			resp.Distances[id] = "unreachable"
		} else {
			resp.Distances[id] = d
		}
	}
	if rep.HasCycle {
		resp.Advisory = cycleAdvisory
		resp.CycleEdges = wireEdges(rep.Edges)
	}
	if target != "" {
		path := res.PathTo(target)
		resp.Path = wireEdges(path)
		for _, e := range path {
			resp.TotalWeight += e.Weight
		}
	}

	return resp
}

// coreEdges converts wire edges into graph edges.
func coreEdges(in []EdgeJSON) []core.Edge {
	out := make([]core.Edge, 0, len(in))
	for _, e := range in {
		out = append(out, core.Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out
}

// wireEdges converts graph edges into wire edges; empty stays nil so the
// JSON field is omitted.
func wireEdges(in []core.Edge) []EdgeJSON {
	if len(in) == 0 {
		return nil
	}
	out := make([]EdgeJSON, 0, len(in))
	for _, e := range in {
		out = append(out, EdgeJSON{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out
}

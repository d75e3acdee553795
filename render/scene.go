// scene.go builds the presentation model: positioned nodes and classified
// edges derived from a core.Graph and a bellmanford analysis, plus the
// plain-text Summary of the same analysis.

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/foldpath/bellmanford"
	"github.com/katalvlaran/foldpath/core"
)

// Node is one positioned, colored graph vertex.
type Node struct {
	// ID is the vertex identifier, also used as the label.
	ID string
	// X, Y are canvas coordinates assigned by the layout.
	X, Y float64
	// Dist is the ΔG distance from the source; +∞ when unreachable or
	// when the scene was built without a result.
	Dist float64
	// Color is the node fill (see the package palette).
	Color string
	// OnPath reports membership in the reconstructed source→target route.
	OnPath bool
}

// Edge is one classified graph edge.
type Edge struct {
	From, To string
	// Weight is the edge ΔG in kcal/mol.
	Weight float64
	// Kind determines the stroke color and style.
	Kind EdgeKind
}

// Scene is a render-ready snapshot: geometry plus classified content.
// Build one with NewScene; renderers treat it as read-only.
type Scene struct {
	// Width, Height and Background describe the canvas.
	Width, Height float64
	Background    string
	// Source and Target echo the analysis end-points ("" when absent).
	Source, Target string
	// HasCycle mirrors the negative-cycle advisory of the analysis.
	HasCycle bool

	Nodes []*Node
	Edges []*Edge
}

// edgePair keys classification sets by direction.
type edgePair struct{ from, to string }

// NewScene positions and classifies a graph for rendering. res and rep may
// be nil: without a result every node reads as unreachable and edges fall
// back to cycle/sign classification. Edge precedence is path over cycle
// over sign, so a cycle edge that also lies on the reconstructed route
// renders as part of the route.
func NewScene(g *core.Graph, res *bellmanford.Result, rep *bellmanford.CycleReport, target string, opts ...Option) (*Scene, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate: a drawable scene needs at least one node.
	if g == nil || g.NodeCount() == 0 {
		return nil, ErrEmptyScene
	}

	// 3) Collect the edge sets that drive classification.
	onPath := make(map[edgePair]bool)
	pathNodes := make(map[string]bool)
	source := ""
	if res != nil {
		source = res.Source
		if target != "" {
			if path := res.PathTo(target); path != nil {
				pathNodes[source] = true
				for _, e := range path {
					onPath[edgePair{e.From, e.To}] = true
					pathNodes[e.From] = true
					pathNodes[e.To] = true
				}
			}
		}
	}
	inCycle := make(map[edgePair]bool)
	hasCycle := false
	if rep != nil && rep.HasCycle {
		hasCycle = true
		for _, e := range rep.Edges {
			inCycle[edgePair{e.From, e.To}] = true
		}
	}

	// 4) Materialize nodes with distances and colors.
	s := &Scene{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Source:     source,
		Target:     target,
		HasCycle:   hasCycle,
	}
	for _, id := range g.Nodes() {
		dist := math.Inf(1)
		if res != nil {
			if d, ok := res.Dist[id]; ok {
				dist = d
			}
		}
		n := &Node{ID: id, Dist: dist, OnPath: pathNodes[id]}
		switch {
		case res != nil && id == source:
			n.Color = colorSourceNode
		case n.OnPath:
			n.Color = colorPathNode
		case math.IsInf(dist, +1):
			n.Color = colorUnreachable
		default:
			n.Color = colorNode
		}
		s.Nodes = append(s.Nodes, n)
	}

	// 5) Classify edges: path beats cycle beats sign.
	for _, e := range g.Edges() {
		kind := KindPositive
		switch {
		case onPath[edgePair{e.From, e.To}]:
			kind = KindPath
		case inCycle[edgePair{e.From, e.To}]:
			kind = KindCycle
		case e.Weight < 0:
			kind = KindNegative
		}
		s.Edges = append(s.Edges, &Edge{
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			Kind:   kind,
		})
	}

	// 6) Position nodes.
	lay := cfg.Layout
	if lay == nil {
		lay = NewForceDirectedLayout(cfg.Seed)
	}
	runLayout(lay, s)

	return s, nil
}

// byID indexes scene nodes for edge endpoint lookups.
func (s *Scene) byID() map[string]*Node {
	m := make(map[string]*Node, len(s.Nodes))
	for _, n := range s.Nodes {
		m[n.ID] = n
	}
	return m
}

// title is the one-line heading embedded by the visual renderers.
func (s *Scene) title() string {
	t := "foldpath ΔG analysis"
	if s.Source != "" {
		t += "  source=" + s.Source
	}
	if s.Target != "" {
		t += "  target=" + s.Target
	}
	return t
}

// fmtDist prints a distance with two decimals, ∞ for unreachable.
func fmtDist(d float64) string {
	if math.IsInf(d, +1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", d)
}

// Summary renders the analysis as the text block the CLI prints: per-node
// ΔG distances in graph insertion order, the reconstructed path with its
// total ΔG, and the negative-cycle advisory when one was detected.
// Unreachable nodes print as ∞. Returns "" when g or res is nil.
//
// Under a negative cycle the printed route is best effort and may enter
// the cycle; the advisory below the table says so.
func Summary(g *core.Graph, res *bellmanford.Result, rep *bellmanford.CycleReport, target string) string {
	if g == nil || res == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "ΔG distances from %s (kcal/mol):\n", res.Source)

	width := 0
	for _, id := range g.Nodes() {
		if len(id) > width {
			width = len(id)
		}
	}
	for _, id := range g.Nodes() {
		d, ok := res.Dist[id]
		if !ok || math.IsInf(d, +1) {
			fmt.Fprintf(&b, "  %-*s  %7s  (unreachable)\n", width, id, "∞")
			continue
		}
		fmt.Fprintf(&b, "  %-*s  %7.2f\n", width, id, d)
	}

	if target != "" {
		b.WriteString(pathLine(res, target))
	}
	if rep != nil && rep.HasCycle {
		b.WriteString("warning: negative ΔG cycle detected; flagged distances are not finite minima\n")
		for _, e := range rep.Edges {
			fmt.Fprintf(&b, "  cycle edge %s → %s  (ΔG %.2f)\n", e.From, e.To, e.Weight)
		}
	}
	return b.String()
}

// pathLine formats the reconstructed route, or the no-path notice. The
// vertex chain starts at the first edge origin rather than the source so
// a best-effort route that begins inside a cycle prints faithfully.
func pathLine(res *bellmanford.Result, target string) string {
	if target == res.Source {
		return fmt.Sprintf("path %s → %s: %s  (total ΔG 0.00)\n", target, target, target)
	}
	path := res.PathTo(target)
	if path == nil {
		return fmt.Sprintf("no path from %s to %s\n", res.Source, target)
	}
	verts := make([]string, 0, len(path)+1)
	verts = append(verts, path[0].From)
	total := 0.0
	for _, e := range path {
		verts = append(verts, e.To)
		total += e.Weight
	}
	return fmt.Sprintf("path %s → %s: %s  (total ΔG %.2f)\n",
		res.Source, target, strings.Join(verts, " → "), total)
}

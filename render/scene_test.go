package render_test

import (
	"testing"

	"github.com/katalvlaran/foldpath/bellmanford"
	"github.com/katalvlaran/foldpath/core"
	"github.com/katalvlaran/foldpath/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funnel builds the six-state folding fixture used throughout:
// U (unfolded) → intermediates A..E → F (folded), plus any extra edges.
func funnel(t *testing.T, extra ...core.Edge) *core.Graph {
	t.Helper()
	edges := []core.Edge{
		{From: "U", To: "A", Weight: -2.0},
		{From: "A", To: "B", Weight: -1.5},
		{From: "B", To: "C", Weight: -3.0},
		{From: "C", To: "F", Weight: -2.0},
		{From: "B", To: "D", Weight: 1.0},
		{From: "D", To: "E", Weight: -4.0},
		{From: "E", To: "F", Weight: 2.0},
	}
	edges = append(edges, extra...)
	g, err := core.NewGraph([]string{"U", "A", "B", "C", "D", "E", "F"}, edges)
	require.NoError(t, err)

	return g
}

// analyze runs the solver over g from source U.
func analyze(t *testing.T, g *core.Graph) (*bellmanford.Result, *bellmanford.CycleReport) {
	t.Helper()
	res, rep, err := bellmanford.Compute(g, "U")
	require.NoError(t, err)

	return res, rep
}

// kinds flattens scene edges into a From→To keyed lookup.
func kinds(s *render.Scene) map[string]render.EdgeKind {
	m := make(map[string]render.EdgeKind, len(s.Edges))
	for _, e := range s.Edges {
		m[e.From+"→"+e.To] = e.Kind
	}
	return m
}

// --- 1. Validation ------------------------------------------------------

// TestNewScene_NilGraph rejects a nil graph as an empty scene.
func TestNewScene_NilGraph(t *testing.T) {
	_, err := render.NewScene(nil, nil, nil, "")
	assert.ErrorIs(t, err, render.ErrEmptyScene)
}

// TestNewScene_EmptyGraph rejects a graph with no nodes.
func TestNewScene_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(nil, nil)
	require.NoError(t, err)

	_, err = render.NewScene(g, nil, nil, "")
	assert.ErrorIs(t, err, render.ErrEmptyScene)
}

// --- 2. Edge classification ---------------------------------------------

// TestNewScene_EdgeClassification pins every kind on the plain funnel:
// the U→F route is path, off-route edges split by ΔG sign.
func TestNewScene_EdgeClassification(t *testing.T) {
	g := funnel(t)
	res, rep := analyze(t, g)

	s, err := render.NewScene(g, res, rep, "F")
	require.NoError(t, err)
	assert.False(t, s.HasCycle)
	assert.Equal(t, "U", s.Source)
	assert.Equal(t, "F", s.Target)

	want := map[string]render.EdgeKind{
		"U→A": render.KindPath,
		"A→B": render.KindPath,
		"B→C": render.KindPath,
		"C→F": render.KindPath,
		"B→D": render.KindPositive,
		"D→E": render.KindNegative,
		"E→F": render.KindPositive,
	}
	assert.Equal(t, want, kinds(s))
}

// TestNewScene_PathBeatsCycle checks precedence: when the best-effort
// route runs through the C→A cycle, its edges render as path, not cycle.
func TestNewScene_PathBeatsCycle(t *testing.T) {
	g := funnel(t, core.Edge{From: "C", To: "A", Weight: -2.5})
	res, rep := analyze(t, g)
	require.True(t, rep.HasCycle)

	s, err := render.NewScene(g, res, rep, "F")
	require.NoError(t, err)
	assert.True(t, s.HasCycle)

	k := kinds(s)
	assert.Equal(t, render.KindPath, k["C→A"])
	assert.Equal(t, render.KindPath, k["A→B"])
	assert.Equal(t, render.KindPath, k["B→C"])
	assert.Equal(t, render.KindPath, k["C→F"])
	// Off the best-effort route, sign classification still applies.
	assert.Equal(t, render.KindNegative, k["U→A"])
}

// TestNewScene_CycleKind keeps cycle black when the route avoids it: the
// D→D self-loop taints nothing on the U→F path.
func TestNewScene_CycleKind(t *testing.T) {
	g := funnel(t, core.Edge{From: "D", To: "D", Weight: -0.5})
	res, rep := analyze(t, g)
	require.True(t, rep.HasCycle)

	s, err := render.NewScene(g, res, rep, "F")
	require.NoError(t, err)

	k := kinds(s)
	assert.Equal(t, render.KindCycle, k["D→D"])
	assert.Equal(t, render.KindPath, k["U→A"])
	assert.Equal(t, render.KindPath, k["C→F"])
}

// --- 3. Node coloring ---------------------------------------------------

// TestNewScene_NodeColors pins the palette: gold source, light-green
// path nodes, gray unreachable, blue everything else.
func TestNewScene_NodeColors(t *testing.T) {
	g, err := core.NewGraph(
		[]string{"U", "A", "B", "C", "D", "E", "F", "X"},
		[]core.Edge{
			{From: "U", To: "A", Weight: -2.0},
			{From: "A", To: "B", Weight: -1.5},
			{From: "B", To: "C", Weight: -3.0},
			{From: "C", To: "F", Weight: -2.0},
			{From: "B", To: "D", Weight: 1.0},
			{From: "D", To: "E", Weight: -4.0},
			{From: "E", To: "F", Weight: 2.0},
		},
	)
	require.NoError(t, err)
	res, rep := analyze(t, g)

	s, err := render.NewScene(g, res, rep, "F")
	require.NoError(t, err)

	colors := make(map[string]string, len(s.Nodes))
	onPath := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		colors[n.ID] = n.Color
		onPath[n.ID] = n.OnPath
	}

	assert.Equal(t, "#f4b400", colors["U"], "source is gold")
	for _, id := range []string{"A", "B", "C", "F"} {
		assert.Equal(t, "#a6d96a", colors[id], "path node %s", id)
		assert.True(t, onPath[id])
	}
	assert.Equal(t, "#4285f4", colors["D"])
	assert.Equal(t, "#4285f4", colors["E"])
	assert.Equal(t, "#9e9e9e", colors["X"], "unreachable is gray")
	assert.False(t, onPath["X"])
}

// TestNewScene_DistancesCarried copies solver distances onto the nodes.
func TestNewScene_DistancesCarried(t *testing.T) {
	g := funnel(t)
	res, rep := analyze(t, g)

	s, err := render.NewScene(g, res, rep, "F")
	require.NoError(t, err)

	for _, n := range s.Nodes {
		assert.Equal(t, res.Dist[n.ID], n.Dist, "node %s", n.ID)
	}
}

// TestNewScene_NilResult degrades to a bare structural scene: no source,
// all nodes unreachable, edges classified by sign alone.
func TestNewScene_NilResult(t *testing.T) {
	s, err := render.NewScene(funnel(t), nil, nil, "")
	require.NoError(t, err)
	assert.Empty(t, s.Source)
	assert.False(t, s.HasCycle)

	for _, n := range s.Nodes {
		assert.Equal(t, "#9e9e9e", n.Color, "node %s", n.ID)
	}
	k := kinds(s)
	assert.Equal(t, render.KindNegative, k["U→A"])
	assert.Equal(t, render.KindPositive, k["B→D"])
	assert.Equal(t, render.KindPositive, k["E→F"])
}

// --- 4. Summary ---------------------------------------------------------

// TestSummary_Funnel checks the converged report: distance table, route
// line with the −8.5 total, no advisory.
func TestSummary_Funnel(t *testing.T) {
	g := funnel(t)
	res, rep := analyze(t, g)

	out := render.Summary(g, res, rep, "F")
	assert.Contains(t, out, "ΔG distances from U (kcal/mol):")
	assert.Contains(t, out, "U     0.00")
	assert.Contains(t, out, "F    -8.50")
	assert.Contains(t, out, "path U → F: U → A → B → C → F  (total ΔG -8.50)")
	assert.NotContains(t, out, "warning")
}

// TestSummary_UnreachableAndNoPath prints ∞ rows and the no-path notice.
func TestSummary_UnreachableAndNoPath(t *testing.T) {
	g, err := core.NewGraph([]string{"U", "X"}, nil)
	require.NoError(t, err)
	res, rep := analyze(t, g)

	out := render.Summary(g, res, rep, "X")
	assert.Contains(t, out, "∞  (unreachable)")
	assert.Contains(t, out, "no path from U to X")
}

// TestSummary_CycleAdvisory includes the warning, the sorted cycle edges
// and the best-effort route that re-enters the cycle.
func TestSummary_CycleAdvisory(t *testing.T) {
	g := funnel(t, core.Edge{From: "C", To: "A", Weight: -2.5})
	res, rep := analyze(t, g)

	out := render.Summary(g, res, rep, "F")
	assert.Contains(t, out, "warning: negative ΔG cycle detected")
	assert.Contains(t, out, "cycle edge A → B  (ΔG -1.50)")
	assert.Contains(t, out, "cycle edge B → C  (ΔG -3.00)")
	assert.Contains(t, out, "cycle edge C → A  (ΔG -2.50)")
	assert.Contains(t, out, "path U → F: C → A → B → C → F  (total ΔG -9.00)")
}

// TestSummary_TargetIsSource prints the trivial zero-cost route.
func TestSummary_TargetIsSource(t *testing.T) {
	g := funnel(t)
	res, rep := analyze(t, g)

	out := render.Summary(g, res, rep, "U")
	assert.Contains(t, out, "path U → U: U  (total ΔG 0.00)")
}

// TestSummary_NilInputs returns an empty string rather than panicking.
func TestSummary_NilInputs(t *testing.T) {
	g := funnel(t)
	res, rep := analyze(t, g)

	assert.Empty(t, render.Summary(nil, res, rep, "F"))
	assert.Empty(t, render.Summary(g, nil, rep, "F"))
}

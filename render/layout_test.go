package render_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/foldpath/core"
	"github.com/katalvlaran/foldpath/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad hand-builds a four-node scene for driving layouts directly.
func quad() *render.Scene {
	return &render.Scene{
		Width:  800,
		Height: 600,
		Nodes: []*render.Node{
			{ID: "U"}, {ID: "A"}, {ID: "B"}, {ID: "F"},
		},
		Edges: []*render.Edge{
			{From: "U", To: "A", Weight: -2.0, Kind: render.KindNegative},
			{From: "A", To: "B", Weight: -1.5, Kind: render.KindNegative},
			{From: "B", To: "F", Weight: -3.0, Kind: render.KindNegative},
		},
	}
}

// drive runs the Initialize/Step/Apply lifecycle to completion.
func drive(l render.LayoutAlgorithm, s *render.Scene) {
	l.Initialize(s)
	for i := 0; i < 300; i++ {
		if l.Step() {
			break
		}
	}
	l.Apply(s)
}

// --- 1. Force-directed --------------------------------------------------

// TestForceDirectedLayout_Deterministic runs the same seed twice and
// expects identical coordinates.
func TestForceDirectedLayout_Deterministic(t *testing.T) {
	a, b := quad(), quad()
	drive(render.NewForceDirectedLayout(42), a)
	drive(render.NewForceDirectedLayout(42), b)

	for i := range a.Nodes {
		assert.Equal(t, a.Nodes[i].X, b.Nodes[i].X, "node %s X", a.Nodes[i].ID)
		assert.Equal(t, a.Nodes[i].Y, b.Nodes[i].Y, "node %s Y", a.Nodes[i].ID)
	}
}

// TestForceDirectedLayout_SeedChangesPlacement makes sure the seed is
// actually wired into the initial placement.
func TestForceDirectedLayout_SeedChangesPlacement(t *testing.T) {
	a, b := quad(), quad()
	drive(render.NewForceDirectedLayout(1), a)
	drive(render.NewForceDirectedLayout(2), b)

	moved := false
	for i := range a.Nodes {
		if a.Nodes[i].X != b.Nodes[i].X || a.Nodes[i].Y != b.Nodes[i].Y {
			moved = true
			break
		}
	}
	assert.True(t, moved, "different seeds should place nodes differently")
}

// TestForceDirectedLayout_WithinBounds keeps every node on canvas.
func TestForceDirectedLayout_WithinBounds(t *testing.T) {
	s := quad()
	drive(render.NewForceDirectedLayout(7), s)

	for _, n := range s.Nodes {
		assert.GreaterOrEqual(t, n.X, 0.0, "node %s X", n.ID)
		assert.LessOrEqual(t, n.X, s.Width, "node %s X", n.ID)
		assert.GreaterOrEqual(t, n.Y, 0.0, "node %s Y", n.ID)
		assert.LessOrEqual(t, n.Y, s.Height, "node %s Y", n.ID)
	}
}

// TestForceDirectedLayout_SeparatesNodes expects repulsion to keep nodes
// visibly apart.
func TestForceDirectedLayout_SeparatesNodes(t *testing.T) {
	s := quad()
	drive(render.NewForceDirectedLayout(3), s)

	for i, a := range s.Nodes {
		for _, b := range s.Nodes[i+1:] {
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			assert.Greater(t, d, 10.0, "nodes %s and %s overlap", a.ID, b.ID)
		}
	}
}

// TestForceDirectedLayout_Terminates reports done within the iteration
// budget even if the system never settles below the energy threshold.
func TestForceDirectedLayout_Terminates(t *testing.T) {
	l := render.NewForceDirectedLayout(5)
	l.Initialize(quad())

	done := false
	for i := 0; i < 150; i++ {
		if l.Step() {
			done = true
			break
		}
	}
	assert.True(t, done)
}

// TestForceDirectedLayout_SelfLoopIgnored keeps a self-loop from feeding
// zero-distance attraction into the simulation.
func TestForceDirectedLayout_SelfLoopIgnored(t *testing.T) {
	s := quad()
	s.Edges = append(s.Edges, &render.Edge{From: "B", To: "B", Weight: -0.5, Kind: render.KindCycle})
	drive(render.NewForceDirectedLayout(9), s)

	for _, n := range s.Nodes {
		assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y), "node %s position", n.ID)
	}
}

// --- 2. Chain -----------------------------------------------------------

// TestChainLayout_LeftToRight spaces a residue chain evenly across the
// horizontal midline in insertion order.
func TestChainLayout_LeftToRight(t *testing.T) {
	g, err := core.NewSequential([]string{"MET1", "ALA2", "GLY3", "LYS4"})
	require.NoError(t, err)

	s, err := render.NewScene(g, nil, nil, "",
		render.WithLayout(render.NewChainLayout()),
		render.WithDimensions(800, 600),
	)
	require.NoError(t, err)

	for i := 1; i < len(s.Nodes); i++ {
		assert.Greater(t, s.Nodes[i].X, s.Nodes[i-1].X, "X must increase along the chain")
	}
	for _, n := range s.Nodes {
		assert.Equal(t, 300.0, n.Y, "node %s sits on the midline", n.ID)
	}
	// End nodes respect the margin.
	assert.Equal(t, 64.0, s.Nodes[0].X)
	assert.Equal(t, 736.0, s.Nodes[len(s.Nodes)-1].X)
}

// TestChainLayout_SingleNode centers a lone node.
func TestChainLayout_SingleNode(t *testing.T) {
	s := &render.Scene{Width: 800, Height: 600, Nodes: []*render.Node{{ID: "GLY1"}}}
	drive(render.NewChainLayout(), s)

	assert.Equal(t, 400.0, s.Nodes[0].X)
	assert.Equal(t, 300.0, s.Nodes[0].Y)
}

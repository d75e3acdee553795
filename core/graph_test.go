package core_test

import (
	"testing"

	"github.com/katalvlaran/foldpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a small explicit graph used by the accessor tests.
func fixture(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(
		[]string{"U", "A", "B", "C"},
		[]core.Edge{
			{From: "U", To: "A", Weight: -2.0},
			{From: "U", To: "B", Weight: 1.0},
			{From: "A", To: "B", Weight: -1.5},
			{From: "B", To: "C", Weight: -3.0},
		},
	)
	require.NoError(t, err)

	return g
}

// TestNodes_InsertionOrder enumerates nodes exactly as declared.
func TestNodes_InsertionOrder(t *testing.T) {
	g := fixture(t)
	assert.Equal(t, []string{"U", "A", "B", "C"}, g.Nodes())
}

// TestNodes_Copy guards graph state against mutation of the returned slice.
func TestNodes_Copy(t *testing.T) {
	g := fixture(t)
	nodes := g.Nodes()
	nodes[0] = "Z"
	assert.Equal(t, []string{"U", "A", "B", "C"}, g.Nodes())
}

// TestEdges_Copy guards graph state against mutation of the returned slice.
func TestEdges_Copy(t *testing.T) {
	g := fixture(t)
	edges := g.Edges()
	edges[0].Weight = 99
	assert.Equal(t, -2.0, g.Edges()[0].Weight)
}

// TestNeighbors_OrderAndRestart iterates the same node twice and expects
// identical (target, weight) pairs in edge insertion order both times.
func TestNeighbors_OrderAndRestart(t *testing.T) {
	g := fixture(t)

	collect := func() []core.Edge {
		var out []core.Edge
		for to, w := range g.Neighbors("U") {
			out = append(out, core.Edge{From: "U", To: to, Weight: w})
		}

		return out
	}

	first := collect()
	second := collect()
	want := []core.Edge{
		{From: "U", To: "A", Weight: -2.0},
		{From: "U", To: "B", Weight: 1.0},
	}
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
}

// TestNeighbors_EarlyBreak stops mid-iteration without disturbing state.
func TestNeighbors_EarlyBreak(t *testing.T) {
	g := fixture(t)

	var seen int
	for range g.Neighbors("U") {
		seen++

		break
	}
	assert.Equal(t, 1, seen)

	// A fresh iteration still sees everything.
	seen = 0
	for range g.Neighbors("U") {
		seen++
	}
	assert.Equal(t, 2, seen)
}

// TestNeighbors_Empty yields nothing for sink nodes and unknown IDs alike.
func TestNeighbors_Empty(t *testing.T) {
	g := fixture(t)

	for _, id := range []string{"C", "nope"} {
		count := 0
		for range g.Neighbors(id) {
			count++
		}
		assert.Zero(t, count, "node %q", id)
	}
}

// TestCounts reports cardinalities including parallel edges.
func TestCounts(t *testing.T) {
	g, err := core.NewGraph(
		[]string{"A", "B"},
		[]core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "A", To: "B", Weight: 2},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

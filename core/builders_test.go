package core_test

import (
	"testing"

	"github.com/katalvlaran/foldpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGraph_Valid builds an explicit topology and verifies node and
// edge bookkeeping survives intact.
func TestNewGraph_Valid(t *testing.T) {
	g, err := core.NewGraph(
		[]string{"U", "A", "B"},
		[]core.Edge{
			{From: "U", To: "A", Weight: -2.0},
			{From: "A", To: "B", Weight: -1.5},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasNode("U"))
	assert.False(t, g.HasNode("Z"))
}

// TestNewGraph_UnknownFrom rejects an edge whose source is not declared.
func TestNewGraph_UnknownFrom(t *testing.T) {
	_, err := core.NewGraph(
		[]string{"A", "B"},
		[]core.Edge{{From: "X", To: "B", Weight: 1.0}},
	)
	assert.ErrorIs(t, err, core.ErrInvalidEdge)
}

// TestNewGraph_UnknownTo rejects an edge whose target is not declared.
func TestNewGraph_UnknownTo(t *testing.T) {
	_, err := core.NewGraph(
		[]string{"A", "B"},
		[]core.Edge{{From: "A", To: "X", Weight: 1.0}},
	)
	assert.ErrorIs(t, err, core.ErrInvalidEdge)
}

// TestNewGraph_DuplicateNode rejects a node set with a repeated identifier.
func TestNewGraph_DuplicateNode(t *testing.T) {
	_, err := core.NewGraph([]string{"A", "B", "A"}, nil)
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

// TestNewGraph_PermissiveWeights accepts zero weights, parallel edges,
// and self-loops without complaint.
func TestNewGraph_PermissiveWeights(t *testing.T) {
	g, err := core.NewGraph(
		[]string{"A", "B"},
		[]core.Edge{
			{From: "A", To: "B", Weight: 0},
			{From: "A", To: "B", Weight: -3.0},
			{From: "B", To: "B", Weight: -0.1},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

// TestNewSequential_Default chains the sequence with −0.5 per step.
func TestNewSequential_Default(t *testing.T) {
	g, err := core.NewSequential([]string{"A", "B", "C", "D"})
	require.NoError(t, err)

	want := []core.Edge{
		{From: "A", To: "B", Weight: -0.5},
		{From: "B", To: "C", Weight: -0.5},
		{From: "C", To: "D", Weight: -0.5},
	}
	assert.Equal(t, want, g.Edges())
}

// TestNewSequential_StepWeight honors a caller-supplied uniform weight.
func TestNewSequential_StepWeight(t *testing.T) {
	g, err := core.NewSequential([]string{"A", "B"}, core.WithStepWeight(1.25))
	require.NoError(t, err)
	require.Len(t, g.Edges(), 1)
	assert.Equal(t, 1.25, g.Edges()[0].Weight)
}

// TestNewSequential_SingleNode yields one node and no edges.
func TestNewSequential_SingleNode(t *testing.T) {
	g, err := core.NewSequential([]string{"A"})
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestNewSequential_Empty rejects an empty sequence.
func TestNewSequential_Empty(t *testing.T) {
	_, err := core.NewSequential(nil)
	assert.ErrorIs(t, err, core.ErrEmptySequence)
}

// TestNewSequential_Duplicate rejects repeated identifiers in the chain.
func TestNewSequential_Duplicate(t *testing.T) {
	_, err := core.NewSequential([]string{"A", "B", "A"})
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

package pdb_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/foldpath/pdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atom renders one fixed-column ATOM record with the given atom name,
// alternate-location indicator, residue, chain, number, and insertion
// code. Coordinates are filler; the parser never reads them.
func atom(serial int, name, alt, res, chain string, seq int, icode string) string {
	return "ATOM  " + fmt.Sprintf("%5d", serial) + " " + name + alt + res + " " +
		chain + fmt.Sprintf("%4d", seq) + icode + "   25.000  24.000  23.000  1.00  0.00"
}

// TestChain_BasicOrder keeps one CA per residue, in backbone order,
// ignoring every other atom record.
func TestChain_BasicOrder(t *testing.T) {
	file := strings.Join([]string{
		"HEADER    FOLDING TEST",
		atom(1, " N  ", " ", "MET", "A", 1, " "),
		atom(2, " CA ", " ", "MET", "A", 1, " "),
		atom(3, " C  ", " ", "MET", "A", 1, " "),
		atom(4, " CA ", " ", "ALA", "A", 2, " "),
		atom(5, " O  ", " ", "ALA", "A", 2, " "),
		atom(6, " CA ", " ", "GLY", "A", 3, " "),
		"END",
	}, "\n")

	seq, err := pdb.Chain(strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, []string{"MET1", "ALA2", "GLY3"}, seq)
}

// TestChain_FirstChainWins locks onto the first chain that shows a CA
// record when no explicit chain is requested.
func TestChain_FirstChainWins(t *testing.T) {
	file := strings.Join([]string{
		atom(1, " CA ", " ", "MET", "A", 1, " "),
		atom(2, " CA ", " ", "ALA", "A", 2, " "),
		atom(3, " CA ", " ", "SER", "B", 1, " "),
	}, "\n")

	seq, err := pdb.Chain(strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, []string{"MET1", "ALA2"}, seq)
}

// TestChain_ExplicitChain extracts only the requested chain.
func TestChain_ExplicitChain(t *testing.T) {
	file := strings.Join([]string{
		atom(1, " CA ", " ", "MET", "A", 1, " "),
		atom(2, " CA ", " ", "SER", "B", 1, " "),
		atom(3, " CA ", " ", "LYS", "B", 2, " "),
	}, "\n")

	seq, err := pdb.Chain(strings.NewReader(file), pdb.WithChain("B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"SER1", "LYS2"}, seq)
}

// TestChain_ChainNotFound reports a missing chain distinctly from an
// empty file.
func TestChain_ChainNotFound(t *testing.T) {
	file := atom(1, " CA ", " ", "MET", "A", 1, " ")

	_, err := pdb.Chain(strings.NewReader(file), pdb.WithChain("Z"))
	assert.ErrorIs(t, err, pdb.ErrChainNotFound)
}

// TestChain_NoResidues reports input without any CA records.
func TestChain_NoResidues(t *testing.T) {
	file := strings.Join([]string{
		"HEADER    EMPTY",
		atom(1, " N  ", " ", "MET", "A", 1, " "),
		"END",
	}, "\n")

	_, err := pdb.Chain(strings.NewReader(file))
	assert.ErrorIs(t, err, pdb.ErrNoResidues)
}

// TestChain_AltLocKeepsFirstConformer collapses A/B alternate locations
// into a single residue entry.
func TestChain_AltLocKeepsFirstConformer(t *testing.T) {
	file := strings.Join([]string{
		atom(1, " CA ", "A", "MET", "A", 1, " "),
		atom(2, " CA ", "B", "MET", "A", 1, " "),
		atom(3, " CA ", " ", "ALA", "A", 2, " "),
	}, "\n")

	seq, err := pdb.Chain(strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, []string{"MET1", "ALA2"}, seq)
}

// TestChain_InsertionCodes treats 52 and 52A as distinct residues.
func TestChain_InsertionCodes(t *testing.T) {
	file := strings.Join([]string{
		atom(1, " CA ", " ", "SER", "A", 52, " "),
		atom(2, " CA ", " ", "GLY", "A", 52, "A"),
	}, "\n")

	seq, err := pdb.Chain(strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, []string{"SER52", "GLY52A"}, seq)
}

// TestChain_FirstModelOnly stops at ENDMDL so NMR ensembles contribute
// one backbone.
func TestChain_FirstModelOnly(t *testing.T) {
	file := strings.Join([]string{
		"MODEL        1",
		atom(1, " CA ", " ", "MET", "A", 1, " "),
		"ENDMDL",
		"MODEL        2",
		atom(2, " CA ", " ", "MET", "A", 1, " "),
		atom(3, " CA ", " ", "ALA", "A", 2, " "),
		"ENDMDL",
	}, "\n")

	seq, err := pdb.Chain(strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, []string{"MET1"}, seq)
}

// TestChain_TolerantOfJunk skips short and non-ATOM lines silently.
func TestChain_TolerantOfJunk(t *testing.T) {
	file := strings.Join([]string{
		"ATOM truncated",
		"HETATM    1 CA    CA A 101      10.000  10.000  10.000", // calcium ion
		atom(2, " CA ", " ", "MET", "A", 1, " "),
	}, "\n")

	seq, err := pdb.Chain(strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, []string{"MET1"}, seq)
}

// TestGraph_DefaultStepWeight chains residues at −0.5 per step.
func TestGraph_DefaultStepWeight(t *testing.T) {
	file := strings.Join([]string{
		atom(1, " CA ", " ", "MET", "A", 1, " "),
		atom(2, " CA ", " ", "ALA", "A", 2, " "),
		atom(3, " CA ", " ", "GLY", "A", 3, " "),
	}, "\n")

	g, seq, err := pdb.Graph(strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, []string{"MET1", "ALA2", "GLY3"}, seq)
	require.Equal(t, 2, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, -0.5, e.Weight)
	}
}

// TestGraph_StepWeightOverride honors a custom per-step ΔG.
func TestGraph_StepWeightOverride(t *testing.T) {
	file := strings.Join([]string{
		atom(1, " CA ", " ", "MET", "A", 1, " "),
		atom(2, " CA ", " ", "ALA", "A", 2, " "),
	}, "\n")

	g, _, err := pdb.Graph(strings.NewReader(file), pdb.WithStepWeight(-1.25))
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, -1.25, g.Edges()[0].Weight)
}

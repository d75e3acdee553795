// Package core provides the graph model shared by every analysis stage:
// node identity, directed ΔG-weighted edges, and the two construction modes.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrInvalidEdge is returned when an edge references a node that is
	// not a member of the declared node set.
	ErrInvalidEdge = errors.New("core: edge endpoint not in node set")

	// ErrDuplicateNode is returned when a node identifier appears more
	// than once in the declared node set or sequence.
	ErrDuplicateNode = errors.New("core: duplicate node identifier")

	// ErrEmptySequence is returned when sequential construction receives
	// an empty node sequence.
	ErrEmptySequence = errors.New("core: node sequence is empty")
)

// DefaultStepWeight is the uniform ΔG (kcal/mol) assigned to each
// transition in sequential construction: one favorable −0.5 step.
const DefaultStepWeight = -0.5

// Edge is a directed transition From→To weighted by ΔG in kcal/mol.
// Weights are unconstrained: negative (favorable), zero, or positive.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Option configures graph construction via functional arguments.
type Option func(*BuildOptions)

// BuildOptions holds tunable parameters for graph construction.
type BuildOptions struct {
	// StepWeight is the uniform weight applied to every edge produced by
	// NewSequential. Ignored by NewGraph.
	StepWeight float64
}

// DefaultOptions returns a BuildOptions with the domain default:
// StepWeight = DefaultStepWeight (−0.5 kcal/mol per step).
func DefaultOptions() BuildOptions {
	return BuildOptions{StepWeight: DefaultStepWeight}
}

// WithStepWeight overrides the uniform per-step ΔG used by NewSequential.
// Any real value is allowed, including zero and positive penalties.
func WithStepWeight(w float64) Option {
	return func(o *BuildOptions) {
		o.StepWeight = w
	}
}

package pdb

import (
	"errors"

	"github.com/katalvlaran/foldpath/core"
)

// Sentinel errors for sequence extraction.
var (
	// ErrChainNotFound is returned when WithChain names a chain that has
	// no CA atom records in the first model.
	ErrChainNotFound = errors.New("pdb: chain not found")

	// ErrNoResidues is returned when no usable CA atom records exist.
	ErrNoResidues = errors.New("pdb: no CA residues found")
)

// Option configures sequence extraction via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Chain and Graph.
type Options struct {
	// Chain selects a chain identifier; empty means "first chain with a
	// CA record wins".
	Chain string

	// StepWeight is the uniform ΔG per backbone step used by Graph.
	StepWeight float64
}

// DefaultOptions returns Options with the first-chain policy and the
// domain default step weight (−0.5 kcal/mol).
func DefaultOptions() Options {
	return Options{
		Chain:      "",
		StepWeight: core.DefaultStepWeight,
	}
}

// WithChain selects the chain to extract (single-character IDs in
// standard PDB files, e.g. "A").
func WithChain(id string) Option {
	return func(o *Options) {
		o.Chain = id
	}
}

// WithStepWeight overrides the uniform per-step ΔG used by Graph.
func WithStepWeight(w float64) Option {
	return func(o *Options) {
		o.StepWeight = w
	}
}

// Package config loads a whole analysis description from YAML: the input
// graph (explicit, sequential or PDB-backed), the analysis end-points and
// the render/persistence/server settings around them.
//
// A document must carry version: 1 and exactly one input section:
//
//	version: 1
//	label: barnase unfolding
//	source: U
//	target: F
//	graph:
//	  nodes: [U, A, F]
//	  edges:
//	    - {from: U, to: A, weight: -2.0}
//	    - {from: A, to: F, weight: -1.5}
//	render:
//	  format: svg
//	  width: 800
//	  height: 600
//	  out: fold.svg
//	database:
//	  url: postgres://localhost:5432/foldpath
//	server:
//	  addr: :8080
//
// `sequence: [MET1, ALA2, ...]` or `pdb: {path: 1abc.pdb, chain: B}`
// replace the graph section for the other input modes; for those, source
// defaults to the first residue. `step_weight` overrides the −0.5 kcal/mol
// default of sequential inputs.
//
// Load validates eagerly, so a bad document fails at startup rather than
// mid-analysis.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/foldpath/core"
	"github.com/katalvlaran/foldpath/pdb"
	"github.com/katalvlaran/foldpath/render"
)

var (
	// ErrUnsupportedVersion rejects documents not declaring version: 1.
	ErrUnsupportedVersion = errors.New("config: unsupported version")
	// ErrNoInput means none of graph/sequence/pdb is present.
	ErrNoInput = errors.New("config: no input section (graph, sequence or pdb)")
	// ErrMultipleInputs means more than one input section is present.
	ErrMultipleInputs = errors.New("config: graph, sequence and pdb are mutually exclusive")
	// ErrMissingSource means an explicit graph came without a source node.
	ErrMissingSource = errors.New("config: graph input requires source")
	// ErrMissingPDBPath means a pdb section came without a file path.
	ErrMissingPDBPath = errors.New("config: pdb input requires a path")
	// ErrBadDimensions rejects negative render dimensions.
	ErrBadDimensions = errors.New("config: render dimensions must not be negative")
)

// Analysis is one fully described run.
type Analysis struct {
	Version int    `yaml:"version"`
	Label   string `yaml:"label"`
	Source  string `yaml:"source"`
	Target  string `yaml:"target"`
	// StepWeight overrides the default per-step ΔG of sequential and PDB
	// inputs; nil keeps core.DefaultStepWeight. A pointer so an explicit
	// zero survives.
	StepWeight *float64 `yaml:"step_weight"`

	Graph    *GraphInput `yaml:"graph"`
	Sequence []string    `yaml:"sequence"`
	PDB      *PDBInput   `yaml:"pdb"`

	Render   RenderConfig   `yaml:"render"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
}

// GraphInput is the explicit edge-list input mode.
type GraphInput struct {
	Nodes []string    `yaml:"nodes"`
	Edges []EdgeInput `yaml:"edges"`
}

// EdgeInput is one directed ΔG transition.
type EdgeInput struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// PDBInput points at a PDB file and an optional chain.
type PDBInput struct {
	Path  string `yaml:"path"`
	Chain string `yaml:"chain"`
}

// RenderConfig selects the diagram backend and canvas.
type RenderConfig struct {
	Format string  `yaml:"format"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Out is the output file; empty means stdout.
	Out string `yaml:"out"`
}

// DatabaseConfig carries the PostgreSQL DSN; empty disables persistence.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// ServerConfig carries the HTTP listen address.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads, parses and validates an analysis document.
func Load(path string) (*Analysis, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var a Analysis
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks structural invariants: the version, exactly one input
// mode, mode-specific required fields and a resolvable render format.
func (a *Analysis) Validate() error {
	if a.Version != 1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, a.Version)
	}

	modes := 0
	if a.Graph != nil {
		modes++
	}
	if len(a.Sequence) > 0 {
		modes++
	}
	if a.PDB != nil {
		modes++
	}
	switch {
	case modes == 0:
		return ErrNoInput
	case modes > 1:
		return ErrMultipleInputs
	}

	if a.Graph != nil && a.Source == "" {
		return ErrMissingSource
	}
	if a.PDB != nil && a.PDB.Path == "" {
		return ErrMissingPDBPath
	}

	if a.Render.Format != "" {
		if _, err := render.GetRenderer(a.Render.Format); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if a.Render.Width < 0 || a.Render.Height < 0 {
		return ErrBadDimensions
	}
	return nil
}

// BuildGraph materializes the configured input into a core.Graph and
// returns the effective source node: the configured one, or the first
// residue of sequential/PDB inputs.
func (a *Analysis) BuildGraph() (*core.Graph, string, error) {
	switch {
	case a.Graph != nil:
		edges := make([]core.Edge, 0, len(a.Graph.Edges))
		for _, e := range a.Graph.Edges {
			edges = append(edges, core.Edge{From: e.From, To: e.To, Weight: e.Weight})
		}
		g, err := core.NewGraph(a.Graph.Nodes, edges)
		if err != nil {
			return nil, "", fmt.Errorf("config: build graph: %w", err)
		}
		return g, a.Source, nil

	case len(a.Sequence) > 0:
		g, err := core.NewSequential(a.Sequence, a.coreOpts()...)
		if err != nil {
			return nil, "", fmt.Errorf("config: build sequence: %w", err)
		}
		src := a.Source
		if src == "" {
			src = a.Sequence[0]
		}
		return g, src, nil

	case a.PDB != nil:
		f, err := os.Open(a.PDB.Path)
		if err != nil {
			return nil, "", fmt.Errorf("config: open pdb: %w", err)
		}
		defer f.Close()

		g, seq, err := pdb.Graph(f, a.pdbOpts()...)
		if err != nil {
			return nil, "", fmt.Errorf("config: parse pdb: %w", err)
		}
		src := a.Source
		if src == "" {
			src = seq[0]
		}
		return g, src, nil
	}
	return nil, "", ErrNoInput
}

// Format returns the render format, defaulting to ascii.
func (a *Analysis) Format() string {
	if a.Render.Format == "" {
		return "ascii"
	}
	return a.Render.Format
}

// RenderOptions converts the render section into functional options.
func (a *Analysis) RenderOptions() []render.Option {
	var opts []render.Option
	if a.Render.Width > 0 || a.Render.Height > 0 {
		opts = append(opts, render.WithDimensions(a.Render.Width, a.Render.Height))
	}
	return opts
}

func (a *Analysis) coreOpts() []core.Option {
	if a.StepWeight == nil {
		return nil
	}
	return []core.Option{core.WithStepWeight(*a.StepWeight)}
}

func (a *Analysis) pdbOpts() []pdb.Option {
	var opts []pdb.Option
	if a.PDB.Chain != "" {
		opts = append(opts, pdb.WithChain(a.PDB.Chain))
	}
	if a.StepWeight != nil {
		opts = append(opts, pdb.WithStepWeight(*a.StepWeight))
	}
	return opts
}

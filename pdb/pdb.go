package pdb

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/foldpath/core"
)

// PDB fixed columns (0-based slice offsets into the 80-column record):
// record name [0:6], atom name [12:16], altLoc [16], resName [17:20],
// chainID [21], resSeq [22:26], iCode [26].
const minATOMLen = 27

// Chain extracts the ordered residue sequence of one chain: every
// residue that carries an alpha-carbon ATOM record, identified as
// resName+resSeq (plus the insertion code when present), e.g. "MET1".
//
// Reading stops at the first ENDMDL so multi-model files contribute one
// backbone. Alternate locations keep the first conformer only.
func Chain(r io.Reader, opts ...Option) ([]string, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Scan ATOM records, locking onto a single chain.
	var (
		seq       []string
		seen      = make(map[string]bool) // residue identity within the chain
		chains    = make(map[string]bool) // chains that had any CA record
		want      = cfg.Chain
		sc        = bufio.NewScanner(r)
		line      string
		chain, id string
	)
	for sc.Scan() {
		line = sc.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		if !strings.HasPrefix(line, "ATOM") || len(line) < minATOMLen {
			continue
		}
		if strings.TrimSpace(line[12:16]) != "CA" {
			continue
		}
		// First conformer only: blank or 'A' altLoc.
		if alt := line[16]; alt != ' ' && alt != 'A' {
			continue
		}

		chain = string(line[21])
		chains[chain] = true
		if want == "" {
			want = chain
		}
		if chain != want {
			continue
		}

		// Residue identity: number + insertion code, scoped to the chain.
		key := strings.TrimSpace(line[22:27])
		if seen[key] {
			continue
		}
		seen[key] = true

		id = strings.TrimSpace(line[17:20]) + key
		seq = append(seq, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pdb: read: %w", err)
	}

	// 3) Attribute emptiness precisely.
	if len(seq) == 0 {
		if cfg.Chain != "" && !chains[cfg.Chain] {
			return nil, fmt.Errorf("%w: %q", ErrChainNotFound, cfg.Chain)
		}

		return nil, ErrNoResidues
	}

	return seq, nil
}

// Graph extracts the residue chain and builds the sequential energy
// graph over it, one directed edge per backbone step at the configured
// uniform ΔG. The extracted sequence is returned alongside the graph so
// callers keep the source labeling.
func Graph(r io.Reader, opts ...Option) (*core.Graph, []string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	seq, err := Chain(r, opts...)
	if err != nil {
		return nil, nil, err
	}

	g, err := core.NewSequential(seq, core.WithStepWeight(cfg.StepWeight))
	if err != nil {
		return nil, nil, fmt.Errorf("pdb: build graph: %w", err)
	}

	return g, seq, nil
}

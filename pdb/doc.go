// Package pdb extracts an ordered residue sequence from PDB-format
// structure files and chains it into a sequential energy graph.
//
// What:
//
//   - Chain reads ATOM records, keeps one alpha-carbon (CA) per residue,
//     and returns residue identifiers like "MET1" in backbone order.
//   - Graph wraps Chain and builds the core sequential graph, one
//     directed edge per backbone step with a uniform ΔG.
//   - One chain per call: the first chain encountered by default, or an
//     explicit chain via WithChain. Only the first model of multi-model
//     files is read.
//
// Why:
//
//   - Real backbones: feed crystallographic structures straight into
//     the energy-path engine.
//   - Deterministic adapters: the same file always yields the same
//     sequence, so downstream analyses are reproducible.
//
// Complexity:
//
//   - Chain / Graph: O(L) over input lines, O(R) memory for residues.
//
// Options:
//
//   - WithChain(id): select a specific chain identifier (e.g. "B").
//   - WithStepWeight(w): override the −0.5 per-step ΔG.
//
// Errors:
//
//   - ErrChainNotFound: the requested chain has no CA records.
//   - ErrNoResidues: no usable CA records at all.
//
// Malformed or short ATOM lines are skipped rather than fatal; files in
// the wild bend the fixed-column rules often enough that tolerance is
// the only practical policy.
package pdb

// Package foldpath models protein folding as an energy landscape: discrete
// states (folding intermediates, or residues along a backbone) become nodes
// of a directed graph, free-energy changes (ΔG) become edge weights, and
// "how does this protein fold" becomes a single-source lowest-energy path
// query.
//
// 🧬 What is foldpath?
//
//	A small analysis toolkit that brings together:
//		• Graph model: immutable ΔG-weighted digraphs, explicit or sequential
//		• Energy-path engine: Bellman–Ford with negative-cycle detection,
//		  cycle-edge extraction and best-effort path reconstruction
//		• Structure adapter: PDB backbone → residue chain graph
//		• Presentation: SVG / DOT / ASCII / JSON diagrams with color-coded
//		  edges (red ΔG<0, blue ΔG≥0, black cycle, green path) and text summaries
//		• Persistence: analysis runs stored in PostgreSQL
//		• Serving: an HTTP API and a CLI over all of the above
//
// ✨ Why foldpath?
//
//   - Negative weights welcome – favorable transitions carry ΔG < 0, so the
//     engine is built on Bellman–Ford rather than Dijkstra
//   - Honest about ill-posed questions – a reachable negative-ΔG cycle makes
//     "lowest energy" undefined; foldpath says so and shows the cycle
//   - Deterministic – same input, same distances, same diagram bytes
//
// Under the hood, everything is organized into focused packages:
//
//	core/        — Graph, Edge, construction and validation
//	bellmanford/ — Compute, Result, CycleReport, PathTo
//	pdb/         — CA-residue extraction from PDB structure files
//	render/      — scenes, layouts and the four output backends
//	foldstore/   — the Store contract (+ foldstore/postgres backend)
//	config/      — YAML analysis documents
//	server/      — the Fiber HTTP surface
//	cmd/foldpath — the command-line interface
//
// Quick ASCII example:
//
//	U ──(−2.0)── A ──(−1.5)── B ──(−3.0)── C ──(−2.0)── F
//
//	an unfolded state U descending through intermediates to the folded
//	state F at a cumulative ΔG of −8.5 kcal/mol.
//
//	go get github.com/katalvlaran/foldpath
package foldpath

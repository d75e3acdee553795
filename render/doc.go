// Package render turns a computed ΔG analysis into color-coded diagrams
// and plain-text summaries.
//
// What:
//   - Scene          - positioned nodes plus classified edges, built from a
//     core.Graph and the bellmanford results by NewScene.
//   - LayoutAlgorithm - pluggable node positioning (Initialize/Step/Apply),
//     with ForceDirectedLayout (Fruchterman-Reingold with seeded
//     noise jitter, deterministic) and ChainLayout (left-to-right,
//     for sequential residue chains).
//   - Renderer       - pluggable output backends resolved by GetRenderer:
//     "svg", "dot", "ascii" and "json".
//   - Generate       - one-call pipeline: validate the scene, resolve the
//     renderer, render under a context deadline.
//   - Summary        - the per-node distance table, reconstructed path and
//     negative-cycle advisory as text.
//
// Edge classification (precedence: path > cycle > sign):
//   - path edges     - green, the reconstructed route to the target;
//   - cycle edges    - black, members of a detected negative ΔG cycle;
//   - negative edges - red, ΔG < 0 (energetically favorable);
//   - positive edges - blue, ΔG ≥ 0.
//
// Node coloring: the source is gold, unreachable nodes are gray, nodes on
// the reconstructed path are light green, everything else is the default
// blue.
//
// Errors:
//   - ErrUnsupportedFormat - GetRenderer/Generate got an unknown format;
//   - ErrNilScene          - Generate got a nil *Scene;
//   - ErrEmptyScene        - the scene (or the graph behind it) has no nodes.
//
// Determinism: scenes and every renderer in this package are deterministic
// for a fixed seed; rendering the same analysis twice yields identical
// bytes. Outputs carry no timestamps.
package render

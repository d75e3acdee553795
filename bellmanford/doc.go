// Package bellmanford computes single-source lowest-energy paths over a
// directed ΔG-weighted graph and detects negative cycles that would make
// "lowest energy" undefined.
//
// What:
//
//   - Compute runs Bellman–Ford from one source: up to |V|−1 relaxation
//     rounds over the edge list (early exit when a round changes nothing),
//     then one unconditional probe round for negative-cycle detection.
//   - Result maps every node to its minimum cumulative ΔG from the source
//     (+Inf = unreachable) plus predecessor links; Result.PathTo
//     reconstructs the source→target route as an ordered edge sequence.
//   - CycleReport flags a reachable negative cycle and lists the edges of
//     every cycle that was detected, deduplicated and deterministically
//     ordered.
//
// Why:
//
//   - Energy landscapes are mostly downhill: favorable transitions carry
//     ΔG < 0, which rules out Dijkstra-family methods.
//   - A reachable cycle with negative total ΔG is a physically meaningful
//     outcome (a state pump), not an input error — it is reported
//     alongside the best-effort path, never raised.
//
// Complexity:
//
//   - Time: O(V·E) relaxation, O(V+E) cycle extraction.
//   - Space: O(V) beyond the input graph.
//
// Options:
//
//   - WithContext(ctx): cancellation, checked once per relaxation round.
//   - WithOnRelax(fn): observer invoked on every applied relaxation; a
//     non-nil error from the hook aborts Compute.
//
// Errors:
//
//   - ErrNilGraph: Compute was given a nil graph.
//   - ErrUnknownSource: the source node is not in the graph.
//
// A negative cycle is not an error. Callers that present results to users
// should pair any path obtained under CycleReport.HasCycle with the
// advisory that it is best effort.
package bellmanford

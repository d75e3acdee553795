// Package core defines the directed weighted graph that energy-path
// analysis operates over: folding states as nodes, ΔG transitions as edges.
//
// What:
//
//   - Graph: an immutable-after-construction digraph with float64 edge
//     weights (ΔG, kcal/mol; negative, zero, or positive).
//   - NewGraph builds from an explicit node set and edge list.
//   - NewSequential chains an ordered state sequence with one uniform
//     weight per step (DefaultStepWeight = −0.5).
//   - Accessors enumerate nodes in insertion order and expose lazy,
//     restartable neighbor iteration.
//
// Why:
//
//   - Folding funnels: residue/intermediate chains with per-step ΔG.
//   - Arbitrary energy landscapes: explicit topologies, parallel edges,
//     self-loops (a negative self-loop is a one-edge negative cycle).
//   - Safe concurrent reads: no mutation is possible after construction.
//
// Complexity:
//
//   - Construction: O(V + E) time and memory.
//   - HasNode / NodeCount / EdgeCount: O(1).
//   - Nodes / Edges: O(V) / O(E) (defensive copies).
//   - Neighbors: O(out-degree) per full iteration, zero allocation.
//
// Errors:
//
//   - ErrInvalidEdge: an edge endpoint is absent from the node set.
//   - ErrDuplicateNode: a node identifier appears more than once.
//   - ErrEmptySequence: sequential construction got no nodes.
package core

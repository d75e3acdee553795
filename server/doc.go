// Package server exposes the energy-path analysis as a Fiber HTTP API.
//
// What:
//
//   - POST /analyze            — explicit graph + source: distances,
//     predecessors, cycle report and the reconstructed path as JSON.
//   - POST /analyze/sequential — ordered state sequence with a uniform
//     step ΔG; source defaults to the first element.
//   - POST /render             — diagram bytes (svg, dot, ascii or json)
//     with the matching Content-Type.
//   - GET /runs, GET /runs/:id, DELETE /runs/:id — persisted analyses,
//     backed by a foldstore.Store.
//   - GET /healthz             — liveness.
//
// Status mapping:
//
//   - 400 — body failed to bind.
//   - 422 — structurally valid body, invalid analysis input (unknown
//     source, dangling edge, duplicate node, unsupported format).
//   - 404 — run id does not exist.
//   - 503 — run endpoint hit while New was given a nil store.
//   - 200 — everything else, including analyses with a detected negative
//     cycle: the cycle is an outcome carried by has_cycle/advisory, never
//     an error status.
//
// Unreachable distances serialize as the JSON string "unreachable", since
// +Inf is not a valid JSON number.
package server

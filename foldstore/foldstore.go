// Package foldstore persists analysis runs: the Store contract lives
// here, backends live below (foldstore/postgres).
package foldstore

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/foldpath/bellmanford"
	"github.com/katalvlaran/foldpath/core"
)

var (
	// ErrRunNotFound is returned when a run id does not exist.
	ErrRunNotFound = errors.New("foldstore: run not found")
	// ErrEmptyID rejects lookups and deletes without an id.
	ErrEmptyID = errors.New("foldstore: empty run id")
)

// Edge is one ΔG transition of a stored run.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Run is the persisted snapshot of one analysis.
type Run struct {
	ID        string    `json:"id"`
	Label     string    `json:"label,omitempty"`
	Source    string    `json:"source"`
	Target    string    `json:"target,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	NodeCount int  `json:"node_count"`
	EdgeCount int  `json:"edge_count"`
	HasCycle  bool `json:"has_cycle"`
	// TotalWeight is the ΔG sum along Path, 0 when no path was stored.
	TotalWeight float64 `json:"total_weight"`
	// Distances holds reachable nodes only; an absent key means +∞.
	// Keeping infinities out preserves plain JSON serialization.
	Distances map[string]float64 `json:"distances"`
	// Path is the reconstructed route to Target (possibly best effort
	// under a negative cycle).
	Path []Edge `json:"path,omitempty"`
	// CycleEdges are the detected negative-cycle members.
	CycleEdges []Edge `json:"cycle_edges,omitempty"`
}

// Store defines the contract for persisting and retrieving runs.
type Store interface {
	// SaveRun persists a run, assigning an ID when blank, and returns
	// the stored run.
	SaveRun(ctx context.Context, r *Run) (*Run, error)
	// GetRun fetches one run with its edges.
	// Returns ErrRunNotFound when absent.
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns run summaries (no distances or edges),
	// newest first.
	ListRuns(ctx context.Context) ([]Run, error)
	// DeleteRun removes a run. Returns ErrRunNotFound when absent.
	DeleteRun(ctx context.Context, id string) error
}

// NewRun snapshots one analysis for persistence. Unreachable nodes are
// dropped from Distances (absence means +∞); the route to target, its
// total ΔG and any cycle edges are copied in. Returns nil when g or res
// is nil.
func NewRun(label string, g *core.Graph, res *bellmanford.Result, rep *bellmanford.CycleReport, target string) *Run {
	if g == nil || res == nil {
		return nil
	}
	r := &Run{
		Label:     label,
		Source:    res.Source,
		Target:    target,
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Distances: make(map[string]float64, len(res.Dist)),
	}
	for id, d := range res.Dist {
		if !math.IsInf(d, +1) {
			r.Distances[id] = d
		}
	}
	if rep != nil && rep.HasCycle {
		r.HasCycle = true
		for _, e := range rep.Edges {
			r.CycleEdges = append(r.CycleEdges, Edge{From: e.From, To: e.To, Weight: e.Weight})
		}
	}
	if target != "" {
		for _, e := range res.PathTo(target) {
			r.Path = append(r.Path, Edge{From: e.From, To: e.To, Weight: e.Weight})
			r.TotalWeight += e.Weight
		}
	}
	return r
}

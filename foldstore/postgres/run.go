package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/katalvlaran/foldpath/foldstore"
)

// SaveRun persists a run and its path/cycle edges in one transaction.
// A blank ID gets a fresh UUID, a zero CreatedAt gets the current time,
// and re-saving an existing ID replaces its edges.
func (s *PGStore) SaveRun(ctx context.Context, r *foldstore.Run) (*foldstore.Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	distances, err := json.Marshal(r.Distances)
	if err != nil {
		return nil, fmt.Errorf("foldstore: encode distances: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("foldstore: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO runs (id, label, source, target, node_count, edge_count, has_cycle, total_weight, distances, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   label = EXCLUDED.label, source = EXCLUDED.source,
		   target = EXCLUDED.target, node_count = EXCLUDED.node_count,
		   edge_count = EXCLUDED.edge_count, has_cycle = EXCLUDED.has_cycle,
		   total_weight = EXCLUDED.total_weight,
		   distances = EXCLUDED.distances, created_at = EXCLUDED.created_at`,
		r.ID, r.Label, r.Source, r.Target, r.NodeCount, r.EdgeCount,
		r.HasCycle, r.TotalWeight, distances, r.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("foldstore: insert run: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM run_edges WHERE run_id = $1`, r.ID); err != nil {
		return nil, fmt.Errorf("foldstore: delete edges: %w", err)
	}
	if err := insertEdges(ctx, tx, r.ID, "path", r.Path); err != nil {
		return nil, err
	}
	if err := insertEdges(ctx, tx, r.ID, "cycle", r.CycleEdges); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("foldstore: commit: %w", err)
	}
	return r, nil
}

// insertEdges writes one kind of edge list preserving its order.
func insertEdges(ctx context.Context, tx pgx.Tx, runID, kind string, edges []foldstore.Edge) error {
	for i, e := range edges {
		if _, err := tx.Exec(ctx,
			`INSERT INTO run_edges (id, run_id, kind, seq, from_node, to_node, weight)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), runID, kind, i, e.From, e.To, e.Weight,
		); err != nil {
			return fmt.Errorf("foldstore: insert %s edge %d: %w", kind, i, err)
		}
	}
	return nil
}

// GetRun fetches one run with its path and cycle edges.
// Returns foldstore.ErrRunNotFound when the id does not exist.
func (s *PGStore) GetRun(ctx context.Context, id string) (*foldstore.Run, error) {
	if id == "" {
		return nil, foldstore.ErrEmptyID
	}

	var (
		r       foldstore.Run
		distRaw []byte
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, label, source, target, node_count, edge_count, has_cycle, total_weight, distances, created_at
		 FROM runs WHERE id = $1`, id,
	).Scan(&r.ID, &r.Label, &r.Source, &r.Target, &r.NodeCount, &r.EdgeCount,
		&r.HasCycle, &r.TotalWeight, &distRaw, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, foldstore.ErrRunNotFound
		}
		return nil, fmt.Errorf("foldstore: get run: %w", err)
	}
	if err := json.Unmarshal(distRaw, &r.Distances); err != nil {
		return nil, fmt.Errorf("foldstore: decode distances: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT kind, from_node, to_node, weight FROM run_edges
		 WHERE run_id = $1 ORDER BY kind, seq`, id)
	if err != nil {
		return nil, fmt.Errorf("foldstore: query edges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind string
			e    foldstore.Edge
		)
		if err := rows.Scan(&kind, &e.From, &e.To, &e.Weight); err != nil {
			return nil, fmt.Errorf("foldstore: scan edge: %w", err)
		}
		switch kind {
		case "cycle":
			r.CycleEdges = append(r.CycleEdges, e)
		default:
			r.Path = append(r.Path, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("foldstore: rows edges: %w", err)
	}

	return &r, nil
}

// ListRuns returns run summaries (no distances or edges), newest first.
// Returns an empty slice (not nil) if none exist.
func (s *PGStore) ListRuns(ctx context.Context) ([]foldstore.Run, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, label, source, target, node_count, edge_count, has_cycle, total_weight, created_at
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("foldstore: query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]foldstore.Run, 0)
	for rows.Next() {
		var r foldstore.Run
		if err := rows.Scan(&r.ID, &r.Label, &r.Source, &r.Target, &r.NodeCount,
			&r.EdgeCount, &r.HasCycle, &r.TotalWeight, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("foldstore: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("foldstore: rows runs: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run; its edges cascade away with it.
// Returns foldstore.ErrRunNotFound when the id does not exist.
func (s *PGStore) DeleteRun(ctx context.Context, id string) error {
	if id == "" {
		return foldstore.ErrEmptyID
	}
	ct, err := s.db.Exec(ctx, `DELETE FROM runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("foldstore: delete run: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return foldstore.ErrRunNotFound
	}
	return nil
}

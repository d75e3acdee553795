package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id           TEXT PRIMARY KEY,
    label        TEXT NOT NULL DEFAULT '',
    source       TEXT NOT NULL,
    target       TEXT NOT NULL DEFAULT '',
    node_count   INTEGER NOT NULL,
    edge_count   INTEGER NOT NULL,
    has_cycle    BOOLEAN NOT NULL,
    total_weight DOUBLE PRECISION NOT NULL,
    distances    JSONB NOT NULL DEFAULT '{}',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS run_edges (
    id        TEXT PRIMARY KEY,
    run_id    TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    kind      TEXT NOT NULL,
    seq       INTEGER NOT NULL,
    from_node TEXT NOT NULL,
    to_node   TEXT NOT NULL,
    weight    DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_edges_run_id ON run_edges(run_id);
CREATE INDEX IF NOT EXISTS idx_runs_created_at  ON runs(created_at);
`

// EnsureSchema creates the runs and run_edges tables if they don't exist.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the run_edges and runs tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS run_edges, runs CASCADE;`)
	return err
}

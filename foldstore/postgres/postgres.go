// Package postgres implements foldstore.Store on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements foldstore.Store using PostgreSQL via pgx.
type PGStore struct {
	db *pgxpool.Pool
}

// New opens a connection pool for dsn and verifies it with a ping.
func New(ctx context.Context, dsn string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("foldstore: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("foldstore: ping: %w", err)
	}
	return &PGStore{db: pool}, nil
}

// NewWithPool wraps an existing pool; the caller keeps ownership.
func NewWithPool(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// Close releases the pool.
func (s *PGStore) Close() {
	s.db.Close()
}

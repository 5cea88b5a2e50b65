// Package db provides PostgreSQL storage for cross-reference runs and their overlaps.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the cross-reference tables when they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS crossref_runs (
			id UUID PRIMARY KEY,
			year_start INT NOT NULL,
			year_end INT NOT NULL,
			fuzzy_used BOOLEAN NOT NULL DEFAULT FALSE,
			coach_count INT NOT NULL DEFAULT 0,
			coaches_with_overlap INT NOT NULL DEFAULT 0,
			overlap_count INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'running',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS crossref_overlaps (
			id BIGSERIAL PRIMARY KEY,
			run_id UUID NOT NULL REFERENCES crossref_runs(id) ON DELETE CASCADE,
			coach_name TEXT NOT NULL,
			school TEXT NOT NULL,
			school_original TEXT NOT NULL,
			academic_year TEXT NOT NULL,
			coach_position TEXT NOT NULL,
			match_type TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_crossref_overlaps_run ON crossref_overlaps(run_id)`,
	}

	for _, stmt := range ddl {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

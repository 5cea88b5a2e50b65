package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/coach-crossref/internal/types"
)

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run is one stored cross-reference pass.
type Run struct {
	ID                 uuid.UUID
	YearStart          int
	YearEnd            int
	FuzzyUsed          bool
	CoachCount         int
	CoachesWithOverlap int
	OverlapCount       int
	Status             string
	CreatedAt          time.Time
	CompletedAt        *time.Time
}

// CreateRun inserts a new cross-reference run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, yearStart, yearEnd int, fuzzyUsed bool) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO crossref_runs (id, year_start, year_end, fuzzy_used, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, yearStart, yearEnd, fuzzyUsed, RunStatusRunning,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// SaveResults stores every overlap of a batch under the given run and
// updates the run's counters.
func (db *DB) SaveResults(ctx context.Context, runID uuid.UUID, results []types.CrossReferenceResult) error {
	coachesWithOverlap := 0
	overlapCount := 0

	for _, result := range results {
		if result.HasOverlap {
			coachesWithOverlap++
		}
		for _, overlap := range result.Overlaps {
			overlapCount++
			_, err := db.pool.Exec(ctx,
				`INSERT INTO crossref_overlaps
				 (run_id, coach_name, school, school_original, academic_year, coach_position, match_type)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				runID, result.CoachName, overlap.School, overlap.SchoolOriginal,
				overlap.AcademicYear, overlap.CoachPosition, string(overlap.MatchType),
			)
			if err != nil {
				return fmt.Errorf("failed to save overlap: %w", err)
			}
		}
	}

	_, err := db.pool.Exec(ctx,
		`UPDATE crossref_runs
		 SET coach_count = $1, coaches_with_overlap = $2, overlap_count = $3
		 WHERE id = $4`,
		len(results), coachesWithOverlap, overlapCount, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to update run counters: %w", err)
	}
	return nil
}

// CompleteRun marks a cross-reference run as completed or failed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE crossref_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// LatestRun returns the most recent completed run, or nil when none exists.
func (db *DB) LatestRun(ctx context.Context) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, year_start, year_end, fuzzy_used, coach_count, coaches_with_overlap,
		        overlap_count, status, created_at, completed_at
		 FROM crossref_runs
		 WHERE status = $1
		 ORDER BY completed_at DESC LIMIT 1`,
		RunStatusCompleted,
	).Scan(&run.ID, &run.YearStart, &run.YearEnd, &run.FuzzyUsed, &run.CoachCount,
		&run.CoachesWithOverlap, &run.OverlapCount, &run.Status, &run.CreatedAt,
		&run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return &run, nil
}

// RunOverlaps returns the stored overlaps of one run in insertion order.
func (db *DB) RunOverlaps(ctx context.Context, runID uuid.UUID) ([]types.OverlapRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT school, school_original, academic_year, coach_position, match_type
		 FROM crossref_overlaps WHERE run_id = $1 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlaps: %w", err)
	}
	defer rows.Close()

	var overlaps []types.OverlapRecord
	for rows.Next() {
		var o types.OverlapRecord
		var matchType string
		if err := rows.Scan(&o.School, &o.SchoolOriginal, &o.AcademicYear, &o.CoachPosition, &matchType); err != nil {
			return nil, fmt.Errorf("failed to scan overlap: %w", err)
		}
		o.MatchType = types.MatchType(matchType)
		overlaps = append(overlaps, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overlaps: %w", err)
	}
	return overlaps, nil
}

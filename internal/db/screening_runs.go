package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateScreeningRun records an applied screening pass together with the
// prior-status snapshot of every affected candidate.
func (db *DB) CreateScreeningRun(ctx context.Context, run *ScreeningRun) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO screening_runs (job_id, config, snapshot, approved_count, rejected_count)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		run.JobID, run.Config, run.Snapshot, run.ApprovedCount, run.RejectedCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create screening run: %w", err)
	}
	return id, nil
}

// GetLatestScreeningRun retrieves the most recent non-undone screening run
// for a job, or nil if none exists.
func (db *DB) GetLatestScreeningRun(ctx context.Context, jobID uuid.UUID) (*ScreeningRun, error) {
	var run ScreeningRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, config, snapshot, approved_count, rejected_count, created_at, undone_at
		 FROM screening_runs
		 WHERE job_id = $1 AND undone_at IS NULL
		 ORDER BY created_at DESC LIMIT 1`,
		jobID,
	).Scan(&run.ID, &run.JobID, &run.Config, &run.Snapshot,
		&run.ApprovedCount, &run.RejectedCount, &run.CreatedAt, &run.UndoneAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get screening run: %w", err)
	}
	return &run, nil
}

// MarkScreeningRunUndone stamps a screening run as reverted
func (db *DB) MarkScreeningRunUndone(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE screening_runs SET undone_at = NOW() WHERE id = $1 AND undone_at IS NULL`,
		runID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark screening run undone: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening run not found or already undone: %s", runID)
	}
	return nil
}

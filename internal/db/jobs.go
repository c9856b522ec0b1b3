package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, department, location, description,
	responsibilities, benefits, requirements, sources, status, created_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Description,
		&j.Responsibilities, &j.Benefits, &j.Requirements, &j.Sources, &j.Status, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// CreateJob creates a new job posting and returns its ID
func (db *DB) CreateJob(ctx context.Context, job *Job) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, department, location, description,
		     responsibilities, benefits, requirements, sources, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		job.Title, job.Department, job.Location, job.Description,
		job.Responsibilities, job.Benefits, job.Requirements, job.Sources, JobStatusActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job by ID, or nil if not found
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*Job, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs retrieves jobs filtered by status ("" for all)
func (db *DB) ListJobs(ctx context.Context, status string) ([]Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// UpdateJob updates every editable field of a job posting
func (db *DB) UpdateJob(ctx context.Context, job *Job) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET title = $1, department = $2, location = $3, description = $4,
		     responsibilities = $5, benefits = $6, requirements = $7, sources = $8
		 WHERE id = $9`,
		job.Title, job.Department, job.Location, job.Description,
		job.Responsibilities, job.Benefits, job.Requirements, job.Sources, job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", job.ID)
	}
	return nil
}

// SetJobStatus archives or restores a job (soft delete)
func (db *DB) SetJobStatus(ctx context.Context, jobID uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = $1 WHERE id = $2`, status, jobID)
	if err != nil {
		return fmt.Errorf("failed to set job status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}

// DeleteJob permanently removes a job. Only archived jobs may be deleted.
func (db *DB) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND status = $2`, jobID, JobStatusArchived)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("archived job not found: %s", jobID)
	}
	return nil
}

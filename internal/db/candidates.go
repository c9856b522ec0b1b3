package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, name, age, marital_status, location, experience,
	education, skills, summary, job_id, fit_score, status, application_date,
	source, is_archived, resume, interview, hire_date, ai_analysis, created_at`

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	err := row.Scan(&c.ID, &c.Name, &c.Age, &c.MaritalStatus, &c.Location, &c.Experience,
		&c.Education, &c.Skills, &c.Summary, &c.JobID, &c.FitScore, &c.Status, &c.ApplicationDate,
		&c.Source, &c.IsArchived, &c.Resume, &c.Interview, &c.HireDate, &c.AIAnalysis, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCandidate inserts a new candidate and returns its ID
func (db *DB) CreateCandidate(ctx context.Context, c *Candidate) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, age, marital_status, location, experience,
		     education, skills, summary, job_id, fit_score, status, application_date,
		     source, resume)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		c.Name, c.Age, c.MaritalStatus, c.Location, c.Experience,
		c.Education, c.Skills, c.Summary, c.JobID, c.FitScore, c.Status, &c.ApplicationDate,
		c.Source, c.Resume,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID, or nil if not found
func (db *DB) GetCandidate(ctx context.Context, candidateID uuid.UUID) (*Candidate, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, candidateID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// CandidateFilters holds optional filters for listing candidates
type CandidateFilters struct {
	JobID           *uuid.UUID
	Status          string
	IncludeArchived bool
}

// ListCandidates retrieves candidates with optional filters
func (db *DB) ListCandidates(ctx context.Context, filters CandidateFilters) ([]Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.JobID != nil {
		query += fmt.Sprintf(" AND job_id = $%d", argNum)
		args = append(args, *filters.JobID)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if !filters.IncludeArchived {
		query += " AND is_archived = FALSE"
	}

	query += " ORDER BY application_date DESC, created_at DESC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, nil
}

// UpdateCandidate updates every editable field of a candidate
func (db *DB) UpdateCandidate(ctx context.Context, c *Candidate) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET name = $1, age = $2, marital_status = $3, location = $4,
		     experience = $5, education = $6, skills = $7, summary = $8, job_id = $9,
		     fit_score = $10, status = $11, source = $12, resume = $13, hire_date = $14
		 WHERE id = $15`,
		c.Name, c.Age, c.MaritalStatus, c.Location,
		c.Experience, c.Education, c.Skills, c.Summary, c.JobID,
		c.FitScore, c.Status, c.Source, c.Resume, c.HireDate, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", c.ID)
	}
	return nil
}

// UpdateCandidateStatus sets the status and hire date in one statement,
// preserving the invariant that hire_date is set only while hired.
func (db *DB) UpdateCandidateStatus(ctx context.Context, candidateID uuid.UUID, status string, hireDate *Date) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET status = $1, hire_date = $2 WHERE id = $3`,
		status, hireDate, candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	return nil
}

// BulkUpdateCandidateStatuses applies a batch of status changes in a single
// transaction so consumers never observe a partially applied screening pass.
// Hire dates are cleared for every affected candidate since none of the bulk
// flows transition into hired.
func (db *DB) BulkUpdateCandidateStatuses(ctx context.Context, statuses map[uuid.UUID]string) error {
	if len(statuses) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for candidateID, status := range statuses {
		if _, err := tx.Exec(ctx,
			`UPDATE candidates SET status = $1, hire_date = NULL WHERE id = $2`,
			status, candidateID,
		); err != nil {
			return fmt.Errorf("failed to update candidate %s: %w", candidateID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bulk status update: %w", err)
	}
	return nil
}

// SetCandidateInterview schedules or replaces the candidate's interview.
// A nil interview cancels any existing one.
func (db *DB) SetCandidateInterview(ctx context.Context, candidateID uuid.UUID, interview *Interview) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET interview = $1 WHERE id = $2`,
		interview, candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to set candidate interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	return nil
}

// SetCandidateAnalysis caches an AI analysis result on the candidate row
// and refreshes the baseline fit score from it.
func (db *DB) SetCandidateAnalysis(ctx context.Context, candidateID uuid.UUID, analysis *AIAnalysis) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET ai_analysis = $1, fit_score = $2 WHERE id = $3`,
		analysis, analysis.FitScore, candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to set candidate analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	return nil
}

// SetCandidateArchived archives or restores a candidate (soft delete)
func (db *DB) SetCandidateArchived(ctx context.Context, candidateID uuid.UUID, archived bool) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET is_archived = $1 WHERE id = $2`, archived, candidateID)
	if err != nil {
		return fmt.Errorf("failed to set candidate archived: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	return nil
}

// DeleteCandidate permanently removes a candidate. Only archived candidates
// may be deleted.
func (db *DB) DeleteCandidate(ctx context.Context, candidateID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM candidates WHERE id = $1 AND is_archived = TRUE`, candidateID)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("archived candidate not found: %s", candidateID)
	}
	return nil
}

// ListBookedInterviews returns the interview of every non-archived candidate
// that has one scheduled.
func (db *DB) ListBookedInterviews(ctx context.Context) ([]Interview, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT interview FROM candidates
		 WHERE interview IS NOT NULL AND is_archived = FALSE`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list booked interviews: %w", err)
	}
	defer rows.Close()

	var interviews []Interview
	for rows.Next() {
		var iv Interview
		if err := rows.Scan(&iv); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	return interviews, nil
}

package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const talentColumns = `id, original_candidate_id, name, age, city, education,
	experience, skills, potential, status, desired_position, rejection_reason,
	is_archived, created_at`

func scanTalent(row pgx.Row) (*Talent, error) {
	var t Talent
	err := row.Scan(&t.ID, &t.OriginalCandidateID, &t.Name, &t.Age, &t.City, &t.Education,
		&t.Experience, &t.Skills, &t.Potential, &t.Status, &t.DesiredPosition, &t.RejectionReason,
		&t.IsArchived, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTalent inserts a new talent-pool entry and returns its ID
func (db *DB) CreateTalent(ctx context.Context, t *Talent) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO talents (original_candidate_id, name, age, city, education,
		     experience, skills, potential, status, desired_position, rejection_reason)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		t.OriginalCandidateID, t.Name, t.Age, t.City, t.Education,
		t.Experience, t.Skills, t.Potential, t.Status, t.DesiredPosition, t.RejectionReason,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create talent: %w", err)
	}
	return id, nil
}

// TalentExistsForCandidate reports whether the pool already holds an entry
// originating from the given candidate.
func (db *DB) TalentExistsForCandidate(ctx context.Context, candidateID uuid.UUID) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM talents WHERE original_candidate_id = $1)`,
		candidateID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check talent existence: %w", err)
	}
	return exists, nil
}

// GetTalent retrieves a talent by ID, or nil if not found
func (db *DB) GetTalent(ctx context.Context, talentID uuid.UUID) (*Talent, error) {
	t, err := scanTalent(db.pool.QueryRow(ctx,
		`SELECT `+talentColumns+` FROM talents WHERE id = $1`, talentID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get talent: %w", err)
	}
	return t, nil
}

// ListTalents retrieves talents, optionally including archived entries
func (db *DB) ListTalents(ctx context.Context, includeArchived bool) ([]Talent, error) {
	query := `SELECT ` + talentColumns + ` FROM talents`
	if !includeArchived {
		query += ` WHERE is_archived = FALSE`
	}
	query += ` ORDER BY potential DESC, created_at DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	defer rows.Close()

	var talents []Talent
	for rows.Next() {
		t, err := scanTalent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan talent: %w", err)
		}
		talents = append(talents, *t)
	}
	return talents, nil
}

// UpdateTalent updates every editable field of a talent entry
func (db *DB) UpdateTalent(ctx context.Context, t *Talent) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE talents SET name = $1, age = $2, city = $3, education = $4,
		     experience = $5, skills = $6, potential = $7, status = $8,
		     desired_position = $9, rejection_reason = $10
		 WHERE id = $11`,
		t.Name, t.Age, t.City, t.Education,
		t.Experience, t.Skills, t.Potential, t.Status,
		t.DesiredPosition, t.RejectionReason, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update talent: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("talent not found: %s", t.ID)
	}
	return nil
}

// SetTalentArchived archives or restores a talent entry (soft delete)
func (db *DB) SetTalentArchived(ctx context.Context, talentID uuid.UUID, archived bool) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE talents SET is_archived = $1 WHERE id = $2`, archived, talentID)
	if err != nil {
		return fmt.Errorf("failed to set talent archived: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("talent not found: %s", talentID)
	}
	return nil
}

// DeleteTalent permanently removes a talent. Only archived talents may be
// deleted.
func (db *DB) DeleteTalent(ctx context.Context, talentID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM talents WHERE id = $1 AND is_archived = TRUE`, talentID)
	if err != nil {
		return fmt.Errorf("failed to delete talent: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("archived talent not found: %s", talentID)
	}
	return nil
}

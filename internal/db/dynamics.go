package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const dynamicColumns = `id, title, script, date, participants, groups,
	general_notes, status, created_at`

func scanDynamic(row pgx.Row) (*Dynamic, error) {
	var d Dynamic
	err := row.Scan(&d.ID, &d.Title, &d.Script, &d.Date, &d.Participants, &d.Groups,
		&d.GeneralNotes, &d.Status, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDynamic inserts a new group-dynamics session and returns its ID
func (db *DB) CreateDynamic(ctx context.Context, d *Dynamic) (uuid.UUID, error) {
	status := d.Status
	if status == "" {
		status = DynamicStatusScheduled
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO dynamics (title, script, date, participants, groups, general_notes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		d.Title, d.Script, &d.Date, d.Participants, d.Groups, d.GeneralNotes, status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create dynamic: %w", err)
	}
	return id, nil
}

// GetDynamic retrieves a dynamics session by ID, or nil if not found
func (db *DB) GetDynamic(ctx context.Context, dynamicID uuid.UUID) (*Dynamic, error) {
	d, err := scanDynamic(db.pool.QueryRow(ctx,
		`SELECT `+dynamicColumns+` FROM dynamics WHERE id = $1`, dynamicID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dynamic: %w", err)
	}
	return d, nil
}

// ListDynamics retrieves all dynamics sessions, most recent first
func (db *DB) ListDynamics(ctx context.Context) ([]Dynamic, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+dynamicColumns+` FROM dynamics ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list dynamics: %w", err)
	}
	defer rows.Close()

	var dynamics []Dynamic
	for rows.Next() {
		d, err := scanDynamic(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dynamic: %w", err)
		}
		dynamics = append(dynamics, *d)
	}
	return dynamics, nil
}

// UpdateDynamic updates every editable field of a dynamics session
func (db *DB) UpdateDynamic(ctx context.Context, d *Dynamic) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE dynamics SET title = $1, script = $2, date = $3, participants = $4,
		     groups = $5, general_notes = $6, status = $7
		 WHERE id = $8`,
		d.Title, d.Script, &d.Date, d.Participants, d.Groups, d.GeneralNotes, d.Status, d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dynamic: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("dynamic not found: %s", d.ID)
	}
	return nil
}

// DeleteDynamic permanently removes a dynamics session
func (db *DB) DeleteDynamic(ctx context.Context, dynamicID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM dynamics WHERE id = $1`, dynamicID)
	if err != nil {
		return fmt.Errorf("failed to delete dynamic: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("dynamic not found: %s", dynamicID)
	}
	return nil
}

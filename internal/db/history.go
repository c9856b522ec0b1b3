package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RecordHistory appends an audit event. History is append-only; there is no
// update or delete path.
func (db *DB) RecordHistory(ctx context.Context, userID uuid.UUID, username, action, details string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO history_events (user_id, username, action, details)
		 VALUES ($1, $2, $3, $4)`,
		userID, username, action, details,
	)
	if err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// HistoryFilters holds optional filters for listing history events
type HistoryFilters struct {
	Action string
	UserID *uuid.UUID
	Limit  int
}

// ListHistory retrieves audit events, most recent first
func (db *DB) ListHistory(ctx context.Context, filters HistoryFilters) ([]HistoryEvent, error) {
	if filters.Limit == 0 {
		filters.Limit = 200
	}

	query := `SELECT id, timestamp, user_id, username, action, details
		FROM history_events WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Action != "" {
		query += fmt.Sprintf(" AND action = $%d", argNum)
		args = append(args, filters.Action)
		argNum++
	}
	if filters.UserID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, *filters.UserID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var events []HistoryEvent
	for rows.Next() {
		var e HistoryEvent
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.UserID, &e.Username, &e.Action, &e.Details); err != nil {
			return nil, fmt.Errorf("failed to scan history event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

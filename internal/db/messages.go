package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const messageColumns = `id, sender_id, receiver_id, text, timestamp, is_read, is_deleted`

func scanMessage(row pgx.Row) (*Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Text, &m.Timestamp, &m.IsRead, &m.IsDeleted)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMessage inserts a new message and returns the stored record
func (db *DB) CreateMessage(ctx context.Context, senderID, receiverID, text string) (*Message, error) {
	m, err := scanMessage(db.pool.QueryRow(ctx,
		`INSERT INTO messages (sender_id, receiver_id, text)
		 VALUES ($1, $2, $3)
		 RETURNING `+messageColumns,
		senderID, receiverID, text,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return m, nil
}

// GetMessage retrieves a message by ID, or nil if not found
func (db *DB) GetMessage(ctx context.Context, messageID uuid.UUID) (*Message, error) {
	m, err := scanMessage(db.pool.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, messageID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return m, nil
}

// ListMessagesByParticipant retrieves every non-deleted message a participant
// sent or received, oldest first.
func (db *DB) ListMessagesByParticipant(ctx context.Context, ref string) ([]Message, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+messageColumns+` FROM messages
		 WHERE (sender_id = $1 OR receiver_id = $1) AND is_deleted = FALSE
		 ORDER BY timestamp ASC`,
		ref,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, nil
}

// ListConversation retrieves the non-deleted messages between two
// participants, oldest first.
func (db *DB) ListConversation(ctx context.Context, refA, refB string) ([]Message, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+messageColumns+` FROM messages
		 WHERE ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		   AND is_deleted = FALSE
		 ORDER BY timestamp ASC`,
		refA, refB,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, nil
}

// UpdateMessage edits a message's text or soft-deletes it
func (db *DB) UpdateMessage(ctx context.Context, messageID uuid.UUID, text string, isDeleted bool) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE messages SET text = $1, is_deleted = $2 WHERE id = $3`,
		text, isDeleted, messageID,
	)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("message not found: %s", messageID)
	}
	return nil
}

// MarkConversationRead marks every message sent to reader by sender as read
func (db *DB) MarkConversationRead(ctx context.Context, readerRef, senderRef string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE messages SET is_read = TRUE
		 WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE`,
		readerRef, senderRef,
	)
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}

// SoftDeleteConversation hides every message between two participants
func (db *DB) SoftDeleteConversation(ctx context.Context, refA, refB string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE messages SET is_deleted = TRUE
		 WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)`,
		refA, refB,
	)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}

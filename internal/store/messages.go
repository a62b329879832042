package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jlcruzar/siklo/internal/model"
)

// messageColumns selects a message with both party names joined in.
// Outer joins: a message survives either party being absent.
const messageColumns = `
	SELECT messages.id, messages.from_id, messages.to_id, messages.text, messages.created_at,
	       fu.name AS from_name, tu.name AS to_name
	FROM messages
	LEFT JOIN users fu ON messages.from_id = fu.id
	LEFT JOIN users tu ON messages.to_id = tu.id`

// CreateMessage creates a message and returns the fresh row including
// the server-assigned timestamp. Either end may be nil.
func CreateMessage(ctx context.Context, db *sql.DB, fromID, toID *string, text string) (*model.Message, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO messages (id, from_id, to_id, text) VALUES (?, ?, ?, ?)`,
		id, fromID, toID, text,
	)
	if err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	return GetMessage(ctx, db, id)
}

// GetMessage returns a message by ID with party names, or nil if absent.
func GetMessage(ctx context.Context, db *sql.DB, id string) (*model.Message, error) {
	m := &model.Message{}
	err := db.QueryRowContext(ctx, messageColumns+` WHERE messages.id = ?`, id).
		Scan(&m.ID, &m.FromID, &m.ToID, &m.Text, &m.CreatedAt, &m.FromName, &m.ToName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}
	return m, nil
}

// ListMessages returns messages oldest-first for conversation views.
// When userID is non-empty only messages sent or received by that user
// are returned.
func ListMessages(ctx context.Context, db *sql.DB, userID string) ([]model.Message, error) {
	var rows *sql.Rows
	var err error

	if userID != "" {
		rows, err = db.QueryContext(ctx,
			messageColumns+` WHERE messages.from_id = ? OR messages.to_id = ?
			 ORDER BY messages.created_at ASC`, userID, userID,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			messageColumns+` ORDER BY messages.created_at ASC`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.FromID, &m.ToID, &m.Text, &m.CreatedAt, &m.FromName, &m.ToName); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

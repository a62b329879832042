package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jlcruzar/siklo/internal/model"
)

// CreateRequest creates a pickup request and returns it. An empty type
// defaults to Collection; status always starts as Pending.
func CreateRequest(ctx context.Context, db *sql.DB, userID *string, reqType, items, address, date string) (*model.Request, error) {
	if reqType == "" {
		reqType = model.RequestTypeCollection
	}

	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO requests (id, user_id, type, items, address, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, userID, reqType, items, address, date,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return GetRequest(ctx, db, id)
}

// GetRequest returns a request by ID, or nil if absent.
func GetRequest(ctx context.Context, db *sql.DB, id string) (*model.Request, error) {
	req := &model.Request{}
	err := db.QueryRowContext(ctx,
		`SELECT id, user_id, type, items, status, date, address, created_at
		 FROM requests WHERE id = ?`, id,
	).Scan(&req.ID, &req.UserID, &req.Type, &req.Items, &req.Status, &req.Date, &req.Address, &req.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting request: %w", err)
	}
	return req, nil
}

// ListRequests returns all pickup requests, optionally filtered to a
// single user's requests when userID is non-empty.
func ListRequests(ctx context.Context, db *sql.DB, userID string) ([]model.Request, error) {
	var rows *sql.Rows
	var err error

	if userID != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT id, user_id, type, items, status, date, address, created_at
			 FROM requests WHERE user_id = ?`, userID,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, user_id, type, items, status, date, address, created_at
			 FROM requests`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	defer rows.Close()

	var requests []model.Request
	for rows.Next() {
		var req model.Request
		if err := rows.Scan(&req.ID, &req.UserID, &req.Type, &req.Items, &req.Status,
			&req.Date, &req.Address, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

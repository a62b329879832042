package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jlcruzar/siklo/internal/model"
)

// CreateUser creates a new account and returns it.
func CreateUser(ctx context.Context, db *sql.DB, userType, name, email, phone, address, passwordHash string) (*model.User, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, user_type, name, email, phone, address, password_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, userType, name, email, phone, address, passwordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID, or nil if absent.
func GetUser(ctx context.Context, db *sql.DB, id string) (*model.User, error) {
	u := &model.User{}
	err := db.QueryRowContext(ctx,
		`SELECT id, user_type, name, email, phone, address, password_hash, created_at
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.UserType, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by email, or nil if absent.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	u := &model.User{}
	err := db.QueryRowContext(ctx,
		`SELECT id, user_type, name, email, phone, address, password_hash, created_at
		 FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.UserType, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}

// GetUserByIdentifier returns a user whose email or phone matches the
// given login identifier, or nil if absent.
func GetUserByIdentifier(ctx context.Context, db *sql.DB, identifier string) (*model.User, error) {
	u := &model.User{}
	err := db.QueryRowContext(ctx,
		`SELECT id, user_type, name, email, phone, address, password_hash, created_at
		 FROM users WHERE email = ? OR phone = ?`, identifier, identifier,
	).Scan(&u.ID, &u.UserType, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by identifier: %w", err)
	}
	return u, nil
}

// UpdateUserProfile updates a user's name, phone and address.
func UpdateUserProfile(ctx context.Context, db *sql.DB, id, name, phone, address string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET name = ?, phone = ?, address = ? WHERE id = ?`,
		name, phone, address, id,
	)
	if err != nil {
		return fmt.Errorf("updating user profile: %w", err)
	}
	return nil
}

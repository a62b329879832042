package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. References between tables are
// deliberately not declared as foreign keys: seller_id, user_id, from_id
// and to_id are weak references, and rows must stay readable when the
// referenced user is absent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    user_type     TEXT NOT NULL,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    phone         TEXT NOT NULL DEFAULT '',
    address       TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price       TEXT NOT NULL DEFAULT '',
    seller_id   TEXT,
    category    TEXT NOT NULL DEFAULT '',
    image_path  TEXT,
    thumb_path  TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS requests (
    id         TEXT PRIMARY KEY,
    user_id    TEXT,
    type       TEXT NOT NULL DEFAULT 'Collection',
    items      TEXT NOT NULL DEFAULT '',
    status     TEXT NOT NULL DEFAULT 'Pending',
    date       TEXT NOT NULL DEFAULT '',
    address    TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS messages (
    id         TEXT PRIMARY KEY,
    from_id    TEXT,
    to_id      TEXT,
    text       TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS rates (
    id       INTEGER PRIMARY KEY,
    material TEXT NOT NULL,
    price    TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

package db

import "testing"

func TestNewTestDBSchemaOnFreshConnections(t *testing.T) {
	database := NewTestDB(t)

	// Retire every connection after use so each statement runs on a
	// freshly opened one. The schema must still be there.
	database.SetMaxIdleConns(0)

	if _, err := database.Exec(`INSERT INTO items (id, title) VALUES ('i1', 'Bottles')`); err != nil {
		t.Fatalf("insert on fresh connection: %v", err)
	}

	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		t.Fatalf("query on fresh connection: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 item, got %d", n)
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	database := NewTestDB(t)

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("re-running EnsureSchema: %v", err)
	}
}

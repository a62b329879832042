package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jlcruzar/siklo/internal/db"
	"github.com/jlcruzar/siklo/internal/model"
)

// setCreatedAt pins a row's timestamp so ordering tests don't depend on
// CURRENT_TIMESTAMP's one-second resolution.
func setCreatedAt(t *testing.T, database *sql.DB, table, id, ts string) {
	t.Helper()
	if _, err := database.Exec("UPDATE "+table+" SET created_at = ? WHERE id = ?", ts, id); err != nil {
		t.Fatalf("setting created_at: %v", err)
	}
}

func TestCreateMessage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	from, _ := CreateUser(ctx, database, model.UserTypeHousehold, "Ana", "ana@example.com", "", "", "h")
	to, _ := CreateUser(ctx, database, model.UserTypeJunkshop, "GreenCycle", "g@example.com", "", "", "h")

	msg, err := CreateMessage(ctx, database, &from.ID, &to.ID, "Are you buying PET bottles?")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected server-assigned timestamp on fresh row")
	}
	if msg.FromName == nil || *msg.FromName != "Ana" {
		t.Errorf("expected joined from_name 'Ana', got %v", msg.FromName)
	}
	if msg.ToName == nil || *msg.ToName != "GreenCycle" {
		t.Errorf("expected joined to_name 'GreenCycle', got %v", msg.ToName)
	}
}

func TestCreateMessageNullParties(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	msg, err := CreateMessage(ctx, database, nil, nil, "hello?")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if msg.FromID != nil || msg.ToID != nil {
		t.Error("expected nil parties")
	}
	if msg.FromName != nil || msg.ToName != nil {
		t.Error("expected nil party names")
	}
}

func TestListMessagesFilterAndOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ana, _ := CreateUser(ctx, database, model.UserTypeHousehold, "Ana", "ana@example.com", "", "", "h")
	shop, _ := CreateUser(ctx, database, model.UserTypeJunkshop, "Shop", "s@example.com", "", "", "h")
	other, _ := CreateUser(ctx, database, model.UserTypeHousehold, "Ben", "ben@example.com", "", "", "h")

	m1, _ := CreateMessage(ctx, database, &ana.ID, &shop.ID, "first")
	m2, _ := CreateMessage(ctx, database, &shop.ID, &ana.ID, "second")
	CreateMessage(ctx, database, &other.ID, &shop.ID, "unrelated")

	setCreatedAt(t, database, "messages", m1.ID, "2024-01-01 10:00:00")
	setCreatedAt(t, database, "messages", m2.ID, "2024-01-01 11:00:00")

	msgs, err := ListMessages(ctx, database, ana.ID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages for Ana, got %d", len(msgs))
	}
	for _, m := range msgs {
		fromAna := m.FromID != nil && *m.FromID == ana.ID
		toAna := m.ToID != nil && *m.ToID == ana.ID
		if !fromAna && !toAna {
			t.Errorf("message %s does not involve the filtered user", m.ID)
		}
	}

	// Oldest first.
	if msgs[0].Text != "first" || msgs[1].Text != "second" {
		t.Errorf("expected ascending order, got [%s, %s]", msgs[0].Text, msgs[1].Text)
	}
	if msgs[0].CreatedAt.After(msgs[1].CreatedAt) {
		t.Error("expected created_at ascending")
	}
}

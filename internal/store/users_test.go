package store

import (
	"context"
	"testing"

	"github.com/jlcruzar/siklo/internal/db"
	"github.com/jlcruzar/siklo/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, model.UserTypeHousehold, "Ana Santos", "ana@example.com", "+63 9123456789", "Session Road, Baguio", "hash123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}
	if user.UserType != model.UserTypeHousehold {
		t.Errorf("expected user_type 'household', got %q", user.UserType)
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "ana@example.com" {
		t.Errorf("expected email 'ana@example.com', got %q", got.Email)
	}
	if got.PasswordHash != "hash123" {
		t.Errorf("expected stored password hash, got %q", got.PasswordHash)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, model.UserTypeHousehold, "A", "dup@example.com", "", "", "h"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := CreateUser(ctx, database, model.UserTypeJunkshop, "B", "dup@example.com", "", "", "h"); err == nil {
		t.Error("expected unique constraint error for duplicate email")
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, model.UserTypeJunkshop, "GreenCycle", "green@example.com", "", "", "h")

	user, err := GetUserByEmail(ctx, database, "green@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}

	missing, err := GetUserByEmail(ctx, database, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}
}

func TestGetUserByIdentifier(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, model.UserTypeHousehold, "Ana", "ana@example.com", "+63 911", "", "h")

	byEmail, err := GetUserByIdentifier(ctx, database, "ana@example.com")
	if err != nil {
		t.Fatalf("GetUserByIdentifier(email): %v", err)
	}
	if byEmail == nil || byEmail.Name != "Ana" {
		t.Errorf("expected Ana by email, got %+v", byEmail)
	}

	byPhone, err := GetUserByIdentifier(ctx, database, "+63 911")
	if err != nil {
		t.Fatalf("GetUserByIdentifier(phone): %v", err)
	}
	if byPhone == nil || byPhone.Name != "Ana" {
		t.Errorf("expected Ana by phone, got %+v", byPhone)
	}

	missing, err := GetUserByIdentifier(ctx, database, "unknown")
	if err != nil {
		t.Fatalf("GetUserByIdentifier(unknown): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown identifier")
	}
}

func TestUpdateUserProfile(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, model.UserTypeHousehold, "Old Name", "u@example.com", "", "", "h")

	if err := UpdateUserProfile(ctx, database, user.ID, "New Name", "+63 900", "New Addr"); err != nil {
		t.Fatalf("UpdateUserProfile: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.Name != "New Name" || got.Phone != "+63 900" || got.Address != "New Addr" {
		t.Errorf("profile not updated: %+v", got)
	}
	if got.Email != "u@example.com" {
		t.Errorf("email must not change on profile update, got %q", got.Email)
	}
}

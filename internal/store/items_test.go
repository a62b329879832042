package store

import (
	"context"
	"testing"

	"github.com/jlcruzar/siklo/internal/db"
	"github.com/jlcruzar/siklo/internal/model"
)

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	seller, _ := CreateUser(ctx, database, model.UserTypeJunkshop, "GreenCycle", "g@example.com", "", "", "h")

	item, err := CreateItem(ctx, database, "Plastic Bottles (50pcs)", "Clean PET bottles", "₱150", &seller.ID, "Plastic", nil, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated item id")
	}
	if item.ImagePath != nil || item.ThumbPath != nil {
		t.Error("expected nil image paths for item without image")
	}
	if item.SellerName == nil || *item.SellerName != "GreenCycle" {
		t.Errorf("expected joined seller name, got %v", item.SellerName)
	}
}

func TestCreateItemWithoutSeller(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, "Scrap Metal", "", "", nil, "Metal", nil, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.SellerID != nil {
		t.Error("expected nil seller_id")
	}
	if item.SellerName != nil {
		t.Error("expected nil seller_name for absent seller")
	}
}

func TestCreateItemDanglingSeller(t *testing.T) {
	// seller_id is a weak reference: a non-existent seller must not
	// prevent the insert or the read.
	database := db.NewTestDB(t)
	ctx := context.Background()

	ghost := "no-such-user"
	item, err := CreateItem(ctx, database, "Cartons", "", "₱50", &ghost, "Paper", nil, nil)
	if err != nil {
		t.Fatalf("CreateItem with dangling seller: %v", err)
	}
	if item.SellerID == nil || *item.SellerID != ghost {
		t.Errorf("expected seller_id %q preserved, got %v", ghost, item.SellerID)
	}
	if item.SellerName != nil {
		t.Error("expected nil seller_name for dangling reference")
	}
}

func TestListItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	seller, _ := CreateUser(ctx, database, model.UserTypeJunkshop, "Shop", "s@example.com", "", "", "h")
	CreateItem(ctx, database, "A", "", "", &seller.ID, "", nil, nil)
	CreateItem(ctx, database, "B", "", "", nil, "", nil, nil)

	items, err := ListItems(ctx, database)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

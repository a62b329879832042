package store

import (
	"context"
	"testing"

	"github.com/jlcruzar/siklo/internal/db"
)

func TestRates(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateRate(ctx, database, "PET Plastic", "₱3/pc")
	CreateRate(ctx, database, "Aluminum", "₱45/kg")

	rates, err := ListRates(ctx, database)
	if err != nil {
		t.Fatalf("ListRates: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}
	if rates[0].Material != "PET Plastic" || rates[1].Material != "Aluminum" {
		t.Errorf("unexpected order: %+v", rates)
	}
}

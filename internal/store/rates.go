package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jlcruzar/siklo/internal/model"
)

// ListRates returns the material rate table.
func ListRates(ctx context.Context, db *sql.DB) ([]model.Rate, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, material, price FROM rates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing rates: %w", err)
	}
	defer rows.Close()

	var rates []model.Rate
	for rows.Next() {
		var rate model.Rate
		if err := rows.Scan(&rate.ID, &rate.Material, &rate.Price); err != nil {
			return nil, fmt.Errorf("scanning rate: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

// CreateRate inserts a rate row. The API never writes rates; this
// exists for provisioning tooling and tests.
func CreateRate(ctx context.Context, db *sql.DB, material, price string) (*model.Rate, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO rates (material, price) VALUES (?, ?)`,
		material, price,
	)
	if err != nil {
		return nil, fmt.Errorf("creating rate: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting rate id: %w", err)
	}

	return &model.Rate{ID: id, Material: material, Price: price}, nil
}

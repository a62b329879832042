package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jlcruzar/siklo/internal/model"
)

// CreateItem creates a new listing and returns it. Image paths may be
// nil when no image was uploaded or processing failed.
func CreateItem(ctx context.Context, db *sql.DB, title, description, price string, sellerID *string, category string, imagePath, thumbPath *string) (*model.Item, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO items (id, title, description, price, seller_id, category, image_path, thumb_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, title, description, price, sellerID, category, imagePath, thumbPath,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if absent.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT items.id, items.title, items.description, items.price, items.seller_id,
		        items.category, items.image_path, items.thumb_path, items.created_at,
		        users.name AS seller_name
		 FROM items LEFT JOIN users ON items.seller_id = users.id
		 WHERE items.id = ?`, id,
	).Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.SellerID,
		&item.Category, &item.ImagePath, &item.ThumbPath, &item.CreatedAt, &item.SellerName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all listings with the seller name joined in.
// The join is an outer join: listings survive an absent seller.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT items.id, items.title, items.description, items.price, items.seller_id,
		        items.category, items.image_path, items.thumb_path, items.created_at,
		        users.name AS seller_name
		 FROM items LEFT JOIN users ON items.seller_id = users.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.SellerID,
			&item.Category, &item.ImagePath, &item.ThumbPath, &item.CreatedAt, &item.SellerName); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

package model

import "time"

// Item is a recyclables listing. Price is a display string (e.g. "₱150"),
// no arithmetic is performed on it. SellerID is a weak reference: the
// seller account may be absent.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	SellerID    *string   `json:"seller_id"`
	Category    string    `json:"category"`
	ImagePath   *string   `json:"image_path"`
	ThumbPath   *string   `json:"thumb_path"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined field, emitted as null when the seller is absent.
	SellerName *string `json:"seller_name"`
}

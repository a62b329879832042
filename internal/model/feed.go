package model

import "time"

// FeedEntry is a row in the merged community feed: an item listing or a
// pickup request projected onto a common shape. Meta carries the item
// price or the request pickup address depending on Type.
type FeedEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Meta      string    `json:"meta"`
	ImagePath *string   `json:"image_path"`
	ThumbPath *string   `json:"thumb_path"`
	CreatedAt time.Time `json:"created_at"`
	ActorID   *string   `json:"actor_id"`
	ActorName *string   `json:"actor_name"`
}

// Feed entry types.
const (
	FeedTypeItem    = "item"
	FeedTypeRequest = "request"
)

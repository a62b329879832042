package model

import "time"

// Message is a direct message between two accounts. Both ends are weak
// references and may be null (anonymous sender, missing recipient).
type Message struct {
	ID        string    `json:"id"`
	FromID    *string   `json:"from_id"`
	ToID      *string   `json:"to_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// Joined fields (not always populated).
	FromName *string `json:"from_name"`
	ToName   *string `json:"to_name"`
}

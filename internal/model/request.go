package model

import "time"

// Request is a pickup request. Status defaults to "Pending" and no
// endpoint currently transitions it.
type Request struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Type      string    `json:"type"`
	Items     string    `json:"items"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestTypeCollection is the default request type.
const RequestTypeCollection = "Collection"

// RequestStatusPending is the initial (and currently only) status.
const RequestStatusPending = "Pending"

package model

import "time"

// User represents an account: a household offering recyclables or a
// junkshop buying them. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	UserType     string    `json:"user_type"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// User types. Stored as free text, these are the two values the
// clients send.
const (
	UserTypeHousehold = "household"
	UserTypeJunkshop  = "junkshop"
)

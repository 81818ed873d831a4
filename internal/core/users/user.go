package users

import (
	"time"
)

// User is an account that can author posts.
// Accounts are managed outside the posts API; this package only needs them
// for identity resolution and author existence checks.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
	ID        int64     `json:"id" db:"id"`
}

// CreateUserRequest represents the input for creating a new user
type CreateUserRequest struct {
	Username string `json:"username"`
}

package models

import "time"

// RegisterRequest defines the structure for the registration request body.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse defines the structure for the user data returned after registration/login.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest defines the structure for the login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User represents a row in the users table. The account identity is distinct
// from the Profile; a user may exist without a profile until they create one.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // hashed, never serialized
	CreatedAt time.Time `json:"created_at"`
}

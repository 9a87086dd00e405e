package models

import (
	"time"
)

// User represents a registered account with its green score counter
type User struct {
	ID         int64     `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	Email      string    `json:"email" db:"email"`
	GreenScore int       `json:"green_score" db:"green_score"`
	IsVerifier bool      `json:"is_verifier" db:"is_verifier"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateUserRequest is the payload for creating a user account
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterRequest is the payload for registering and receiving a token
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest is the payload for logging in by email
type LoginRequest struct {
	Email string `json:"email"`
}

// AuthResponse carries an issued bearer token
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

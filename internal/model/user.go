package model

import "time"

// User is an account row in the database. AuthHash holds the PHC-encoded
// Argon2id digest of the account password; the password itself is never
// stored anywhere.
type User struct {
	ID        int64
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse pairs a signed JWT with the public view of the account.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the account as shown to API clients. It deliberately
// carries no hash or credential fields.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

package dto

import "time"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	// bcrypt only hashes the first 72 bytes, so longer passwords are rejected
	// up front instead of being silently truncated.
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse is the success body for registration.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the success body for login.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the authenticated subject.
type MeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

package domain

import "time"

// User is the stored credential record for an account.
// PasswordHash is the only secret-derived field and must never be logged
// or returned to callers.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

package domain

import "time"

// User is a stored identity. Username and Email are each unique across the
// store. PasswordHash is opaque; the raw password is never persisted.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     *string
	Disabled     *bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

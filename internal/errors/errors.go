package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is deliberately generic so callers cannot tell
	// whether the account or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyRegistered covers both username and email collisions without
	// distinguishing which field collided.
	ErrAlreadyRegistered = errors.New("username or email already registered")

	// ErrConflict is returned by the store when a write violates a unique
	// constraint.
	ErrConflict = errors.New("unique constraint violation")

	// ErrUnauthorized covers every token failure: bad signature, malformed
	// payload, expired token, or a subject that no longer exists.
	ErrUnauthorized = errors.New("could not validate credentials")
)

// ValidationError reports a single malformed input field with the reason it
// was rejected. The reason is safe to surface verbatim to the client.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

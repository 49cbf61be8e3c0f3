package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/WilsonnnTan/auth-backend/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	// FindByUsernameOrEmail matches the key against either unique field and
	// returns nil without error when no identity matches.
	FindByUsernameOrEmail(ctx context.Context, key string) (*User, error)

	// Create persists a new identity atomically. A unique constraint
	// violation on username or email surfaces as errors.ErrConflict.
	Create(ctx context.Context, user *User) error
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/WilsonnnTan/auth-backend/internal/auth/domain"
	"github.com/WilsonnnTan/auth-backend/internal/auth/dto"
	"github.com/WilsonnnTan/auth-backend/internal/auth/password"
	"github.com/WilsonnnTan/auth-backend/internal/auth/validate"
	autherror "github.com/WilsonnnTan/auth-backend/internal/errors"
	"github.com/WilsonnnTan/auth-backend/pkg/constant"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenIssuer
	hasher       *password.Hasher
}

func NewUserService(repo domain.UserRepository, tokenService TokenIssuer, hasher *password.Hasher) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		hasher:       hasher,
	}
}

// Register validates all three fields (failing fast with a field-specific
// reason), pre-checks both username and email for an existing identity, then
// hashes and persists. The pre-check is advisory only: the store's unique
// indexes remain authoritative on the write path, and a conflict there is
// mapped the same way.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if verr := validate.Username(input.Username); verr != nil {
		return nil, verr
	}
	if verr := validate.Email(input.Email); verr != nil {
		return nil, verr
	}
	if verr := validate.PasswordStrength(input.Password); verr != nil {
		return nil, verr
	}

	for _, key := range []string{input.Username, input.Email} {
		existing, err := s.repo.FindByUsernameOrEmail(ctx, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, autherror.ErrAlreadyRegistered
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, autherror.ErrConflict) {
			return nil, autherror.ErrAlreadyRegistered
		}

		return nil, err
	}

	return user, nil
}

// Authenticate verifies a username-or-email + password pair. Both an unknown
// account and a wrong password return ErrInvalidCredentials, and a lookup
// miss still burns a bcrypt comparison so the two paths cost about the same.
func (s *UserService) Authenticate(ctx context.Context, usernameOrEmail, rawPassword string) (*domain.User, error) {
	user, err := s.repo.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		return nil, err
	}

	if user == nil {
		s.hasher.VerifyDummy(rawPassword)
		return nil, autherror.ErrInvalidCredentials
	}

	if !s.hasher.Verify(rawPassword, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and issues a bearer token with the configured default
// lifetime.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenService.Issue(user, 0)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   constant.TokenTypeBearer,
	}, nil
}

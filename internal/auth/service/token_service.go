package service

//go:generate mockgen -destination=../../../mocks/mock_token_issuer.go -package=mocks github.com/WilsonnnTan/auth-backend/internal/auth/service TokenIssuer

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/WilsonnnTan/auth-backend/internal/auth/domain"
	autherror "github.com/WilsonnnTan/auth-backend/internal/errors"
)

type TokenIssuer interface {
	Issue(user *domain.User, ttl time.Duration) (string, error)
	Verify(tokenString string) (*TokenClaims, error)
	ResolveCurrentUser(ctx context.Context, tokenString string) (*domain.User, error)
}

// TokenClaims carries the token subject (the username) and expiry. Validity
// is determined purely by signature and expiry; nothing is stored server-side.
type TokenClaims struct {
	jwt.RegisteredClaims
}

type TokenService struct {
	repo       domain.UserRepository
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenService(repo domain.UserRepository, secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		repo:       repo,
		secret:     []byte(secret),
		defaultTTL: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) DefaultTTL() time.Duration {
	return ts.defaultTTL
}

// Issue signs a token whose subject is the user's username, expiring ttl from
// now. A zero ttl selects the configured default.
func (ts *TokenService) Issue(user *domain.User, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = ts.defaultTTL
	}

	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify parses and validates the token. Bad signature, malformed payload and
// expired token all collapse into ErrUnauthorized so callers get no
// diagnostic signal.
func (ts *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, autherror.ErrUnauthorized
	}

	return claims, nil
}

// ResolveCurrentUser verifies the token and re-resolves its subject against
// the store. A token for a since-removed identity is ErrUnauthorized, same as
// any other token failure.
func (ts *TokenService) ResolveCurrentUser(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := ts.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := ts.repo.FindByUsernameOrEmail(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}
	if user == nil {
		return nil, autherror.ErrUnauthorized
	}

	return user, nil
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WilsonnnTan/auth-backend/internal/auth/domain"
	"github.com/WilsonnnTan/auth-backend/internal/auth/service"
	autherror "github.com/WilsonnnTan/auth-backend/internal/errors"
	"github.com/WilsonnnTan/auth-backend/internal/mocks"
)

const testSecret = "test-secret-key-123"

func TestNewTokenService(t *testing.T) {
	ts := service.NewTokenService(nil, testSecret, 30)

	assert.NotNil(t, ts)
	assert.Equal(t, 30*time.Minute, ts.DefaultTTL())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := service.NewTokenService(nil, testSecret, 30)
	user := &domain.User{ID: "user-123", Username: "someuser", Email: "someuser@example.com"}

	t.Run("round trip within ttl", func(t *testing.T) {
		before := time.Now()
		tokenString, err := ts.Issue(user, 0)
		require.NoError(t, err)
		require.NotEmpty(t, tokenString)

		claims, err := ts.Verify(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "someuser", claims.Subject)
		assert.True(t, claims.ExpiresAt.After(before.Add(29*time.Minute)))
		assert.True(t, claims.ExpiresAt.Before(before.Add(31*time.Minute)))
	})

	t.Run("explicit ttl overrides default", func(t *testing.T) {
		before := time.Now()
		tokenString, err := ts.Issue(user, time.Hour)
		require.NoError(t, err)

		claims, err := ts.Verify(tokenString)
		require.NoError(t, err)
		assert.True(t, claims.ExpiresAt.After(before.Add(59*time.Minute)))
	})

	t.Run("expired token rejected", func(t *testing.T) {
		tokenString, err := ts.Issue(user, -time.Minute)
		require.NoError(t, err)

		claims, err := ts.Verify(tokenString)
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
		assert.Nil(t, claims)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := service.NewTokenService(nil, "some-other-secret", 30)
		tokenString, err := other.Issue(user, 0)
		require.NoError(t, err)

		claims, err := ts.Verify(tokenString)
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
		assert.Nil(t, claims)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		claims, err := ts.Verify("not.a.token")
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
		assert.Nil(t, claims)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "someuser",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ts.Verify(tokenString)
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
	})
}

func TestTokenService_ResolveCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	ts := service.NewTokenService(mockRepo, testSecret, 30)

	user := &domain.User{ID: "user-123", Username: "someuser", Email: "someuser@example.com"}

	t.Run("success", func(t *testing.T) {
		tokenString, err := ts.Issue(user, 0)
		require.NoError(t, err)

		mockRepo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "someuser").Return(user, nil)

		resolved, err := ts.ResolveCurrentUser(context.Background(), tokenString)
		require.NoError(t, err)
		assert.Equal(t, user.ID, resolved.ID)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		tokenString, err := ts.Issue(user, 0)
		require.NoError(t, err)

		mockRepo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "someuser").Return(nil, nil)

		resolved, err := ts.ResolveCurrentUser(context.Background(), tokenString)
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
		assert.Nil(t, resolved)
	})

	t.Run("invalid token skips the store", func(t *testing.T) {
		// No repository expectation: verification fails first.
		resolved, err := ts.ResolveCurrentUser(context.Background(), "garbage")
		assert.ErrorIs(t, err, autherror.ErrUnauthorized)
		assert.Nil(t, resolved)
	})

	t.Run("store error is not collapsed to unauthorized", func(t *testing.T) {
		tokenString, err := ts.Issue(user, 0)
		require.NoError(t, err)

		storeErr := errors.New("database error")
		mockRepo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "someuser").Return(nil, storeErr)

		resolved, err := ts.ResolveCurrentUser(context.Background(), tokenString)
		require.Error(t, err)
		assert.NotErrorIs(t, err, autherror.ErrUnauthorized)
		assert.Nil(t, resolved)
	})
}

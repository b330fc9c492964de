//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/pkg/jwt"
	"gin-storefront/internal/usecase"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("validator-test-secret", time.Minute)
	validator := usecase.NewTokenValidator(svc)

	t.Run("valid token yields identity", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateAccessToken(id, "admin@example.com", user.RoleAdmin)
		require.NoError(t, err)

		identity, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, &user.Identity{ID: id, Email: "admin@example.com", Role: user.RoleAdmin}, identity)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("some-other-secret", time.Minute)
		token, err := other.GenerateAccessToken(uuid.New(), "a@example.com", user.RoleUser)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)

		assert.Error(t, err)
	})

	t.Run("unknown role in claims", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(uuid.New(), "a@example.com", user.Role("owner"))
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := validator.ValidateToken("not.a.jwt")
		assert.Error(t, err)
	})
}

//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/dto/request"
	"gin-storefront/internal/infra/model"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/cookie"
	"gin-storefront/internal/pkg/jwt"
	"gin-storefront/tests/common/dbtest"
	"gin-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	service *jwt.Service
}

func NewJWTTestHelper(t *testing.T, cfg config.JWTConfig) *JWTTestHelper {
	t.Helper()
	ttl, err := cfg.AccessTokenTTL()
	require.NoError(t, err)
	return &JWTTestHelper{service: jwt.NewService(cfg.Secret, ttl)}
}

// TokenFor signs a token for u without going through the login endpoint.
func (h *JWTTestHelper) TokenFor(t *testing.T, u model.User) string {
	t.Helper()
	token, err := h.service.GenerateAccessToken(u.ID, u.Email, user.Role(u.Role))
	require.NoError(t, err)
	return token
}

// SessionCookie builds the cookie a browser would hold after logging in as u.
func (h *JWTTestHelper) SessionCookie(t *testing.T, u model.User) *http.Cookie {
	t.Helper()
	return &http.Cookie{Name: cookie.AccessTokenCookieName, Value: h.TokenFor(t, u)}
}

// Login posts real credentials and returns the issued session cookie.
func Login(t *testing.T, router *gin.Engine, email string) *http.Cookie {
	t.Helper()
	body := request.LoginRequest{Email: email, Password: dbtest.TestPassword}
	rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "login must set the session cookie")
	return c
}

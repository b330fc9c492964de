package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/pkg/cookie"
	"gin-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxIdentityKey = "identity"

const MsgUnauthorized = "Unauthorized"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// OptionalAuth resolves the session if a token is present, but never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.resolve(c)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentity(c); !ok && !m.resolve(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Error: MsgUnauthorized})
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) bool {
	token := extractToken(c)
	if token == "" {
		return false
	}

	identity, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		slog.Debug("Token validation failed in auth middleware", "error", err.Error())
		return false
	}

	c.Set(ctxIdentityKey, identity)
	return true
}

// cookie first, then Authorization: Bearer
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetIdentity(c *gin.Context) (*user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil, false
	}

	identity, ok := v.(*user.Identity)
	return identity, ok && identity != nil
}

// SetIdentity is used by tests and by handlers that establish a session mid-request.
func SetIdentity(c *gin.Context, identity *user.Identity) {
	c.Set(ctxIdentityKey, identity)
}

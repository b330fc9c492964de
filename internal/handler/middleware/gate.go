package middleware

import (
	"log/slog"
	"net/http"

	"gin-storefront/internal/domain/access"
	"gin-storefront/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// Gate must run after OptionalAuth so the identity is already resolved.
func Gate(g *access.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		decision := g.Evaluate(c.Request.URL.Path, identity)

		switch decision.Outcome {
		case access.Deny:
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Error: MsgUnauthorized})
		case access.Redirect:
			slog.Info("access redirected", "path", c.Request.URL.Path, "target", decision.Target)
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
		default:
			c.Next()
		}
	}
}

//go:build unit

package api_test

import (
	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// asUser stands in for OptionalAuth; a nil identity leaves the request anonymous.
func asUser(identity *user.Identity, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity != nil {
			middleware.SetIdentity(c, identity)
		}
		h(c)
	}
}

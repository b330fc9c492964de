package middleware

import (
	"log/slog"

	"gin-storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware exposes X-Request-ID and Retry-After so browser clients can read them.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.AllowOrigins
	corsCfg.AllowMethods = cfg.AllowMethods
	corsCfg.AllowHeaders = cfg.AllowHeaders
	corsCfg.ExposeHeaders = cfg.ExposeHeaders
	corsCfg.AllowCredentials = cfg.AllowCredentials
	if cfg.MaxAge > 0 {
		corsCfg.MaxAge = cfg.MaxAge
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", cfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}

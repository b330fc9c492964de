package bootstrap

import (
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	ttl, err := cfg.JWT.AccessTokenTTL()
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, ttl), nil
}

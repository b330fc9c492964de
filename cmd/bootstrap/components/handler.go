package components

import (
	"gin-storefront/internal/domain/access"
	"gin-storefront/internal/handler"
	"gin-storefront/internal/handler/api"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/handler/web"
	"gin-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCouponHandler,
		api.NewCategoryHandler,
		api.NewProductHandler,
		api.NewOrderHandler,
		api.NewUserHandler,
		web.NewPageHandler,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
		newLoginRateLimiter,
		access.NewDefaultGate,
		newHandlers,
		newMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Coupon   *api.CouponHandler
	Category *api.CategoryHandler
	Product  *api.ProductHandler
	Order    *api.OrderHandler
	User     *api.UserHandler
	Pages    *web.PageHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Coupon:   p.Coupon,
		Category: p.Category,
		Product:  p.Product,
		Order:    p.Order,
		User:     p.User,
		Pages:    p.Pages,
	}
}

type middlewareParams struct {
	fx.In

	Auth        *middleware.AuthMiddleware
	Gate        *access.Gate
	Metrics     *middleware.Metrics
	RateLimiter *middleware.RateLimiter
	Logger      *middleware.Logger
}

func newMiddlewares(p middlewareParams) handler.Middlewares {
	return handler.Middlewares{
		Auth:        p.Auth,
		Gate:        p.Gate,
		Metrics:     p.Metrics,
		RateLimiter: p.RateLimiter,
		Logger:      p.Logger,
	}
}

func newLoginRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

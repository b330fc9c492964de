package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gin-storefront/internal/domain/access"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/handler/api"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/handler/web"
	"gin-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Coupon   *api.CouponHandler
	Category *api.CategoryHandler
	Product  *api.ProductHandler
	Order    *api.OrderHandler
	User     *api.UserHandler
	Pages    *web.PageHandler
}

type Middlewares struct {
	Auth        *middleware.AuthMiddleware
	Gate        *access.Gate
	Metrics     *middleware.Metrics
	RateLimiter *middleware.RateLimiter
	Logger      *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) error {
	setupMiddleware(engine, cfg, mw)
	if err := web.Mount(engine); err != nil {
		return err
	}
	setupRoutes(engine, h, mw)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Metrics.Middleware())
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	// the gate needs the resolved identity, so session resolution runs first
	engine.Use(mw.Auth.OptionalAuth())
	engine.Use(middleware.Gate(mw.Gate))
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(mw.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{mw.RateLimiter.Middleware()}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{mw.Auth.RequireAuth()}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.Validate},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Category.List},
			{Method: http.MethodGet, Path: "/products", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/products/:slug", Handler: h.Product.Get},
		})

		userGroup := apiGroup.Group("/user")
		userGroup.Use(mw.Auth.RequireAuth())
		{
			addRoutes(userGroup, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListMine},
				{Method: http.MethodPut, Path: "/update-profile", Handler: h.User.UpdateProfile},
			})
		}
	}

	// HTML pages; /profile, /orders, /address and /admin are guarded by the gate
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: h.Pages.Home},
		{Method: http.MethodGet, Path: "/categories/:slug", Handler: h.Pages.Category},
		{Method: http.MethodGet, Path: "/profile", Handler: h.Pages.Profile},
		{Method: http.MethodGet, Path: "/orders", Handler: h.Pages.Orders},
		{Method: http.MethodGet, Path: "/address", Handler: h.Pages.Addresses},
		{Method: http.MethodGet, Path: "/admin", Handler: h.Pages.Admin},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{Status: "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	MsgTooManyRequests = "Too many requests"
	maxTrackedClients  = 10000
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(cfg.LoginPerSecond),
		burst:    cfg.LoginBurst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter := rl.getLimiter(key)

		if !limiter.Allow() {
			slog.Warn("rate limit exceeded", "client_ip", key, "path", c.Request.URL.Path)
			c.Header("Retry-After", rl.retryAfter())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.Response{Error: MsgTooManyRequests})
			return
		}
		c.Next()
	}
}

// whole seconds until one token refills, at least 1
func (rl *RateLimiter) retryAfter() string {
	secs := 1
	if rl.rate > 0 {
		d := time.Duration(float64(time.Second) / float64(rl.rate))
		if s := int(math.Ceil(d.Seconds())); s > secs {
			secs = s
		}
	}
	return strconv.Itoa(secs)
}

package middleware

import (
	"context"
	"sync"
	"time"

	"storefront-console/internal/config"
	"storefront-console/internal/errors"
	"storefront-console/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	visitorSweepPeriod = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(cfg config.SecurityConfig) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(cfg.RateLimitPerSecond),
		burst:    cfg.RateLimitBurst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP()) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// Run forgets idle visitors until ctx is done
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(visitorSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTimeout {
			delete(rl.visitors, ip)
		}
	}
}

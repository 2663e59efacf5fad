package middleware

import (
	"time"

	"github.com/fadilmartias/recruit-admin/internal/config"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter applies a per-IP sliding window. Zero arguments fall back to
// the RATE_LIMIT_* configuration.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	cfg := config.LoadRateLimitConfig()
	if max == 0 {
		max = cfg.Max
	}
	if expiration == 0 {
		expiration = cfg.Expiration
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Message: "too many requests",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

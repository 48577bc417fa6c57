package middleware

import (
	"time"

	"github.com/fadilmartias/careercraft/internal/notify"
	"github.com/fadilmartias/careercraft/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter limits each client with a sliding window. htmx requests get a
// warning toast; anything else gets the JSON envelope.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			const message = "Too many requests. Please slow down and try again."
			if IsHTMX(c) {
				return util.ToastResponse(c, fiber.StatusTooManyRequests, notify.WarningToast(message))
			}
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    fiber.StatusTooManyRequests,
				"message": message,
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

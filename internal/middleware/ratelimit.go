// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"strconv"

	"walletledger/internal/services/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// RateLimitMiddleware rejects requests once their identifier exhausts the
// sliding window. The identifier is the client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Handler runs the admission check and annotates every response with the
// standard X-RateLimit-* headers. Rejected requests get a 429 with a
// Retry-After header and are not processed further.
func (m *RateLimitMiddleware) Handler(c *fiber.Ctx) error {
	d := m.limiter.Check(c.UserContext(), c.IP())

	c.Set("X-RateLimit-Limit", strconv.FormatInt(d.Limit, 10))
	c.Set("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))
	if !d.ResetAt.IsZero() {
		c.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
	}

	if !d.Admitted {
		retryAfter := int(d.RetryAfter.Seconds() + 0.5)
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Set("Retry-After", strconv.Itoa(retryAfter))
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":       "Too many requests. Please try again later.",
			"retry_after": retryAfter,
		})
	}

	return c.Next()
}

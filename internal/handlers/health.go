package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports liveness. It is exempt from rate limiting so the
// keepalive pinger and load balancers never get throttled out.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

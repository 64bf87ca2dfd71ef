package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler returns a basic liveness check.
func HealthHandler(deps *Dependencies) fiber.Handler {
	startedAt := time.Now()

	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"uptime":  time.Since(startedAt).String(),
			"version": "dev",
		})
	}
}

// ReadyHandler reports whether the external providers are configured.
// A missing Geoapify key makes the service not ready since every travel
// request needs it; a missing Gemini key only degrades itineraries.
func ReadyHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		checks := make(map[string]string)
		allOK := true

		if deps.Cfg != nil && deps.Cfg.Geoapify.APIKey != "" {
			checks["geoapify"] = "ok"
		} else {
			checks["geoapify"] = "missing api key"
			allOK = false
		}

		if deps.Itineraries != nil && deps.Cfg != nil && deps.Cfg.Gemini.APIKey != "" {
			checks["gemini"] = "ok"
		} else {
			checks["gemini"] = "not configured"
		}

		status := "ready"
		code := 200
		if !allOK {
			status = "not ready"
			code = 503
		}

		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"checks": checks,
		})
	}
}

// version.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// VersionMiddleware reads the X-Api-Version header and stores the
// normalized value in the request context.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")

		// "1.0" is an accepted alias
		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals("apiVersion", version)

		return c.Next()
	}
}

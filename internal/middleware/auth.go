// auth.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/strawhutmedia/onboarding/internal/services"
	"github.com/strawhutmedia/onboarding/internal/types"
)

// AuthAdmin validates that the request carries a valid admin session cookie
func AuthAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Cookies(services.AdminCookieName)
		if session == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Admin cookie %q not found", services.AdminCookieName),
				Type:    "admin.authorization",
			}
		}

		username, err := auth.Verify(session)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    "admin.authorization",
			}
		}

		c.Locals("adminUser", username)

		return c.Next()
	}
}

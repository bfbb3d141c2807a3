// common.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/strawhutmedia/onboarding/internal/config"
	"github.com/strawhutmedia/onboarding/internal/form"
	"github.com/strawhutmedia/onboarding/internal/services"
	"github.com/strawhutmedia/onboarding/internal/utils"
)

// sessionState projects a wizard session into the client-facing state shape
// shared by the gate and every wizard mutation response.
func sessionState(token string, s *form.Session) fiber.Map {
	completed := make([]int, 0, len(s.Completed))
	for _, sec := range form.Sections {
		if s.Completed[sec.Number] {
			completed = append(completed, sec.Number)
		}
	}

	files := make(map[string][]fiber.Map, len(form.Categories))
	for _, cat := range form.Categories {
		entries := make([]fiber.Map, 0, len(s.Uploads[cat]))
		for _, f := range s.Uploads[cat] {
			entries = append(entries, fiber.Map{
				"name":      f.Name,
				"size":      f.Size,
				"sizeLabel": utils.FormatSize(f.Size),
			})
		}
		files[string(cat)] = entries
	}

	return fiber.Map{
		"token":         token,
		"company":       s.Company,
		"section":       s.Current,
		"totalSections": form.TotalSections,
		"completed":     completed,
		"progress":      s.Progress(),
		"submitted":     s.Submitted,
		"values":        s.Values,
		"files":         files,
	}
}

// parseIndex reads a zero-based list position from a route parameter.
func parseIndex(c *fiber.Ctx, param string) (int, error) {
	return strconv.Atoi(c.Params(param))
}

// HealthHandler handles the service health route
type HealthHandler struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Sessions *services.SessionStore
}

// GetHealth handles GET /api/health
// @Summary Service health
// @Description Report database and email-relay health
// @Tags Platform
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB, h.Sessions)
	status := fiber.StatusOK
	if result.Status == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}

// admin.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/strawhutmedia/onboarding/internal/form"
	"github.com/strawhutmedia/onboarding/internal/models"
	"github.com/strawhutmedia/onboarding/internal/services"
	"github.com/strawhutmedia/onboarding/internal/utils"
)

// AdminHandler handles the admin console routes
type AdminHandler struct {
	DB                *gorm.DB
	Auth              *services.AuthService
	Notifier          *services.Notifier
	CompaniesEndpoint string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type companyRequest struct {
	Company string `json:"company"`
}

// Login handles POST /api/admin/login
// @Summary Admin login
// @Description Validate admin credentials and issue a session cookie
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "admin.login")
	}

	token, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid username or password", fiber.StatusUnauthorized, "admin.login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.AdminCookieName,
		Value:    token,
		Expires:  time.Now().Add(services.AdminSessionTTL),
		HTTPOnly: true,
		SameSite: "Strict",
	})

	return utils.SuccessResponse(c, fiber.Map{
		"ok":       true,
		"username": req.Username,
	}, fiber.StatusOK)
}

// Logout handles POST /api/admin/logout
// @Summary Admin logout
// @Description Expire the admin session cookie
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     services.AdminCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Strict",
	})
	return utils.SuccessResponse(c, fiber.Map{"ok": true}, fiber.StatusOK)
}

// GetCompanies handles GET /api/admin/companies
// @Summary List approved companies
// @Description The approved-company list in display order
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/companies [get]
// @Security CookieAuth
func (h *AdminHandler) GetCompanies(c *fiber.Ctx) error {
	names, err := services.GetCompanies(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "admin.companies")
	}
	return utils.SuccessResponse(c, fiber.Map{"companies": names}, fiber.StatusOK)
}

// AddCompany handles POST /api/admin/companies
// @Summary Add an approved company
// @Description Append a trimmed company name, rejecting duplicates case-insensitively
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body companyRequest true "Company name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/companies [post]
// @Security CookieAuth
func (h *AdminHandler) AddCompany(c *fiber.Ctx) error {
	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "admin.companies")
	}

	if err := services.AddCompany(h.DB, req.Company); err != nil {
		switch err.Error() {
		case "empty name":
			return utils.ErrorResponse(c, "Company name is required", fiber.StatusBadRequest, "admin.companies")
		case "duplicate":
			return utils.ErrorResponse(c, "That company is already on the list", fiber.StatusConflict, "admin.companies")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "admin.companies")
	}

	names, err := services.GetCompanies(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "admin.companies")
	}
	return utils.SuccessResponse(c, fiber.Map{"companies": names}, fiber.StatusOK)
}

// RemoveCompany handles DELETE /api/admin/companies/:index
// @Summary Remove an approved company
// @Description Delete the company at the displayed position
// @Tags Admin
// @Produce json
// @Param index path int true "Zero-based position"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/companies/{index} [delete]
// @Security CookieAuth
func (h *AdminHandler) RemoveCompany(c *fiber.Ctx) error {
	index, err := parseIndex(c, "index")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid company index", fiber.StatusBadRequest, "admin.companies")
	}

	if err := services.RemoveCompany(h.DB, index); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "No company at that position")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "admin.companies")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// SyncCompanies handles POST /api/admin/companies/sync
// @Summary Refresh the approved list from the remote endpoint
// @Description Replace the stored list with the spreadsheet-backed one
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /admin/companies/sync [post]
// @Security CookieAuth
func (h *AdminHandler) SyncCompanies(c *fiber.Ctx) error {
	count, err := services.SyncCompanies(h.DB, h.CompaniesEndpoint)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadGateway, "admin.companies.sync")
	}
	return utils.SuccessResponse(c, fiber.Map{"ok": true, "count": count}, fiber.StatusOK)
}

// submissionListItem is one row of the admin submissions table.
type submissionListItem struct {
	SubmissionID string `json:"submissionId"`
	Company      string `json:"company"`
	PodcastName  string `json:"podcastName"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	SubmittedAt  string `json:"submittedAt"`
	Completeness int    `json:"completeness"`
	Tier         string `json:"tier"`
}

func listItem(sub *models.Submission) submissionListItem {
	values := services.SubmissionValues(sub)
	get := func(name string) string {
		if v, ok := values[name].(string); ok {
			return strings.TrimSpace(v)
		}
		return ""
	}
	score := form.Completeness(values)
	return submissionListItem{
		SubmissionID: sub.SubmissionID,
		Company:      sub.Company,
		PodcastName:  get("podcastName"),
		ContactName:  strings.TrimSpace(get("contactFirstName") + " " + get("contactLastName")),
		ContactEmail: get("contactEmail"),
		SubmittedAt:  sub.SubmittedAt.UTC().Format(time.RFC3339),
		Completeness: score,
		Tier:         form.CompletenessTier(score),
	}
}

// GetSubmissions handles GET /api/admin/submissions
// @Summary List submissions
// @Description Submissions sorted newest first, each with a completeness score and tier
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/submissions [get]
// @Security CookieAuth
func (h *AdminHandler) GetSubmissions(c *fiber.Ctx) error {
	subs, err := services.ListSubmissions(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "admin.submissions")
	}

	items := make([]submissionListItem, 0, len(subs))
	for i := range subs {
		items = append(items, listItem(&subs[i]))
	}
	return utils.SuccessResponse(c, fiber.Map{"submissions": items}, fiber.StatusOK)
}

// GetSubmission handles GET /api/admin/submissions/:index
// @Summary Submission details
// @Description Grouped field projection of the record at the displayed position
// @Tags Admin
// @Produce json
// @Param index path int true "Zero-based position, newest first"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/submissions/{index} [get]
// @Security CookieAuth
func (h *AdminHandler) GetSubmission(c *fiber.Ctx) error {
	index, err := parseIndex(c, "index")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid submission index", fiber.StatusBadRequest, "admin.submissions")
	}

	sub, err := services.SubmissionAt(h.DB, index)
	if err != nil {
		return utils.NotFoundResponse(c, "No submission at that position")
	}

	values := services.SubmissionValues(sub)

	groups := make([]fiber.Map, 0, len(form.ReviewGroups))
	for _, g := range form.ReviewGroups {
		fields := make([]fiber.Map, 0, len(g.Fields))
		for _, f := range g.Fields {
			fields = append(fields, fiber.Map{
				"name":      f.Name,
				"label":     f.Label,
				"value":     form.ReviewValue(values, f.Name),
				"multiline": f.Multiline,
			})
		}
		groups = append(groups, fiber.Map{"title": g.Title, "fields": fields})
	}

	return utils.SuccessResponse(c, fiber.Map{
		"item":   listItem(sub),
		"groups": groups,
		"files": fiber.Map{
			"brand": services.DecodeStringList(sub.BrandFiles),
			"logo":  services.DecodeStringList(sub.LogoFiles),
			"inspo": services.DecodeStringList(sub.InspoFiles),
			"music": services.DecodeStringList(sub.MusicFiles),
		},
		"platforms": services.DecodeStringList(sub.Platforms),
	}, fiber.StatusOK)
}

// UpdateSubmission handles PUT /api/admin/submissions/:index
// @Summary Edit a submission
// @Description Apply staged field edits to the record at the displayed position
// @Tags Admin
// @Accept json
// @Produce json
// @Param index path int true "Zero-based position, newest first"
// @Param request body map[string]string true "Field edits"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/submissions/{index} [put]
// @Security CookieAuth
func (h *AdminHandler) UpdateSubmission(c *fiber.Ctx) error {
	index, err := parseIndex(c, "index")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid submission index", fiber.StatusBadRequest, "admin.submissions")
	}

	var edits map[string]string
	if err := c.BodyParser(&edits); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "admin.submissions")
	}

	sub, err := services.UpdateSubmissionAt(h.DB, index, edits)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "No submission at that position")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "admin.submissions")
	}

	return utils.SuccessResponse(c, fiber.Map{"item": listItem(sub)}, fiber.StatusOK)
}

// ResendSubmission handles POST /api/admin/submissions/:index/resend
// @Summary Resend the notification email
// @Description Synchronous relay POST of the persisted record
// @Tags Admin
// @Produce json
// @Param index path int true "Zero-based position, newest first"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /admin/submissions/{index}/resend [post]
// @Security CookieAuth
func (h *AdminHandler) ResendSubmission(c *fiber.Ctx) error {
	index, err := parseIndex(c, "index")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid submission index", fiber.StatusBadRequest, "admin.submissions")
	}

	sub, err := services.SubmissionAt(h.DB, index)
	if err != nil {
		return utils.NotFoundResponse(c, "No submission at that position")
	}

	if err := h.Notifier.Send(sub, true); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Resend failed: %v", err), fiber.StatusBadGateway, "admin.resend")
	}
	return utils.SuccessResponse(c, fiber.Map{"ok": true, "submissionId": sub.SubmissionID}, fiber.StatusOK)
}

// DeleteSubmission handles DELETE /api/admin/submissions/:index
// @Summary Delete a submission
// @Description Remove the record at the displayed position
// @Tags Admin
// @Produce json
// @Param index path int true "Zero-based position, newest first"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/submissions/{index} [delete]
// @Security CookieAuth
func (h *AdminHandler) DeleteSubmission(c *fiber.Ctx) error {
	index, err := parseIndex(c, "index")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid submission index", fiber.StatusBadRequest, "admin.submissions")
	}

	if err := services.DeleteSubmissionAt(h.DB, index); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "No submission at that position")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "admin.submissions")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// wizard.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/strawhutmedia/onboarding/internal/form"
	"github.com/strawhutmedia/onboarding/internal/services"
	"github.com/strawhutmedia/onboarding/internal/types"
	"github.com/strawhutmedia/onboarding/internal/utils"
)

// WizardHandler handles the gate and wizard routes
type WizardHandler struct {
	DB         *gorm.DB
	Sessions   *services.SessionStore
	Notifier   *services.Notifier
	InspoLimit int
}

type gateRequest struct {
	Company string `json:"company"`
}

type jumpRequest struct {
	Section types.FlexInt `json:"section"`
}

// session resolves the :token parameter. When the token is unknown the 404
// is already written and ok is false.
func (h *WizardHandler) session(c *fiber.Ctx) (token string, s *form.Session, ok bool) {
	token = c.Params("token")
	s, err := h.Sessions.Get(token)
	if err != nil {
		_ = utils.NotFoundResponse(c, "Wizard session not found or expired")
		return "", nil, false
	}
	return token, s, true
}

// Gate handles POST /api/gate
// @Summary Company gate check
// @Description Check a company name against the approved list and start a wizard session
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body gateRequest true "Company name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /gate [post]
func (h *WizardHandler) Gate(c *fiber.Ctx) error {
	var req gateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "gate")
	}

	company := strings.TrimSpace(req.Company)
	if company == "" {
		return utils.ErrorResponse(c, "Please enter your company name", fiber.StatusBadRequest, "gate")
	}

	approved, err := services.IsApproved(h.DB, company)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "gate")
	}
	if !approved {
		return utils.GateErrorResponse(c,
			"Sorry, we don't recognize that company. Please check the spelling or contact your Straw Hut representative.")
	}

	s := form.NewSession(company)
	if h.InspoLimit > 0 {
		s.InspoLimit = h.InspoLimit
	}
	restored := services.RestoreDraft(h.DB, s)

	token := h.Sessions.Create(s)

	s.Lock()
	defer s.Unlock()
	state := sessionState(token, s)
	state["restored"] = restored
	return utils.SuccessResponse(c, state, fiber.StatusOK)
}

// GetState handles GET /api/wizard/:token
// @Summary Wizard state
// @Description Current section, completion set, progress, values, and uploads
// @Tags Wizard
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /wizard/{token} [get]
func (h *WizardHandler) GetState(c *fiber.Ctx) error {
	token, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	return utils.SuccessResponse(c, sessionState(token, s), fiber.StatusOK)
}

// SetFields handles PATCH /api/wizard/:token/fields
// @Summary Merge field values
// @Description Merge field values into the session; unknown names are ignored
// @Tags Wizard
// @Accept json
// @Produce json
// @Param token path string true "Session token"
// @Param request body map[string]interface{} true "Field values"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /wizard/{token}/fields [patch]
func (h *WizardHandler) SetFields(c *fiber.Ctx) error {
	token, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	if s.Submitted {
		return utils.ErrorResponse(c, "Submission already completed", fiber.StatusConflict, "wizard")
	}

	var values map[string]interface{}
	if err := c.BodyParser(&values); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "wizard")
	}
	s.SetValues(values)

	return utils.SuccessResponse(c, sessionState(token, s), fiber.StatusOK)
}

// Next handles POST /api/wizard/:token/next
// @Summary Advance to the next section
// @Description Validate the current section and advance; the draft is saved on success
// @Tags Wizard
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /wizard/{token}/next [post]
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	token, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	if s.Submitted {
		return utils.ErrorResponse(c, "Submission already completed", fiber.StatusConflict, "wizard")
	}

	if err := s.Next(); err != nil {
		if verr, ok := err.(*form.ValidationError); ok {
			return utils.ValidationErrorResponse(c, verr.Section, verr.Fields)
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "wizard")
	}

	if err := services.SaveDraft(h.DB, s); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Draft save failed: %v", err), fiber.StatusInternalServerError, "wizard")
	}
	return utils.SuccessResponse(c, sessionState(token, s), fiber.StatusOK)
}

// Prev handles POST /api/wizard/:token/prev
// @Summary Go back one section
// @Description Move back without validation; the draft is saved
// @Tags Wizard
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /wizard/{token}/prev [post]
func (h *WizardHandler) Prev(c *fiber.Ctx) error {
	token, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	if s.Submitted {
		return utils.ErrorResponse(c, "Submission already completed", fiber.StatusConflict, "wizard")
	}

	s.Prev()

	if err := services.SaveDraft(h.DB, s); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Draft save failed: %v", err), fiber.StatusInternalServerError, "wizard")
	}
	return utils.SuccessResponse(c, sessionState(token, s), fiber.StatusOK)
}

// Jump handles POST /api/wizard/:token/jump
// @Summary Jump to a section
// @Description Sidebar navigation without validation; no draft save
// @Tags Wizard
// @Accept json
// @Produce json
// @Param token path string true "Session token"
// @Param request body jumpRequest true "Target section"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /wizard/{token}/jump [post]
func (h *WizardHandler) Jump(c *fiber.Ctx) error {
	token, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	if s.Submitted {
		return utils.ErrorResponse(c, "Submission already completed", fiber.StatusConflict, "wizard")
	}

	var req jumpRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "wizard")
	}
	if err := s.JumpTo(req.Section.Int()); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "wizard")
	}

	return utils.SuccessResponse(c, sessionState(token, s), fiber.StatusOK)
}

// AddFiles handles POST /api/wizard/:token/files/:category
// @Summary Add upload descriptors
// @Description Record one or more file descriptors in an upload bucket
// @Tags Wizard
// @Accept json
// @Produce json
// @Param token path string true "Session token"
// @Param category path string true "Upload bucket" Enums(brand, inspo, logo, music)
// @Param request body []form.FileDescriptor true "File descriptors"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /wizard/{token}/files/{category} [post]
func (h *WizardHandler) AddFiles(c *fiber.Ctx) error {
	token, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	if s.Submitted {
		return utils.ErrorResponse(c, "Submission already completed", fiber.StatusConflict, "wizard")
	}

	cat, ok := parseCategory(c.Params("category"))
	if !ok {
		return utils.ErrorResponse(c, fmt.Sprintf("Unknown upload category '%s'", c.Params("category")), fiber.StatusBadRequest, "wizard")
	}

	// The client may send a single descriptor or an array of them
	var files types.FlexList[form.FileDescriptor]
	if err := c.BodyParser(&files); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "wizard")
	}

	added, limitReached := s.AddFiles(cat, files.Slice())

	state := sessionState(token, s)
	state["added"] = added
	state["limitReached"] = limitReached
	return utils.SuccessResponse(c, state, fiber.StatusOK)
}

// RemoveFile handles DELETE /api/wizard/:token/files/:category/:index
// @Summary Remove an upload descriptor
// @Description Remove a file descriptor by its position in the bucket
// @Tags Wizard
// @Produce json
// @Param token path string true "Session token"
// @Param category path string true "Upload bucket" Enums(brand, inspo, logo, music)
// @Param index path int true "Zero-based position"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /wizard/{token}/files/{category}/{index} [delete]
func (h *WizardHandler) RemoveFile(c *fiber.Ctx) error {
	token, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	if s.Submitted {
		return utils.ErrorResponse(c, "Submission already completed", fiber.StatusConflict, "wizard")
	}

	cat, ok := parseCategory(c.Params("category"))
	if !ok {
		return utils.ErrorResponse(c, fmt.Sprintf("Unknown upload category '%s'", c.Params("category")), fiber.StatusBadRequest, "wizard")
	}
	index, err := parseIndex(c, "index")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid file index", fiber.StatusBadRequest, "wizard")
	}

	if err := s.RemoveFile(cat, index); err != nil {
		return utils.NotFoundResponse(c, "File not found at that position")
	}

	return utils.SuccessResponse(c, sessionState(token, s), fiber.StatusOK)
}

// GetSummary handles GET /api/wizard/:token/summary
// @Summary Review summary
// @Description Grouped label/value projection of everything entered so far
// @Tags Wizard
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /wizard/{token}/summary [get]
func (h *WizardHandler) GetSummary(c *fiber.Ctx) error {
	_, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	return utils.SuccessResponse(c, fiber.Map{
		"company": s.Company,
		"groups":  s.BuildSummary(),
	}, fiber.StatusOK)
}

// Submit handles POST /api/wizard/:token/submit
// @Summary Final submission
// @Description Persist the submission, send the relay notification, and clear the draft
// @Tags Wizard
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /wizard/{token}/submit [post]
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	token, s, ok := h.session(c)
	if !ok {
		return nil
	}
	s.Lock()
	defer s.Unlock()
	if s.Submitted {
		return utils.ErrorResponse(c, "Submission already completed", fiber.StatusConflict, "wizard")
	}

	// The confirmation checkbox is a hard stop, not a validation decoration
	if !s.BoolValue(form.ConfirmField) {
		return utils.ValidationErrorResponse(c, form.TotalSections, []string{form.ConfirmField})
	}

	s.MarkAllComplete()

	sub, err := services.CreateSubmission(h.DB, s)
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Submission save failed: %v", err), fiber.StatusInternalServerError, "wizard")
	}

	h.Notifier.SendAsync(sub)

	if err := services.ClearDraft(h.DB, s.Company); err != nil {
		// The submission is already committed; a leftover draft is harmless
		log.Printf("Draft clear failed for %s: %v", s.Company, err)
	}

	s.Submitted = true

	state := sessionState(token, s)
	state["submissionId"] = sub.SubmissionID
	state["submittedAt"] = sub.SubmittedAt
	return utils.SuccessResponse(c, state, fiber.StatusOK)
}

// parseCategory maps a route parameter onto an upload bucket.
func parseCategory(raw string) (form.Category, bool) {
	for _, cat := range form.Categories {
		if string(cat) == raw {
			return cat, true
		}
	}
	return "", false
}

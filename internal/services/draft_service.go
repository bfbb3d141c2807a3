// draft_service.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package services

import (
	"strings"

	"github.com/strawhutmedia/onboarding/internal/form"
	"github.com/strawhutmedia/onboarding/internal/models"
	"gorm.io/gorm"
)

// DraftKey normalizes a company name into the draft storage key.
func DraftKey(company string) string {
	return strings.ToLower(strings.TrimSpace(company))
}

// SaveDraft serializes the session's field values and navigation state,
// keyed by the lowercased company name. Called after every next/prev
// transition. Upload descriptors are not part of the draft.
func SaveDraft(db *gorm.DB, s *form.Session) error {
	values, err := models.NewJSON(s.Values)
	if err != nil {
		return err
	}
	completed, err := models.NewJSON(s.Completed)
	if err != nil {
		return err
	}

	draft := models.Draft{
		CompanyKey:        DraftKey(s.Company),
		FieldValues:       values,
		CurrentSection:    s.Current,
		CompletedSections: completed,
	}

	return db.Where("company_key = ?", draft.CompanyKey).
		Assign(models.Draft{
			FieldValues:       values,
			CurrentSection:    s.Current,
			CompletedSections: completed,
		}).
		FirstOrCreate(&draft).Error
}

// RestoreDraft re-applies a stored draft onto a fresh session: field values
// first (visibility rules are pure functions of the values, so nothing else
// needs re-triggering), then the completed-section set, then the saved
// section when past the first. A missing or unparseable draft restores
// nothing; storage corruption is treated as "no draft present".
func RestoreDraft(db *gorm.DB, s *form.Session) bool {
	var draft models.Draft
	err := db.Where("company_key = ?", DraftKey(s.Company)).First(&draft).Error
	if err != nil {
		return false
	}

	var values map[string]interface{}
	if err := draft.FieldValues.Decode(&values); err != nil {
		return false
	}
	s.SetValues(values)

	var completed map[int]bool
	if err := draft.CompletedSections.Decode(&completed); err == nil && completed != nil {
		s.Completed = completed
	}

	if draft.CurrentSection > 1 && form.SectionByNumber(draft.CurrentSection) != nil {
		s.Current = draft.CurrentSection
	}
	return true
}

// ClearDraft removes the stored draft, invoked once after a successful
// final submit.
func ClearDraft(db *gorm.DB, company string) error {
	return db.Where("company_key = ?", DraftKey(company)).
		Delete(&models.Draft{}).Error
}

// submission_service.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/strawhutmedia/onboarding/internal/form"
	"github.com/strawhutmedia/onboarding/internal/models"
	"gorm.io/gorm"
)

// CreateSubmission finalizes a wizard session into a stored record.
// SubmittedAt is set here and never again.
func CreateSubmission(db *gorm.DB, s *form.Session) (*models.Submission, error) {
	values, err := models.NewJSON(s.SubmissionValues())
	if err != nil {
		return nil, err
	}
	platforms, err := models.NewJSON(s.ListValue("platforms"))
	if err != nil {
		return nil, err
	}

	fileCols := make(map[form.Category]models.JSON, len(form.Categories))
	for _, cat := range form.Categories {
		col, err := models.NewJSON(s.FileNames(cat))
		if err != nil {
			return nil, err
		}
		fileCols[cat] = col
	}

	sub := &models.Submission{
		SubmissionID: uuid.NewString(),
		Company:      s.Company,
		SubmittedAt:  time.Now().UTC(),
		FieldValues:  values,
		Platforms:    platforms,
		BrandFiles:   fileCols[form.CategoryBrand],
		LogoFiles:    fileCols[form.CategoryLogo],
		InspoFiles:   fileCols[form.CategoryInspo],
		MusicFiles:   fileCols[form.CategoryMusic],
	}

	if err := db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// ListSubmissions returns all records sorted by SubmittedAt descending, the
// order every admin view and every index-addressed mutation works in.
// Records without a usable timestamp sort last.
func ListSubmissions(db *gorm.DB) ([]models.Submission, error) {
	var subs []models.Submission
	if err := db.Find(&subs).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
	return subs, nil
}

// SubmissionAt fetches the record at the displayed (sorted) position.
func SubmissionAt(db *gorm.DB, index int) (*models.Submission, error) {
	subs, err := ListSubmissions(db)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(subs) {
		return nil, fmt.Errorf("not found")
	}
	return &subs[index], nil
}

// UpdateSubmissionAt applies staged field edits to the record at the sorted
// position and writes it back. SubmittedAt and the file lists are not edit
// targets. This is the original's read-sort-mutate-write cycle: two admin
// sessions saving concurrently can interleave; single-admin operation is
// assumed (documented in DESIGN.md, not enforced).
func UpdateSubmissionAt(db *gorm.DB, index int, edits map[string]string) (*models.Submission, error) {
	sub, err := SubmissionAt(db, index)
	if err != nil {
		return nil, err
	}

	var values map[string]interface{}
	if err := sub.FieldValues.Decode(&values); err != nil || values == nil {
		values = make(map[string]interface{})
	}
	for name, v := range edits {
		if form.FieldByName(name) == nil {
			continue
		}
		values[name] = v
	}

	col, err := models.NewJSON(values)
	if err != nil {
		return nil, err
	}
	sub.FieldValues = col

	if err := db.Model(sub).Update("field_values", col).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// DeleteSubmissionAt removes the record at the sorted position.
func DeleteSubmissionAt(db *gorm.DB, index int) error {
	sub, err := SubmissionAt(db, index)
	if err != nil {
		return err
	}
	return db.Delete(sub).Error
}

// SubmissionValues decodes a record's field map for scoring and projection.
func SubmissionValues(sub *models.Submission) map[string]interface{} {
	var values map[string]interface{}
	if err := sub.FieldValues.Decode(&values); err != nil || values == nil {
		return map[string]interface{}{}
	}
	return values
}

// DecodeStringList decodes a JSON column holding a list of strings.
func DecodeStringList(col models.JSON) []string {
	var names []string
	if err := col.Decode(&names); err != nil {
		return nil
	}
	return names
}

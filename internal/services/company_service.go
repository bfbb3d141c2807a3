// company_service.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/strawhutmedia/onboarding/internal/models"
	"gorm.io/gorm"
)

// GetCompanies returns the approved-company list in display order. Every
// caller re-reads the store; there is no in-memory cache to go stale.
func GetCompanies(db *gorm.DB) ([]string, error) {
	var companies []models.Company
	if err := db.Order("company_id").Find(&companies).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.CompanyName)
	}
	return names, nil
}

// IsApproved reports whether name matches a stored entry after trimming,
// case-insensitively. A synchronous local check with no retry semantics.
func IsApproved(db *gorm.DB, name string) (bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return false, nil
	}
	var count int64
	if err := db.Model(&models.Company{}).
		Where("LOWER(company_name) = ?", trimmed).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddCompany appends a trimmed name, rejecting case-insensitive duplicates.
func AddCompany(db *gorm.DB, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("empty name")
	}

	var count int64
	if err := db.Model(&models.Company{}).
		Where("LOWER(company_name) = ?", strings.ToLower(trimmed)).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("duplicate")
	}

	return db.Create(&models.Company{CompanyName: trimmed}).Error
}

// RemoveCompany deletes by display position.
func RemoveCompany(db *gorm.DB, index int) error {
	var companies []models.Company
	if err := db.Order("company_id").Find(&companies).Error; err != nil {
		return err
	}
	if index < 0 || index >= len(companies) {
		return fmt.Errorf("not found")
	}
	return db.Delete(&companies[index]).Error
}

// companiesPayload is the remote list endpoint's response shape.
type companiesPayload struct {
	Success   bool     `json:"success"`
	Companies []string `json:"companies"`
}

var companiesClient = &http.Client{Timeout: 10 * time.Second}

// SyncCompanies fetches the spreadsheet-backed list and replaces the stored
// one. A failed fetch or a non-success payload leaves the stored list
// untouched. Returns how many entries were stored after trimming and
// dropping duplicates.
func SyncCompanies(db *gorm.DB, endpoint string) (int, error) {
	if endpoint == "" {
		return 0, fmt.Errorf("no companies endpoint configured")
	}

	resp, err := companiesClient.Get(endpoint + "?action=getCompanies")
	if err != nil {
		return 0, fmt.Errorf("companies fetch failed: %w", err)
	}
	defer resp.Body.Close()

	var payload companiesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("companies fetch: invalid response: %w", err)
	}
	if !payload.Success || len(payload.Companies) == 0 {
		return 0, fmt.Errorf("companies fetch: endpoint reported no companies")
	}

	stored := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Company{}).Error; err != nil {
			return err
		}
		seen := make(map[string]bool, len(payload.Companies))
		for _, name := range payload.Companies {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" || seen[strings.ToLower(trimmed)] {
				continue
			}
			seen[strings.ToLower(trimmed)] = true
			if err := tx.Create(&models.Company{CompanyName: trimmed}).Error; err != nil {
				return err
			}
			stored++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return stored, nil
}

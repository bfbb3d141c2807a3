package models

import "time"

// Draft is an autosaved, in-progress wizard state for one company, keyed by
// the lowercased trimmed company name so drafts survive casing drift at the
// gate. Upload descriptors are deliberately absent: files live only in the
// volatile wizard session.
type Draft struct {
	DraftID           uint64 `gorm:"primaryKey;autoIncrement"`
	CompanyKey        string `gorm:"uniqueIndex;size:255;not null"`
	FieldValues       JSON   `gorm:"type:json"`
	CurrentSection    int    `gorm:"not null;default:1"`
	CompletedSections JSON   `gorm:"type:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the table name for Draft
func (Draft) TableName() string {
	return "drafts"
}

package models

import "time"

// Submission is a finalized intake record. SubmittedAt is set exactly once
// at creation; admin edits rewrite FieldValues but never the timestamp.
// The file columns hold names only, never bytes.
type Submission struct {
	SubmissionID string    `gorm:"primaryKey;size:36"`
	Company      string    `gorm:"size:255;not null"`
	SubmittedAt  time.Time `gorm:"not null;index"`
	FieldValues  JSON      `gorm:"type:json"`
	Platforms    JSON      `gorm:"type:json"`
	BrandFiles   JSON      `gorm:"type:json"`
	LogoFiles    JSON      `gorm:"type:json"`
	InspoFiles   JSON      `gorm:"type:json"`
	MusicFiles   JSON      `gorm:"type:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}

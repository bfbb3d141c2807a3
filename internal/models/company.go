package models

import "time"

// Company is one entry of the approved-company allowlist. Insert order is
// display order; name uniqueness is also enforced case-insensitively at the
// service layer before insert.
type Company struct {
	CompanyID   uint64 `gorm:"primaryKey;autoIncrement"`
	CompanyName string `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt   time.Time
}

// TableName overrides the table name for Company
func (Company) TableName() string {
	return "approved_companies"
}

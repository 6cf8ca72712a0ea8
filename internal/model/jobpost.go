package model

import (
	"time"

	"github.com/lib/pq"
)

// JobPost is a hiring posting owned by exactly one HR account. Authoring
// lives in another service; this one only reads job posts for scoping and
// joined projections.
type JobPost struct {
	ID   uint `gorm:"primaryKey;autoIncrement" json:"id"`
	HRID uint `gorm:"not null;index" json:"hr_id"`
	HR   User `gorm:"foreignKey:HRID;references:ID" json:"-"`

	// CompanyID is nullable, a job post may be company-less.
	CompanyID *uint    `gorm:"index" json:"company_id"`
	Company   *Company `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`

	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Location    string         `gorm:"type:text" json:"location"`
	SalaryRange string         `gorm:"type:text" json:"salary_range"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package model

import "time"

var (
	// ApplicationStatusPending indicates that the application awaits review
	ApplicationStatusPending = "pending"
	// ApplicationStatusAccepted indicates that the application has been accepted
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is one of the three allowed
// status values. Any of them may transition to any other, a reviewed
// application can be reopened back to pending.
func ValidApplicationStatus(s string) bool {
	return s == ApplicationStatusPending ||
		s == ApplicationStatusAccepted ||
		s == ApplicationStatusRejected
}

// Application is one applicant's submission against one job post. The
// composite unique index holds the one-application-per-job-per-applicant
// rule even under concurrent submissions.
type Application struct {
	ID    uint `gorm:"primaryKey;autoIncrement" json:"id"`
	JobID uint `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	// JobPost is read-only from this service's perspective.
	JobPost JobPost `gorm:"foreignKey:JobID;references:ID" json:"-"`

	// ApplicantID references ApplicantProfile.ID, not the user id.
	ApplicantID uint             `gorm:"not null;index;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Profile     ApplicantProfile `gorm:"foreignKey:ApplicantID;references:ID" json:"-"`

	Status      string `gorm:"type:text;not null;default:pending" json:"status"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	Notes       string `gorm:"type:text" json:"notes"`

	// Application-level documents, may diverge from the profile-level ones.
	// When present they take precedence over the profile documents in every
	// shaped response.
	ResumeFile      string `gorm:"type:text" json:"resume_file"`
	CoverLetterFile string `gorm:"type:text" json:"cover_letter_file"`
	PortfolioFile   string `gorm:"type:text" json:"portfolio_file"`

	AppliedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"applied_at"`

	// ReviewedAt and ReviewedBy are either both null or both set; they are
	// stamped only by a status transition.
	ReviewedAt *time.Time `gorm:"type:timestamp" json:"reviewed_at"`
	ReviewedBy *uint      `json:"reviewed_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package model

import "time"

// ApplicantProfile holds the education and document data of one applicant.
// Related 1:1 to a User; applications reference this profile, not the user.
type ApplicantProfile struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;references:ID" json:"-"`

	EducationLevel  string   `gorm:"type:text" json:"education_level"`
	Major           string   `gorm:"type:text" json:"major"`
	InstitutionName string   `gorm:"type:text" json:"institution_name"`
	GPA             *float64 `gorm:"type:numeric" json:"gpa"`
	GraduationYear  *int     `json:"graduation_year"`
	EntryYear       *int     `json:"entry_year"`

	// Stored filenames only. The file store owns the bytes; URLs are
	// derived per request by the fileurl package.
	CVFile          string `gorm:"type:text" json:"cv_file"`
	CoverLetterFile string `gorm:"type:text" json:"cover_letter_file"`
	PortfolioFile   string `gorm:"type:text" json:"portfolio_file"`
	ProfilePhoto    string `gorm:"type:text" json:"profile_photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkExperience is one past employment record of a user. Owned by the
// profile-management subsystem; this service only reads it.
type WorkExperience struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;references:ID" json:"-"`

	CompanyName    string     `gorm:"type:text" json:"company_name"`
	Position       string     `gorm:"type:text" json:"position"`
	StartDate      *time.Time `gorm:"type:date" json:"start_date"`
	EndDate        *time.Time `gorm:"type:date" json:"end_date"`
	JobDescription string     `gorm:"type:text" json:"job_description"`
}

// Certificate is one certification record of a user, read-only here.
type Certificate struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;references:ID" json:"-"`

	CertificateName string     `gorm:"type:text" json:"certificate_name"`
	Issuer          string     `gorm:"type:text" json:"issuer"`
	IssueDate       *time.Time `gorm:"type:date" json:"issue_date"`
	ExpiryDate      *time.Time `gorm:"type:date" json:"expiry_date"`
	CertificateFile string     `gorm:"type:text" json:"certificate_file"`
}

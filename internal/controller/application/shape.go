package application

import (
	"time"

	"github.com/agrwatching/backend-stti-career/internal/fileurl"
	"github.com/agrwatching/backend-stti-career/internal/model"
)

// listColumns is the compact projection of the list views.
const listColumns = `applications.id,
	users.full_name AS applicant_name,
	applications.applied_at,
	applications.status,
	job_posts.title AS job_title,
	companies.name AS company_name,
	applicant_profiles.cv_file AS cv_file,
	applications.cover_letter,
	applications.notes`

// ApplicationListItem is one row of the compact list projection.
type ApplicationListItem struct {
	ID            uint      `gorm:"column:id" json:"id"`
	ApplicantName string    `gorm:"column:applicant_name" json:"applicant_name"`
	AppliedAt     time.Time `gorm:"column:applied_at" json:"applied_at"`
	Status        string    `gorm:"column:status" json:"status"`
	JobTitle      string    `gorm:"column:job_title" json:"job_title"`
	CompanyName   *string   `gorm:"column:company_name" json:"company_name"`
	CVFile        string    `gorm:"column:cv_file" json:"cv_file"`
	CoverLetter   string    `gorm:"column:cover_letter" json:"cover_letter"`
	Notes         string    `gorm:"column:notes" json:"notes"`
}

// detailColumns is the full joined projection of the detail views. Profile
// documents are aliased apart from the application-level ones so the two
// never collide in a response.
const detailColumns = `applications.id AS application_id,
	applications.job_id,
	applications.applicant_id,
	users.id AS user_id,
	applications.status,
	applications.cover_letter,
	applications.notes,
	applications.resume_file,
	applications.cover_letter_file,
	applications.portfolio_file,
	applications.applied_at,
	applications.reviewed_at,
	applications.reviewed_by,
	job_posts.title AS job_title,
	job_posts.location,
	job_posts.salary_range,
	companies.name AS company_name,
	users.full_name,
	users.email,
	users.phone,
	users.address,
	applicant_profiles.education_level,
	applicant_profiles.major,
	applicant_profiles.institution_name,
	applicant_profiles.gpa,
	applicant_profiles.graduation_year,
	applicant_profiles.entry_year,
	applicant_profiles.cv_file AS profile_cv_file,
	applicant_profiles.cover_letter_file AS profile_cover_letter_file,
	applicant_profiles.portfolio_file AS profile_portfolio_file,
	applicant_profiles.profile_photo`

// applicationDetailRow is the raw scan target of detailColumns.
type applicationDetailRow struct {
	ApplicationID uint `gorm:"column:application_id" json:"application_id"`
	JobID         uint `gorm:"column:job_id" json:"job_id"`
	ApplicantID   uint `gorm:"column:applicant_id" json:"applicant_id"`
	UserID        uint `gorm:"column:user_id" json:"user_id"`

	Status      string     `gorm:"column:status" json:"status"`
	CoverLetter string     `gorm:"column:cover_letter" json:"cover_letter"`
	Notes       string     `gorm:"column:notes" json:"notes"`
	AppliedAt   time.Time  `gorm:"column:applied_at" json:"applied_at"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
	ReviewedBy  *uint      `gorm:"column:reviewed_by" json:"reviewed_by"`

	// Application-level documents
	ResumeFile      string `gorm:"column:resume_file" json:"resume_file"`
	CoverLetterFile string `gorm:"column:cover_letter_file" json:"cover_letter_file"`
	PortfolioFile   string `gorm:"column:portfolio_file" json:"portfolio_file"`

	JobTitle    string  `gorm:"column:job_title" json:"job_title"`
	Location    string  `gorm:"column:location" json:"location"`
	SalaryRange string  `gorm:"column:salary_range" json:"salary_range"`
	CompanyName *string `gorm:"column:company_name" json:"company_name"`

	FullName string  `gorm:"column:full_name" json:"full_name"`
	Email    *string `gorm:"column:email" json:"email"`
	Phone    *string `gorm:"column:phone" json:"phone"`
	Address  string  `gorm:"column:address" json:"address"`

	EducationLevel  string   `gorm:"column:education_level" json:"education_level"`
	Major           string   `gorm:"column:major" json:"major"`
	InstitutionName string   `gorm:"column:institution_name" json:"institution_name"`
	GPA             *float64 `gorm:"column:gpa" json:"gpa"`
	GraduationYear  *int     `gorm:"column:graduation_year" json:"graduation_year"`
	EntryYear       *int     `gorm:"column:entry_year" json:"entry_year"`

	// Profile-level documents
	ProfileCVFile          string `gorm:"column:profile_cv_file" json:"profile_cv_file"`
	ProfileCoverLetterFile string `gorm:"column:profile_cover_letter_file" json:"profile_cover_letter_file"`
	ProfilePortfolioFile   string `gorm:"column:profile_portfolio_file" json:"profile_portfolio_file"`
	ProfilePhoto           string `gorm:"column:profile_photo" json:"profile_photo"`
}

// CertificateView is a certificate decorated with its resolved document URL.
type CertificateView struct {
	model.Certificate
	CertificateFileURL *string `json:"certificate_file_url"`
}

// ApplicationDetail is the full shaped detail response: the joined row,
// the resolved URLs and the enrichment collections.
type ApplicationDetail struct {
	applicationDetailRow

	ResumeFileURL      *string `json:"resume_file_url"`
	CoverLetterFileURL *string `json:"cover_letter_file_url"`
	PortfolioFileURL   *string `json:"portfolio_file_url"`
	ProfilePhotoURL    *string `json:"profile_photo_url"`

	WorkExperiences []model.WorkExperience `json:"work_experiences"`
	Certificates    []CertificateView      `json:"certificates"`
}

// shapeDetail decorates a joined row with document URLs and enrichment.
// URL derivation goes through fileurl.Preferred so every endpoint applies
// the same application-over-profile precedence.
func shapeDetail(row applicationDetailRow, baseOrigin string, enr enrichment) ApplicationDetail {
	detail := ApplicationDetail{applicationDetailRow: row}

	detail.ResumeFileURL = fileurl.Resolve(baseOrigin, fileurl.CategoryFiles,
		fileurl.Preferred(row.ResumeFile, row.ProfileCVFile))
	detail.CoverLetterFileURL = fileurl.Resolve(baseOrigin, fileurl.CategoryFiles,
		fileurl.Preferred(row.CoverLetterFile, row.ProfileCoverLetterFile))
	detail.PortfolioFileURL = fileurl.Resolve(baseOrigin, fileurl.CategoryFiles,
		fileurl.Preferred(row.PortfolioFile, row.ProfilePortfolioFile))
	detail.ProfilePhotoURL = fileurl.Resolve(baseOrigin, fileurl.CategoryImages, row.ProfilePhoto)

	detail.WorkExperiences = enr.WorkExperiences
	detail.Certificates = make([]CertificateView, 0, len(enr.Certificates))
	for _, cert := range enr.Certificates {
		detail.Certificates = append(detail.Certificates, CertificateView{
			Certificate:        cert,
			CertificateFileURL: fileurl.Resolve(baseOrigin, fileurl.CategoryFiles, cert.CertificateFile),
		})
	}

	return detail
}

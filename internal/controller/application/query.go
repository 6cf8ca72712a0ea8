package application

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agrwatching/backend-stti-career/internal/apperror"
	"github.com/agrwatching/backend-stti-career/internal/model"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// Pagination carries the clamped page/limit pair for list queries.
type Pagination struct {
	Page  int
	Limit int
}

// PaginationFrom parses page and limit query params, falling back to page 1
// and limit 10, then clamps limit into [1, 50].
func PaginationFrom(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = defaultLimit
	}
	return Pagination{Page: page, Limit: limit}.Clamped()
}

// Clamped normalizes out-of-range values to the nearest bound.
func (p Pagination) Clamped() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset returns the row offset of the requested page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Scope is the authorization-derived predicate restricting which
// applications a requester may see. It is built from the authenticated
// user only, never from request parameters, and is applied before any
// caller-supplied filter.
type Scope struct {
	Role   string
	UserID uint
}

// ScopeFor derives the scope of the authenticated user, folding the legacy
// "user" role into the applicant scope.
func ScopeFor(user model.User) Scope {
	role := user.Role
	if user.IsApplicant() {
		role = model.RolePelamar
	}
	return Scope{Role: role, UserID: user.ID}
}

// Apply adds the ownership restriction to tx. HR only sees applications on
// job posts they own; applicants only see their own applications; admin is
// unrestricted.
func (s Scope) Apply(tx *gorm.DB) *gorm.DB {
	switch s.Role {
	case model.RoleAdmin:
		return tx
	case model.RoleHR:
		return tx.Where("job_posts.hr_id = ?", s.UserID)
	default:
		return tx.Where("applicant_profiles.user_id = ?", s.UserID)
	}
}

// AllowsFilters reports whether caller-supplied filters apply under this
// scope. Applicant listings ignore them entirely, so a forged applicantId
// can never widen the result set.
func (s Scope) AllowsFilters() bool {
	return s.Role == model.RoleAdmin || s.Role == model.RoleHR
}

// Filters are the optional equality predicates of the admin/HR list view.
type Filters struct {
	ApplicantID *uint
	JobID       *uint
	Status      string
}

// FiltersFrom reads the optional list filters from the query string. The
// id filters target integer columns, so a non-numeric value is rejected
// here before any storage call.
func FiltersFrom(c *gin.Context) (Filters, error) {
	f := Filters{Status: c.Query("status")}

	var err error
	if f.ApplicantID, err = uintFilter(c, "applicantId"); err != nil {
		return Filters{}, err
	}
	if f.JobID, err = uintFilter(c, "jobId"); err != nil {
		return Filters{}, err
	}
	return f, nil
}

func uintFilter(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, fmt.Sprintf("Invalid %s %q", name, raw))
	}
	id := uint(v)
	return &id, nil
}

// Apply ANDs each present filter; absent filters impose no constraint.
func (f Filters) Apply(tx *gorm.DB) *gorm.DB {
	if f.ApplicantID != nil {
		tx = tx.Where("applications.applicant_id = ?", *f.ApplicantID)
	}
	if f.JobID != nil {
		tx = tx.Where("applications.job_id = ?", *f.JobID)
	}
	if f.Status != "" {
		tx = tx.Where("applications.status = ?", f.Status)
	}
	return tx
}

// joined is the base join across every table a shaped application row
// needs: job post and its optional company, plus the applicant profile and
// its user.
func (ac *ApplicationController) joined() *gorm.DB {
	return ac.DB.Model(&model.Application{}).
		Joins("JOIN job_posts ON job_posts.id = applications.job_id").
		Joins("JOIN applicant_profiles ON applicant_profiles.id = applications.applicant_id").
		Joins("JOIN users ON users.id = applicant_profiles.user_id").
		Joins("LEFT JOIN companies ON companies.id = job_posts.company_id")
}

// scoped builds the fully predicated query for one request.
func (ac *ApplicationController) scoped(scope Scope, filters Filters) *gorm.DB {
	tx := scope.Apply(ac.joined())
	if scope.AllowsFilters() {
		tx = filters.Apply(tx)
	}
	return tx
}

// newestFirst orders most recent applications first with a deterministic
// id tie-break so pagination is stable across equal timestamps.
func newestFirst(tx *gorm.DB) *gorm.DB {
	return tx.
		Order(clause.OrderByColumn{Column: clause.Column{Table: "applications", Name: "applied_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "applications", Name: "id"}, Desc: true})
}

// queryApplications runs the scoped, filtered, paginated list query and
// the matching unpaginated count.
func (ac *ApplicationController) queryApplications(scope Scope, filters Filters, p Pagination) ([]ApplicationListItem, int64, error) {
	var total int64
	if err := ac.scoped(scope, filters).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := []ApplicationListItem{}
	err := newestFirst(ac.scoped(scope, filters).Select(listColumns)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

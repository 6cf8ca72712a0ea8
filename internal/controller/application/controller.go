// Package application provides HTTP handlers for the application tracking,
// review and status transition endpoints.
package application

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/agrwatching/backend-stti-career/internal/apperror"
	"github.com/agrwatching/backend-stti-career/internal/database"
	"github.com/agrwatching/backend-stti-career/internal/fileurl"
	"github.com/agrwatching/backend-stti-career/internal/model"
	"github.com/agrwatching/backend-stti-career/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

// respondError maps coded operation errors to HTTP responses. Anything
// uncoded is a data-access failure: it is logged and answered with a
// generic message so driver error text never reaches the caller.
func respondError(c *gin.Context, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
	case apperror.CodeNotFound:
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
	case apperror.CodeForbidden:
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
	case apperror.CodeConflict:
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("application: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.New(apperror.CodeValidation, fmt.Sprintf("Invalid application id %q", raw))
	}
	return uint(id), nil
}

// GetMyApplications lets an applicant track their own submissions.
// @Summary List the authenticated applicant's applications
// @Description Scoped to the requester; any applicantId filter is ignored
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param page query integer false "Page number, starting at 1"
// @Param limit query integer false "Page size, clamped to [1, 50]"
// @Success 200 {object} map[string]interface{} "Paginated list"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/me [get]
func (ac *ApplicationController) GetMyApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	p := PaginationFrom(c)
	scope := Scope{Role: model.RolePelamar, UserID: user.ID}

	// Filters are deliberately empty: an applicant may never widen or
	// shift their own listing via query params.
	rows, total, err := ac.queryApplications(scope, Filters{}, p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  p.Page,
		"limit": p.Limit,
		"total": total,
		"data":  rows,
	})
}

// GetApplications lists applications for reviewers.
// @Summary List applications, scoped by role and filtered by query params
// @Description HR only sees applications on job posts they own; admin sees all
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param page query integer false "Page number, starting at 1"
// @Param limit query integer false "Page size, clamped to [1, 50]"
// @Param applicantId query integer false "Filter by applicant profile id"
// @Param jobId query integer false "Filter by job post id"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{} "Paginated list"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Wrong role"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [get]
func (ac *ApplicationController) GetApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	filters, err := FiltersFrom(c)
	if err != nil {
		respondError(c, err)
		return
	}

	p := PaginationFrom(c)
	rows, total, err := ac.queryApplications(ScopeFor(user), filters, p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  p.Page,
		"limit": p.Limit,
		"total": total,
		"data":  rows,
	})
}

// GetApplicationByID returns one fully enriched application.
// @Summary Get a single application with profile enrichment
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application id"
// @Success 200 {object} ApplicationDetail
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [get]
func (ac *ApplicationController) GetApplicationByID(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var rows []applicationDetailRow
	err = ScopeFor(user).Apply(ac.joined()).
		Where("applications.id = ?", id).
		Select(detailColumns).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		respondError(c, err)
		return
	}
	if len(rows) == 0 {
		respondError(c, apperror.New(apperror.CodeNotFound, "Application not found"))
		return
	}

	enr, err := ac.fetchEnrichment(rows[0].UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shapeDetail(rows[0], fileurl.RequestOrigin(c), enr))
}

// GetApplicantDetail returns enriched detail rows, optionally narrowed to
// one application id via the path.
// @Summary List applications with full profile enrichment
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application_id path integer false "Application id"
// @Param page query integer false "Page number, starting at 1"
// @Param limit query integer false "Page size, clamped to [1, 50]"
// @Success 200 {object} map[string]interface{} "Paginated enriched list"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/detail [get]
func (ac *ApplicationController) GetApplicantDetail(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	scope := ScopeFor(user)
	filters, err := FiltersFrom(c)
	if err != nil {
		respondError(c, err)
		return
	}
	p := PaginationFrom(c)

	narrowed := func() *gorm.DB {
		tx := ac.scoped(scope, filters)
		if raw := c.Param("application_id"); raw != "" {
			tx = tx.Where("applications.id = ?", raw)
		}
		return tx
	}

	if raw := c.Param("application_id"); raw != "" {
		if _, err := parseID(raw); err != nil {
			respondError(c, err)
			return
		}
	}

	var total int64
	if err := narrowed().Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}

	var rows []applicationDetailRow
	err = newestFirst(narrowed().Select(detailColumns)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&rows).Error
	if err != nil {
		respondError(c, err)
		return
	}

	userIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		userIDs = append(userIDs, row.UserID)
	}
	enrByUser, err := ac.fetchEnrichmentAll(userIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	baseOrigin := fileurl.RequestOrigin(c)
	data := make([]ApplicationDetail, 0, len(rows))
	for _, row := range rows {
		data = append(data, shapeDetail(row, baseOrigin, enrByUser[row.UserID]))
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  p.Page,
		"limit": p.Limit,
		"total": total,
		"data":  data,
	})
}

type createApplicationRequest struct {
	JobID           uint   `json:"job_id"`
	ApplicantID     uint   `json:"applicant_id"`
	CoverLetter     string `json:"cover_letter"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	ResumeFile      string `json:"resume_file"`
	CoverLetterFile string `json:"cover_letter_file"`
	PortfolioFile   string `json:"portfolio_file"`
}

// createApplication validates and stores a new submission. Foreign key
// existence is delegated to the storage constraints; a violation comes
// back as a validation error.
func (ac *ApplicationController) createApplication(req createApplicationRequest) (model.Application, error) {
	if req.JobID == 0 || req.ApplicantID == 0 {
		return model.Application{}, apperror.New(apperror.CodeValidation, "job_id and applicant_id are required")
	}

	status := req.Status
	if status == "" {
		status = model.ApplicationStatusPending
	}
	if !model.ValidApplicationStatus(status) {
		return model.Application{}, apperror.New(apperror.CodeValidation, fmt.Sprintf("Invalid status %q", status))
	}

	existing := model.Application{}
	err := ac.DB.Where("job_id = ? AND applicant_id = ?", req.JobID, req.ApplicantID).First(&existing).Error
	if err == nil {
		return model.Application{}, apperror.New(apperror.CodeConflict, "Applicant has already applied to this job post")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Application{}, err
	}

	application := model.Application{
		JobID:           req.JobID,
		ApplicantID:     req.ApplicantID,
		Status:          status,
		CoverLetter:     req.CoverLetter,
		Notes:           req.Notes,
		ResumeFile:      req.ResumeFile,
		CoverLetterFile: req.CoverLetterFile,
		PortfolioFile:   req.PortfolioFile,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		// Reload to pick up the storage-assigned applied_at timestamp.
		return tx.First(&application, application.ID).Error
	})
	if err != nil {
		var pqErr *pgconn.PgError
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23503":
				return model.Application{}, apperror.New(apperror.CodeValidation, "Invalid job_id or applicant_id")
			case "23505":
				// Concurrent submission slipped past the read check; the
				// unique index is the authoritative guard.
				return model.Application{}, apperror.New(apperror.CodeConflict, "Applicant has already applied to this job post")
			}
		}
		return model.Application{}, err
	}

	return application, nil
}

// CreateApplication handles the submission of a new application record.
// @Summary Create an application
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body createApplicationRequest true "Application information"
// @Success 201 {object} model.Application
// @Failure 400 {object} utilities.ErrorResponse "Missing job_id/applicant_id or invalid status"
// @Failure 409 {object} utilities.ErrorResponse "Duplicate application"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [post]
func (ac *ApplicationController) CreateApplication(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application, err := ac.createApplication(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// authorizeMutation enforces that only the HR owning the job post (or an
// admin) may mutate an application. The read path enforces the same rule
// through Scope; mutations must not be the weaker one.
func (ac *ApplicationController) authorizeMutation(user model.User, application model.Application) error {
	if user.Role == model.RoleAdmin {
		return nil
	}

	var job model.JobPost
	if err := ac.DB.First(&job, application.JobID).Error; err != nil {
		return err
	}
	if job.HRID != user.ID {
		return apperror.New(apperror.CodeForbidden, "You are not allowed to manage applications on this job post")
	}
	return nil
}

// setStatus validates and applies a status transition, stamping reviewer
// identity and time. Notes are overwritten, applied_at is never touched.
// Any of the three states may transition to any other.
func (ac *ApplicationController) setStatus(applicationID uint, newStatus, notes string, reviewer model.User) (model.Application, error) {
	if !model.ValidApplicationStatus(newStatus) {
		return model.Application{}, apperror.New(apperror.CodeValidation, fmt.Sprintf("Invalid status %q", newStatus))
	}

	var application model.Application
	if err := ac.DB.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Application{}, apperror.New(apperror.CodeNotFound, "Application not found")
		}
		return model.Application{}, err
	}

	if err := ac.authorizeMutation(reviewer, application); err != nil {
		return model.Application{}, err
	}

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Application{}).
			Where("id = ?", application.ID).
			Updates(map[string]interface{}{
				"status":      newStatus,
				"notes":       notes,
				"reviewed_at": time.Now(),
				"reviewed_by": reviewer.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.New(apperror.CodeNotFound, "Application not found")
		}
		return tx.First(&application, application.ID).Error
	})
	if err != nil {
		return model.Application{}, err
	}

	return application, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateApplicationStatus transitions an application between review states.
// @Summary Update application status and reviewer notes
// @Description Only the HR owning the job post may review its applications
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application id"
// @Param transition body updateStatusRequest true "Target status (pending, accepted or rejected) and notes"
// @Success 200 {object} model.Application
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or status value"
// @Failure 403 {object} utilities.ErrorResponse "Job post owned by another HR"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [put]
func (ac *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application, err := ac.setStatus(id, req.Status, req.Notes, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// deleteApplication removes one application after the ownership check.
func (ac *ApplicationController) deleteApplication(applicationID uint, user model.User) error {
	var application model.Application
	if err := ac.DB.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeNotFound, "Application not found")
		}
		return err
	}

	if err := ac.authorizeMutation(user, application); err != nil {
		return err
	}

	return ac.DB.Delete(&application).Error
}

// DeleteApplication removes an application record.
// @Summary Delete an application
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "Application id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 403 {object} utilities.ErrorResponse "Job post owned by another HR"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [delete]
func (ac *ApplicationController) DeleteApplication(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ac.deleteApplication(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Application deleted"})
}

package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrwatching/backend-stti-career/internal/auth"
	"github.com/agrwatching/backend-stti-career/internal/database"
	"github.com/agrwatching/backend-stti-career/internal/middleware"
	"github.com/agrwatching/backend-stti-career/internal/model"
	"github.com/agrwatching/backend-stti-career/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start test database: %v", err)
	}
	testDB = db

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Printf("could not teardown test database: %v", err)
		}
	}
	os.Exit(code)
}

// setupRouter registers the application routes the way the server does,
// middleware included.
func setupRouter(db *database.DBinstanceStruct) *gin.Engine {
	r := gin.New()
	ac := NewApplicationController(db)

	applications := r.Group("/api/v1/applications")
	applications.Use(middleware.RequireAuth(db))
	{
		applications.GET("/me", middleware.CheckRole(model.RolePelamar, model.RoleUser), ac.GetMyApplications)
		applications.GET("", middleware.CheckRole(model.RoleAdmin, model.RoleHR), ac.GetApplications)
		applications.GET("/detail", middleware.CheckRole(model.RoleAdmin, model.RoleHR), ac.GetApplicantDetail)
		applications.GET("/detail/:application_id", middleware.CheckRole(model.RoleAdmin, model.RoleHR), ac.GetApplicantDetail)
		applications.GET("/:id", middleware.CheckRole(model.RoleAdmin, model.RoleHR), ac.GetApplicationByID)
		applications.POST("", middleware.CheckRole(model.RoleAdmin, model.RoleHR), ac.CreateApplication)
		applications.PUT("/:id", middleware.CheckRole(model.RoleAdmin, model.RoleHR), ac.UpdateApplicationStatus)
		applications.DELETE("/:id", middleware.CheckRole(model.RoleAdmin, model.RoleHR), ac.DeleteApplication)
	}

	return r
}

// clearApplications empties the applications table so each test starts
// from a known state.
func clearApplications(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.Exec("DELETE FROM applications").Error)
}

// seedApplication inserts a row directly, bypassing the handler so tests
// control applied_at and status.
func seedApplication(t *testing.T, app model.Application) model.Application {
	t.Helper()
	require.NoError(t, testDB.Create(&app).Error)
	return app
}

func hrToken(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func TestGetApplicationsScopedByRole(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	seedApplication(t, model.Application{JobID: database.TestJobPostHR1A.ID, ApplicantID: database.TestProfile1.ID, AppliedAt: base})
	seedApplication(t, model.Application{JobID: database.TestJobPostHR1B.ID, ApplicantID: database.TestProfile2.ID, AppliedAt: base.Add(time.Hour)})
	seedApplication(t, model.Application{JobID: database.TestJobPostHR2.ID, ApplicantID: database.TestProfile1.ID, AppliedAt: base.Add(2 * time.Hour)})

	cases := []struct {
		name string
		user model.User
		want int
	}{
		{"hr only sees own job posts", database.TestUserHR1, 2},
		{"other hr sees the rest", database.TestUserHR2, 1},
		{"admin sees everything", database.TestAdminUser, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := hrToken(t, tc.user)
			rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications", http.MethodGet)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, float64(tc.want), resp["total"])
			assert.Len(t, resp["data"], tc.want)
		})
	}
}

func TestGetApplicationsFilters(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)
	token := hrToken(t, database.TestAdminUser)

	base := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	seedApplication(t, model.Application{JobID: database.TestJobPostHR1A.ID, ApplicantID: database.TestProfile1.ID, Status: model.ApplicationStatusAccepted, AppliedAt: base})
	seedApplication(t, model.Application{JobID: database.TestJobPostHR1A.ID, ApplicantID: database.TestProfile2.ID, Status: model.ApplicationStatusPending, AppliedAt: base.Add(time.Hour)})
	seedApplication(t, model.Application{JobID: database.TestJobPostHR2.ID, ApplicantID: database.TestProfile1.ID, Status: model.ApplicationStatusRejected, AppliedAt: base.Add(2 * time.Hour)})

	t.Run("filter by job", func(t *testing.T) {
		endpoint := fmt.Sprintf("/api/v1/applications?jobId=%d", database.TestJobPostHR1A.ID)
		rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), resp["total"])
	})

	t.Run("filter by applicant", func(t *testing.T) {
		endpoint := fmt.Sprintf("/api/v1/applications?applicantId=%d", database.TestProfile1.ID)
		rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), resp["total"])
	})

	t.Run("filter by status", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications?status=accepted", http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), resp["total"])
	})

	t.Run("non-numeric id filters rejected before storage", func(t *testing.T) {
		for _, endpoint := range []string{
			"/api/v1/applications?applicantId=abc",
			"/api/v1/applications?jobId=12x",
			"/api/v1/applications/detail?applicantId=abc",
		} {
			rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)
			assert.Equal(t, http.StatusBadRequest, rec.Code, endpoint)
			assert.Contains(t, resp["error"], "Invalid", endpoint)
		}
	})

	t.Run("filters combine with scope", func(t *testing.T) {
		// HR1 asking for applicant 1: only the application on HR1's post
		// qualifies, the one on HR2's post stays invisible.
		endpoint := fmt.Sprintf("/api/v1/applications?applicantId=%d", database.TestProfile1.ID)
		rec, resp := testutil.MakeJSONRequest(nil, hrToken(t, database.TestUserHR1), r, endpoint, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), resp["total"])
	})
}

func TestGetMyApplicationsIgnoresFilters(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)

	base := time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC)
	seedApplication(t, model.Application{JobID: database.TestJobPostHR1A.ID, ApplicantID: database.TestProfile1.ID, AppliedAt: base})
	seedApplication(t, model.Application{JobID: database.TestJobPostHR2.ID, ApplicantID: database.TestProfile2.ID, AppliedAt: base.Add(time.Hour)})

	token := hrToken(t, database.TestUserApplicant1)

	// An applicantId pointing at someone else must not widen or shift the
	// listing.
	endpoint := fmt.Sprintf("/api/v1/applications/me?applicantId=%d", database.TestProfile2.ID)
	rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["total"])

	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	row := data[0].(map[string]interface{})
	assert.Equal(t, database.TestUserApplicant1.FullName, row["applicant_name"])
}

func TestGetMyApplicationsForbiddenForHR(t *testing.T) {
	r := setupRouter(testDB)
	token := hrToken(t, database.TestUserHR1)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications/me", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetApplicationsPagination(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)
	token := hrToken(t, database.TestAdminUser)

	// One application per job post keeps the (job, applicant) pair unique
	// across the batch.
	base := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	var newest model.Application
	postIDs := make([]uint, 0, 25)
	for i := 0; i < 25; i++ {
		post := model.JobPost{
			HRID:  database.TestUserHR1.ID,
			Title: fmt.Sprintf("Batch Role %d", i+1),
		}
		require.NoError(t, testDB.Create(&post).Error)
		postIDs = append(postIDs, post.ID)

		newest = seedApplication(t, model.Application{
			JobID:       post.ID,
			ApplicantID: database.TestProfile1.ID,
			AppliedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}
	t.Cleanup(func() {
		testDB.Exec("DELETE FROM applications WHERE job_id IN ?", postIDs)
		testDB.Exec("DELETE FROM job_posts WHERE id IN ?", postIDs)
	})

	t.Run("first page newest first", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications?page=1&limit=10", http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(25), resp["total"])

		data := resp["data"].([]interface{})
		require.Len(t, data, 10)
		first := data[0].(map[string]interface{})
		assert.Equal(t, float64(newest.ID), first["id"])
	})

	t.Run("last partial page", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications?page=3&limit=10", http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, resp["data"], 5)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications?page=4&limit=10", http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, resp["data"], 0)
		assert.Equal(t, float64(25), resp["total"])
	})

	t.Run("oversized limit clamps to 50", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications?limit=1000", http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(50), resp["limit"])
		assert.Len(t, resp["data"], 25)
	})

	t.Run("zero limit clamps to 1", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications?limit=0", http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), resp["limit"])
		assert.Len(t, resp["data"], 1)
	})
}

func TestGetApplicationByID(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)

	app := seedApplication(t, model.Application{
		JobID:       database.TestJobPostHR1A.ID,
		ApplicantID: database.TestProfile1.ID,
		ResumeFile:  "tailored-cv.pdf",
		AppliedAt:   time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC),
	})

	t.Run("detail with enrichment and url precedence", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR1)
		endpoint := fmt.Sprintf("/api/v1/applications/%d", app.ID)
		rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(app.ID), resp["application_id"])
		assert.Equal(t, database.TestUserApplicant1.FullName, resp["full_name"])
		assert.Equal(t, "Backend Engineer", resp["job_title"])
		assert.Equal(t, "TechNova", resp["company_name"])

		// Application-level resume wins over the profile CV; the cover
		// letter falls back to the profile document.
		assert.Equal(t, "http://example.com/uploads/files/tailored-cv.pdf", resp["resume_file_url"])
		assert.Equal(t, "http://example.com/uploads/files/cover-alice.pdf", resp["cover_letter_file_url"])
		assert.Equal(t, "http://example.com/uploads/images/alice.jpg", resp["profile_photo_url"])

		assert.Len(t, resp["work_experiences"], 2)
		certs := resp["certificates"].([]interface{})
		require.Len(t, certs, 2)

		withFile := certs[0].(map[string]interface{})
		withoutFile := certs[1].(map[string]interface{})
		assert.Equal(t, "http://example.com/uploads/files/aws-cp.pdf", withFile["certificate_file_url"])
		assert.Nil(t, withoutFile["certificate_file_url"])
	})

	t.Run("out of scope looks like missing", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR2)
		endpoint := fmt.Sprintf("/api/v1/applications/%d", app.ID)
		rec, _ := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		token := hrToken(t, database.TestAdminUser)
		rec, _ := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications/999999", http.MethodGet)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		token := hrToken(t, database.TestAdminUser)
		rec, _ := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications/abc", http.MethodGet)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetApplicantDetail(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)
	token := hrToken(t, database.TestUserHR1)

	base := time.Date(2026, 5, 6, 9, 0, 0, 0, time.UTC)
	appAlice := seedApplication(t, model.Application{JobID: database.TestJobPostHR1A.ID, ApplicantID: database.TestProfile1.ID, AppliedAt: base})
	seedApplication(t, model.Application{JobID: database.TestJobPostHR1B.ID, ApplicantID: database.TestProfile2.ID, AppliedAt: base.Add(time.Hour)})

	t.Run("all detail rows", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications/detail", http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), resp["total"])

		data := resp["data"].([]interface{})
		require.Len(t, data, 2)

		// Newest first: budi's application, whose profile has no
		// enrichment rows and no portfolio document.
		budi := data[0].(map[string]interface{})
		assert.Equal(t, database.TestUserApplicant2.FullName, budi["full_name"])
		assert.Len(t, budi["work_experiences"], 0)
		assert.Len(t, budi["certificates"], 0)
		assert.Nil(t, budi["portfolio_file_url"])
		assert.Equal(t, "http://example.com/uploads/files/cv-budi.pdf", budi["resume_file_url"])

		alice := data[1].(map[string]interface{})
		assert.Len(t, alice["work_experiences"], 2)
		assert.Len(t, alice["certificates"], 2)
	})

	t.Run("narrowed to one application", func(t *testing.T) {
		endpoint := fmt.Sprintf("/api/v1/applications/detail/%d", appAlice.ID)
		rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), resp["total"])

		data := resp["data"].([]interface{})
		require.Len(t, data, 1)
		row := data[0].(map[string]interface{})
		assert.Equal(t, float64(appAlice.ID), row["application_id"])
	})

	t.Run("malformed application id", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications/detail/abc", http.MethodGet)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateApplication(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)
	token := hrToken(t, database.TestUserHR1)

	t.Run("defaults to pending", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{
			"job_id":       database.TestJobPostHR1A.ID,
			"applicant_id": database.TestProfile1.ID,
			"cover_letter": "I would love to join.",
		}, token, r, "/api/v1/applications", http.MethodPost)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, model.ApplicationStatusPending, resp["status"])
		assert.NotEmpty(t, resp["applied_at"])
		assert.Nil(t, resp["reviewed_at"])
		assert.Nil(t, resp["reviewed_by"])

		var stored model.Application
		require.NoError(t, testDB.First(&stored, uint(resp["id"].(float64))).Error)
		assert.Equal(t, "I would love to join.", stored.CoverLetter)
		assert.False(t, stored.AppliedAt.IsZero())
	})

	t.Run("duplicate pair conflicts", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{
			"job_id":       database.TestJobPostHR1A.ID,
			"applicant_id": database.TestProfile1.ID,
		}, token, r, "/api/v1/applications", http.MethodPost)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, resp["error"], "already applied")
	})

	t.Run("storage enforces one application per pair", func(t *testing.T) {
		// Concurrent submissions can both pass the read check; the unique
		// index must still refuse the second insert.
		dup := model.Application{
			JobID:       database.TestJobPostHR1A.ID,
			ApplicantID: database.TestProfile1.ID,
		}
		err := testDB.Create(&dup).Error
		require.Error(t, err)

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "23505", pgErr.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(gin.H{
			"job_id": database.TestJobPostHR1A.ID,
		}, token, r, "/api/v1/applications", http.MethodPost)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status value", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(gin.H{
			"job_id":       database.TestJobPostHR1B.ID,
			"applicant_id": database.TestProfile1.ID,
			"status":       "maybe",
		}, token, r, "/api/v1/applications", http.MethodPost)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown job post rejected by constraint", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{
			"job_id":       999999,
			"applicant_id": database.TestProfile1.ID,
		}, token, r, "/api/v1/applications", http.MethodPost)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, resp["error"], "Invalid job_id or applicant_id")
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)

	appliedAt := time.Date(2026, 5, 7, 9, 0, 0, 0, time.UTC)
	app := seedApplication(t, model.Application{
		JobID:       database.TestJobPostHR1A.ID,
		ApplicantID: database.TestProfile1.ID,
		AppliedAt:   appliedAt,
	})
	endpoint := fmt.Sprintf("/api/v1/applications/%d", app.ID)

	t.Run("owning hr accepts", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR1)
		rec, resp := testutil.MakeJSONRequest(gin.H{
			"status": model.ApplicationStatusAccepted,
			"notes":  "Strong portfolio",
		}, token, r, endpoint, http.MethodPut)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.ApplicationStatusAccepted, resp["status"])
		assert.Equal(t, "Strong portfolio", resp["notes"])
		assert.Equal(t, float64(database.TestUserHR1.ID), resp["reviewed_by"])
		assert.NotNil(t, resp["reviewed_at"])

		var stored model.Application
		require.NoError(t, testDB.First(&stored, app.ID).Error)
		assert.True(t, stored.AppliedAt.Equal(appliedAt), "applied_at must survive review")
		require.NotNil(t, stored.ReviewedAt)
		require.NotNil(t, stored.ReviewedBy)
		assert.Equal(t, database.TestUserHR1.ID, *stored.ReviewedBy)
	})

	t.Run("reopen back to pending", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR1)
		rec, resp := testutil.MakeJSONRequest(gin.H{
			"status": model.ApplicationStatusPending,
		}, token, r, endpoint, http.MethodPut)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.ApplicationStatusPending, resp["status"])
	})

	t.Run("invalid status leaves the row untouched", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR1)
		rec, _ := testutil.MakeJSONRequest(gin.H{
			"status": "maybe",
		}, token, r, endpoint, http.MethodPut)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var stored model.Application
		require.NoError(t, testDB.First(&stored, app.ID).Error)
		assert.Equal(t, model.ApplicationStatusPending, stored.Status)
	})

	t.Run("foreign hr is forbidden", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR2)
		rec, _ := testutil.MakeJSONRequest(gin.H{
			"status": model.ApplicationStatusRejected,
		}, token, r, endpoint, http.MethodPut)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin may review any application", func(t *testing.T) {
		token := hrToken(t, database.TestAdminUser)
		rec, resp := testutil.MakeJSONRequest(gin.H{
			"status": model.ApplicationStatusRejected,
		}, token, r, endpoint, http.MethodPut)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(database.TestAdminUser.ID), resp["reviewed_by"])
	})

	t.Run("unknown application", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR1)
		rec, _ := testutil.MakeJSONRequest(gin.H{
			"status": model.ApplicationStatusAccepted,
		}, token, r, "/api/v1/applications/999999", http.MethodPut)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteApplication(t *testing.T) {
	clearApplications(t)
	r := setupRouter(testDB)

	app := seedApplication(t, model.Application{
		JobID:       database.TestJobPostHR1A.ID,
		ApplicantID: database.TestProfile1.ID,
		AppliedAt:   time.Date(2026, 5, 8, 9, 0, 0, 0, time.UTC),
	})
	endpoint := fmt.Sprintf("/api/v1/applications/%d", app.ID)

	t.Run("unknown application", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR1)
		rec, _ := testutil.MakeJSONRequest(nil, token, r, "/api/v1/applications/999999", http.MethodDelete)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var count int64
		require.NoError(t, testDB.Model(&model.Application{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("foreign hr is forbidden", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR2)
		rec, _ := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodDelete)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owning hr deletes", func(t *testing.T) {
		token := hrToken(t, database.TestUserHR1)
		rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodDelete)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Application deleted", resp["message"])

		var count int64
		require.NoError(t, testDB.Model(&model.Application{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

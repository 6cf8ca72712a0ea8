package auth

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/agrwatching/backend-stti-career/internal/database"
	"github.com/agrwatching/backend-stti-career/internal/model"
	"github.com/agrwatching/backend-stti-career/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func TestLocalLogin_Success(t *testing.T) {
	token, err := GetAccessToken(t, testDB, database.TestUserHR1.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := ValidatedToken(token)
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestLocalLogin_WrongPassword(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": database.TestUserHR1.Username,
		"password": "definitely-wrong",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, resp["error"], "incorrect")
}

func TestLocalRegister_CreatesApplicantProfile(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, map[string]string{
		"username":  "register_pelamar",
		"password":  "LongEnough1!",
		"full_name": "Citra Lestari",
		"role":      model.RolePelamar,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, resp["access_token"])

	var user model.User
	assert.NoError(t, testDB.Where("username = ?", "register_pelamar").First(&user).Error)

	var profile model.ApplicantProfile
	assert.NoError(t, testDB.Where("user_id = ?", user.ID).First(&profile).Error)
}

func TestLocalRegister_RejectsAdminRole(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	rec, _, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, map[string]string{
		"username": "sneaky_admin",
		"password": "LongEnough1!",
		"role":     model.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocalRegister_DuplicateUsername(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, map[string]string{
		"username": database.TestUserHR1.Username,
		"password": "LongEnough1!",
		"role":     model.RoleHR,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "already exist")
}

package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agrwatching/backend-stti-career/internal/database"
	"github.com/agrwatching/backend-stti-career/internal/model"
	"github.com/agrwatching/backend-stti-career/internal/utilities"
)

// LocalAuthHandler holds DB reference for handler methods.
type LocalAuthHandler struct {
	DB *database.DBinstanceStruct
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler with the provided database connection.
func NewLocalAuthHandler(db *database.DBinstanceStruct) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB: db,
	}
}

type registerInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"required,oneof=hr pelamar"`
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

// LocalRegisterHandler handles local registration by receiving username and password.
// Username must not already exist and password must be at least 8 characters long.
// @Summary Register a local hr or pelamar account
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "role can be only 'hr' or 'pelamar'"
// @Success 201 {object} authResponse "Created account with access token"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) LocalRegisterHandler(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username, password, and Role (Only 'hr' or 'pelamar') must be provided",
		})
		return
	}

	var user model.User
	err := lh.DB.Where("username = ?", info.Username).First(&user).Error

	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username already exist",
		})
		return

	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing

	default:
		log.Printf("auth: lookup username: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Internal server error",
		})
		return
	}

	if len(info.Password) < 8 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Password should longer or equal to 8 characters",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	newUser := model.User{
		Username: info.Username,
		Password: hashedPassword,
		FullName: info.FullName,
		Role:     info.Role,
	}
	if err := lh.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to create user",
		})
		return
	}

	// Applicants get an empty profile immediately so applications can
	// reference it.
	if newUser.Role == model.RolePelamar {
		profile := model.ApplicantProfile{UserID: newUser.ID}
		if err := lh.DB.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "Failed to create applicant profile",
			})
			return
		}
	}

	accessToken, err := generateToken(newUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		User:        newUser,
		AccessToken: accessToken,
	})
}

// LocalLoginHandler handles local login by receiving username and password.
// @Summary Login with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials"
// @Success 200 {object} authResponse "User with access token"
// @Failure 400 {object} utilities.ErrorResponse "Missing credentials"
// @Failure 401 {object} utilities.ErrorResponse "Unknown username or wrong password"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LocalLoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username or password is not provided",
		})
		return
	}

	var user model.User
	err := lh.DB.Where("username = ?", info.Username).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		log.Printf("auth: lookup username: %v", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Internal server error",
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	}

	accessToken, err := generateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, authResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

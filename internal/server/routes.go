package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/agrwatching/backend-stti-career/internal/auth"
	"github.com/agrwatching/backend-stti-career/internal/controller/application"
	"github.com/agrwatching/backend-stti-career/internal/middleware"
	"github.com/agrwatching/backend-stti-career/internal/model"
)

// RegisterRoutes builds the gin engine with all middleware and endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrigins := []string{"http://localhost:5173"}
	if env := os.Getenv("ALLOW_ORIGIN"); env != "" {
		allowOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Use(middleware.SafeHeader())
	r.Use(middleware.RequestID())
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)

	api := r.Group("/api/v1")

	authHandler := auth.NewLocalAuthHandler(s.DB)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.LocalLoginHandler)
		authGroup.POST("/register", authHandler.LocalRegisterHandler)
	}

	ac := application.NewApplicationController(s.DB)
	applications := api.Group("/applications")
	applications.Use(middleware.RequireAuth(s.DB))
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

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler returns a static greeting used as a liveness probe.
// @Summary Hello world
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (s *Server) HelloWorldHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// healthHandler reports database connectivity and pool statistics.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}

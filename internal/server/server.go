// Package server wires the HTTP server, its routes and middleware.
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/agrwatching/backend-stti-career/internal/database"
)

// Server holds the listen port and the shared database handle.
type Server struct {
	port int

	DB *database.DBinstanceStruct
}

// NewServer builds the HTTP server from environment configuration.
func NewServer() (*http.Server, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	db, err := database.GetMainDB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	newServer := &Server{
		port: port,
		DB:   db,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newServer.port),
		Handler:      newServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, nil
}

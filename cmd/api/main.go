package main

import (
	"os"

	"github.com/selim/gradepoint/internal/pkg/logger"
	"github.com/selim/gradepoint/internal/server"
)

// @title GradePoint API
// @version 1.0
// @description API for the GradePoint university GPA calculator

// @contact.name API Support
// @contact.email support@gradepoint.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// NewServer orchestrates config loading, logger setup, database
	// setup, dependency injection and router construction.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

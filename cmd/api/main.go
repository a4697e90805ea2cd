package main

import (
	"os"

	"github.com/yigit/gpacalc/internal/bootstrap"
	"github.com/yigit/gpacalc/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/gpacalc/internal/server"
)

// @title GPA Calculator API
// @version 1.0
// @description Session-scoped subject ledger with semester and cumulative GPA calculation

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token returned by POST /sessions

func main() {
	srv, err := server.NewServer(bootstrap.ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

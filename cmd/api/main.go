package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ethos-training/ethos/internal/pkg/logger"
	"github.com/ethos-training/ethos/internal/server"
)

// @title Ethos Training API
// @version 1.0
// @description API for the EPA ethics-training platform: modules, quizzes, and completion tracking.

// @contact.name API Support
// @contact.email support@ethos.training

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token, as issued by /auth/login

func main() {
	// Optional; real deployments set environment variables directly
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

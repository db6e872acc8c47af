package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/iaigorluiz-svg/nutriai-api/config"
	"github.com/iaigorluiz-svg/nutriai-api/controllers"
	"github.com/iaigorluiz-svg/nutriai-api/logger"
	"github.com/iaigorluiz-svg/nutriai-api/routes"
	"github.com/iaigorluiz-svg/nutriai-api/store"
)

func main() {
	logger.Init()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	// Profiles live in memory unless a database is configured.
	if os.Getenv("DB_HOST") != "" {
		pg, err := store.NewPostgres()
		if err != nil {
			logger.Error("Failed to initialize postgres profile store", "error", err)
			os.Exit(1)
		}
		controllers.Profiles = pg
	} else {
		logger.Warn("DB_HOST not set, profiles are stored in memory only")
	}

	r := routes.SetupRouter()

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

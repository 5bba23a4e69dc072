package main

import (
	"flag"
	"os"

	"github.com/apollomotors/vehicleapi/config"
	"github.com/apollomotors/vehicleapi/handler"
	"github.com/apollomotors/vehicleapi/internal/jsonlog"
	"github.com/apollomotors/vehicleapi/repository"
	"github.com/apollomotors/vehicleapi/repository/postgres"
	"github.com/apollomotors/vehicleapi/service"
	"github.com/joho/godotenv"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Load a .env file for local development; absence is not an error.
	_ = godotenv.Load()

	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG"), "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Application layers
	repo := repository.New(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.PrintFatal(err, nil)
	}
	service := service.New(cfg, logger, repo)
	handler := handler.New(cfg, logger, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

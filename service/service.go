package service

import (
	"github.com/apollomotors/vehicleapi/config"
	"github.com/apollomotors/vehicleapi/internal/jsonlog"
	"github.com/apollomotors/vehicleapi/repository"
)

// Service defines the app's service layer.
type Service interface {
	vehicles
}

type service struct {
	config config.Config
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service. The repository handle is the
// only shared mutable resource; it is passed in explicitly as a
// capability rather than reached through any ambient state.
func New(cfg config.Config, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		logger: logger,
		repo:   repo,
	}
}

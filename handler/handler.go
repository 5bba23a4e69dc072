package handler

import (
	"github.com/apollomotors/vehicleapi/config"
	"github.com/apollomotors/vehicleapi/internal/jsonlog"
	"github.com/apollomotors/vehicleapi/service"
)

const version = "1.0.0"

// Handler defines the handler layer.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		service: service,
	}
}

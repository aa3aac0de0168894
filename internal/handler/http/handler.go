package http

import (
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	server config.Server
	images config.Images

	logger *logger.Logger
}

// NewHandler returns a Handler using the server settings for timeouts and
// rate limits and the image settings for uploads and /media.
func NewHandler(services *service.Services, server config.Server, images config.Images, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		server:   server,
		images:   images,
		logger:   logger,
	}
}

package http

import (
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
)

type Handler struct {
	services *service.Services

	// version is the service version reported by the root endpoint.
	version string

	// enforceHTTPS toggles the strict-transport middleware. Off in tests.
	enforceHTTPS bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, enforceHTTPS bool, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		version:      version,
		enforceHTTPS: enforceHTTPS,
		logger:       logger,
	}
}

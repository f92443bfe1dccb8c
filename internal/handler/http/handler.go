package http

import (
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/service"
)

// Handler serves the portal and owner REST API. Routes are built by Init.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("portal http handler created")
	return &Handler{services: services, logger: logger}
}

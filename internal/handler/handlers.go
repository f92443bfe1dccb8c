package handler

import (
	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/handler/grpc"
	"github.com/MKhiriev/go-doc-portal/internal/handler/http"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/service"
)

// Handlers holds the transport handlers enabled by the server configuration.
// A nil field means that transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, ErrNoTransportConfigured
	}

	return handlers, nil
}

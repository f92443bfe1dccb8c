// Package grpc implements the gRPC transport: the standard grpc.health.v1
// health service plus server reflection, and a request-logging interceptor.
package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/service"
)

// PortalServiceName is the health-check service name reported next to the
// overall ("") server status.
const PortalServiceName = "portal.v1.Portal"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service reports SERVING for
// both the server and [PortalServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(true)

	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// SetServing flips every reported status. Watchers are notified.
func (h *Handler) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(PortalServiceName, st)
}

// Shutdown reports NOT_SERVING permanently; later SetServing calls are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// LoggingInterceptor attaches a trace-scoped logger to the call context and
// writes one access log entry per unary call.
func (h *Handler) LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	l := h.logger.WithStr("trace_id", uuid.NewString())
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

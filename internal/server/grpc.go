package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	myGRPC "github.com/MKhiriev/go-doc-portal/internal/handler/grpc"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.LoggingInterceptor))
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		server:  srv,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// RunServer listens on the configured address and blocks until the server
// stops.
func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")

	return g.server.Serve(listener)
}

// Shutdown reports NOT_SERVING to health watchers, then waits for in-flight
// calls.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}

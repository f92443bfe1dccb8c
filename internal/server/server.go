package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/handler"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(cfg.RequestTimeout), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, ErrNoTransportEnabled
	}

	return servers, nil
}

// RunServer starts every enabled transport and blocks until SIGTERM, SIGINT
// or SIGQUIT arrives, or until a transport fails. All transports are then
// shut down gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var wg sync.WaitGroup
	launch := func(name string, run func() error) {
		s.logger.Info().Msgf("launching %s server", name)
		wg.Go(func() {
			if err := run(); err != nil {
				s.logger.Err(err).Msgf("%s server stopped", name)
				cancel(err)
			}
		})
	}

	if s.httpServer != nil {
		launch("HTTP", s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		launch("gRPC", s.gRPCServer.RunServer)
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	if err := context.Cause(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

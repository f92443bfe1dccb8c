package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/handler"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/server"
	"github.com/MKhiriev/go-doc-portal/internal/service"
	"github.com/MKhiriev/go-doc-portal/internal/store"
	"github.com/MKhiriev/go-doc-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Bool("s3", cfg.Storage.S3.Enabled()).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
}

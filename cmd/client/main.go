package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doc-portal/internal/adapter"
	"github.com/MKhiriev/go-doc-portal/internal/client"
	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "build-info" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())
		return 0
	}

	log := logger.NewClientLogger("portal-client", os.Getenv("PORTAL_VERBOSE") != "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	portal, err := adapter.NewHTTPPortalAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating portal adapter")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app client.Client = client.NewApp(portal, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	return 0
}

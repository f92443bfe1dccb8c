package service

import (
	"fmt"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/crypto"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/store"
	"github.com/MKhiriev/go-doc-portal/internal/validators"
)

type Services struct {
	PortalAccessService PortalAccessService
	LinkAdminService    LinkAdminService
	PortalFilesService  PortalFilesService
	OwnerAuthService    OwnerAuthService
	AppInfoService      AppInfoService
}

// NewServices builds every service from storages and cfg. A missing session
// signing secret or version is a configuration error.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	sessions, err := crypto.NewSessionTokenCodec(cfg.App.SessionSigningKey, crypto.WithTTL(cfg.App.SessionDuration))
	if err != nil {
		return nil, fmt.Errorf("error creating session codec: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(crypto.DefaultScryptParams)
	validator := validators.NewPortalValidator()

	return &Services{
		PortalAccessService: NewPortalAccessService(storages.Links, hasher, sessions, logger),
		LinkAdminService:    NewLinkAdminService(storages.Links, crypto.NewPasswordGenerator(), hasher, validator, logger),
		PortalFilesService:  NewPortalFilesService(storages.Files, validator, logger),
		OwnerAuthService:    NewOwnerAuthService(cfg.App, logger),
		AppInfoService:      appInfo,
	}, nil
}

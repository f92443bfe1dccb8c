package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
)

// Storages bundles the persistence dependencies of the service layer.
// DB is nil for the memory driver.
type Storages struct {
	Links PortalLinkRepository
	Files FileStorage
	DB    *DB
}

// NewStorages connects the configured link database, applies migrations and
// selects the file store: S3 when a bucket is configured, the local
// filesystem otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory link storage, data is lost on restart")
		storages.Links = NewMemoryPortalLinkRepository()
	case config.DriverPostgres, config.DriverSQLite:
		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		storages.DB = db
		storages.Links = NewPortalLinkRepository(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}

	var err error
	if cfg.S3.Enabled() {
		storages.Files, err = NewS3FileStorage(ctx, cfg.S3, log)
	} else {
		storages.Files, err = NewLocalFileStorage(cfg.Files.Dir, log)
	}
	if err != nil {
		storages.Close()
		return nil, err
	}

	return storages, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] can start the
// server. Missing signing keys are fatal: the portal cannot issue sessions
// and owners cannot authenticate without them.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSigningKey == "" {
		return fmt.Errorf("%w: session signing key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.OwnerTokenSignKey == "" {
		return fmt.Errorf("%w: owner token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.SessionDuration <= 0 {
		return fmt.Errorf("%w: session duration must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if !cfg.Storage.S3.Enabled() && cfg.Storage.Files.Dir == "" {
		return fmt.Errorf("%w: either a files dir or an S3 bucket is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

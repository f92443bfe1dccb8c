// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid memory config", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing session signing key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSigningKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing owner token key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.OwnerTokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero session duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "sqlite with dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Driver = DriverSQLite
				cfg.Storage.DB.DSN = "portal.db"
			},
		},
		{
			name:    "no blob store",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.Dir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "s3 replaces files dir",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Files.Dir = ""
				cfg.Storage.S3.Bucket = "portal"
			},
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	ok := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}}
	assert.NoError(t, ok.validate())

	noAddr := &ClientConfig{Adapter: ClientAdapter{RequestTimeout: time.Second}}
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	noTimeout := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "localhost:8080"}}
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "")
	t.Setenv("CONFIG", "")

	cfg, err := GetClientConfig()
	if assert.NoError(t, err) {
		assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
		assert.Equal(t, defaultAdapterReqTimeout, cfg.Adapter.RequestTimeout)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/migrations"
)

func TestNewDB_PlaceholderFollowsDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{migrations.DialectPostgres, `UPDATE portal_links SET is_active = $1 WHERE id = $2`},
		{migrations.DialectSQLite, `UPDATE portal_links SET is_active = ? WHERE id = ?`},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, NewPostgresErrorClassifier(), logger.Nop())

			query, args, err := buildSetActiveQuery(db.builder, "id-1", true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{true, "id-1"}, args)
		})
	}
}

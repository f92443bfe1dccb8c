// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-portal/models"
)

const portalLinksTable = "portal_links"

// portalLinkColumns is the column order every full-row scan relies on.
var portalLinkColumns = []string{
	"id",
	"owner_id",
	"token",
	"label",
	"password_hash",
	"password_salt",
	"failed_attempts",
	"is_locked",
	"is_active",
	"expires_at",
	"created_at",
}

func buildGetLinkByTokenQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	return b.Select(portalLinkColumns...).
		From(portalLinksTable).
		Where(sq.Eq{"token": token}).
		ToSql()
}

func buildGetLinkAuthInfoQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	return b.Select(
		"id",
		"label",
		"is_active",
		"is_locked",
		"expires_at",
		"(password_hash IS NOT NULL AND password_salt IS NOT NULL) AS has_password",
	).
		From(portalLinksTable).
		Where(sq.Eq{"token": token}).
		ToSql()
}

func buildGetOwnedLinkQuery(b sq.StatementBuilderType, ownerID, linkID string) (string, []any, error) {
	return b.Select(portalLinkColumns...).
		From(portalLinksTable).
		Where(sq.Eq{"id": linkID, "owner_id": ownerID}).
		ToSql()
}

// buildIncrementFailedAttemptsQuery builds the single read-modify-write
// statement behind the lockout. Every SET expression reads the pre-update
// row, so "failed_attempts + 1" in the lock condition is the new count.
func buildIncrementFailedAttemptsQuery(b sq.StatementBuilderType, linkID string, threshold int) (string, []any, error) {
	return b.Update(portalLinksTable).
		Set("failed_attempts", sq.Expr("failed_attempts + 1")).
		Set("is_locked", sq.Expr("is_locked OR failed_attempts + 1 >= ?", threshold)).
		Where(sq.Eq{"id": linkID}).
		Suffix("RETURNING failed_attempts, is_locked").
		ToSql()
}

func buildSetPasswordQuery(b sq.StatementBuilderType, linkID, hash, salt string) (string, []any, error) {
	return b.Update(portalLinksTable).
		Set("password_hash", nullableString(hash)).
		Set("password_salt", nullableString(salt)).
		Set("failed_attempts", 0).
		Set("is_locked", false).
		Where(sq.Eq{"id": linkID}).
		ToSql()
}

func buildSetActiveQuery(b sq.StatementBuilderType, linkID string, active bool) (string, []any, error) {
	return b.Update(portalLinksTable).
		Set("is_active", active).
		Where(sq.Eq{"id": linkID}).
		ToSql()
}

func buildInsertLinkQuery(b sq.StatementBuilderType, link models.PortalLink) (string, []any, error) {
	return b.Insert(portalLinksTable).
		Columns(portalLinkColumns...).
		Values(
			link.ID,
			link.OwnerID,
			link.Token,
			link.Label,
			nullableString(link.PasswordHash),
			nullableString(link.PasswordSalt),
			link.FailedAttempts,
			link.IsLocked,
			link.IsActive,
			nullableTime(link.ExpiresAt),
			link.CreatedAt,
		).
		ToSql()
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
	"github.com/MKhiriev/go-doc-portal/models"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// portalLinkRepository is the SQL implementation of [PortalLinkRepository]
// shared by the PostgreSQL and SQLite backends; only the placeholder format
// and the error classifier differ.
//
// Idempotent statements (reads, SetPassword, SetActive) are retried on
// transient errors. IncrementFailedAttempts is never retried: a statement
// that failed on a broken connection may still have been applied, and a
// replay would count the attempt twice.
type portalLinkRepository struct {
	db      *DB
	logger  *logger.Logger
	backoff func() retry.Backoff
}

// NewPortalLinkRepository constructs a [PortalLinkRepository] backed by db.
func NewPortalLinkRepository(db *DB, logger *logger.Logger) PortalLinkRepository {
	logger.Debug().Msg("creating portal link repository")
	return &portalLinkRepository{
		db:     db,
		logger: logger,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))
		},
	}
}

func (r *portalLinkRepository) GetLinkByToken(ctx context.Context, token string) (models.PortalLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLinkByTokenQuery(r.db.builder, token)
	if err != nil {
		return models.PortalLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var link models.PortalLink
	err = r.withRetry(ctx, func(ctx context.Context) error {
		link, err = scanPortalLink(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrLinkNotFound) {
			log.Err(err).
				Str("func", "portalLinkRepository.GetLinkByToken").
				Str("token_fp", utils.Fingerprint(token)).
				Msg("failed to get portal link")
		}
		return models.PortalLink{}, err
	}

	return link, nil
}

func (r *portalLinkRepository) GetLinkAuthInfo(ctx context.Context, token string) (models.LinkAuthInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLinkAuthInfoQuery(r.db.builder, token)
	if err != nil {
		return models.LinkAuthInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var info models.LinkAuthInfo
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var expiresAt sql.NullTime
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(
			&info.ID,
			&info.Label,
			&info.IsActive,
			&info.IsLocked,
			&expiresAt,
			&info.HasPassword,
		)
		if scanErr != nil {
			return scanErr
		}
		info.ExpiresAt = timePtr(expiresAt)
		return nil
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LinkAuthInfo{}, ErrLinkNotFound
		}
		log.Err(err).
			Str("func", "portalLinkRepository.GetLinkAuthInfo").
			Str("token_fp", utils.Fingerprint(token)).
			Msg("failed to get portal link auth info")
		return models.LinkAuthInfo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return info, nil
}

func (r *portalLinkRepository) GetOwnedLink(ctx context.Context, ownerID, linkID string) (models.PortalLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOwnedLinkQuery(r.db.builder, ownerID, linkID)
	if err != nil {
		return models.PortalLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var link models.PortalLink
	err = r.withRetry(ctx, func(ctx context.Context) error {
		link, err = scanPortalLink(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrLinkNotFound) {
			log.Err(err).
				Str("func", "portalLinkRepository.GetOwnedLink").
				Str("link_id", linkID).
				Msg("failed to get owned portal link")
		}
		return models.PortalLink{}, err
	}

	return link, nil
}

func (r *portalLinkRepository) IncrementFailedAttempts(ctx context.Context, linkID string, threshold int) (models.FailedAttemptsResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIncrementFailedAttemptsQuery(r.db.builder, linkID, threshold)
	if err != nil {
		return models.FailedAttemptsResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result models.FailedAttemptsResult
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&result.Count, &result.IsLocked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FailedAttemptsResult{}, ErrLinkNotFound
		}
		log.Err(err).
			Str("func", "portalLinkRepository.IncrementFailedAttempts").
			Str("link_id", linkID).
			Msg("failed to increment failed attempts")
		return models.FailedAttemptsResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result, nil
}

func (r *portalLinkRepository) SetPassword(ctx context.Context, linkID, hash, salt string) error {
	query, args, err := buildSetPasswordQuery(r.db.builder, linkID, hash, salt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execSingleRow(ctx, "portalLinkRepository.SetPassword", linkID, query, args)
}

func (r *portalLinkRepository) SetActive(ctx context.Context, linkID string, active bool) error {
	query, args, err := buildSetActiveQuery(r.db.builder, linkID, active)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execSingleRow(ctx, "portalLinkRepository.SetActive", linkID, query, args)
}

func (r *portalLinkRepository) CreateLink(ctx context.Context, link models.PortalLink) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLinkQuery(r.db.builder, link)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrTokenAlreadyExists
		}
		log.Err(err).
			Str("func", "portalLinkRepository.CreateLink").
			Str("link_id", link.ID).
			Msg("failed to insert portal link")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// execSingleRow runs an idempotent UPDATE that must touch exactly one row.
func (r *portalLinkRepository) execSingleRow(ctx context.Context, funcName, linkID, query string, args []any) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Str("link_id", linkID).Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

// withRetry runs fn again while the classifier reports a transient error.
func (r *portalLinkRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	return retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func scanPortalLink(row *sql.Row) (models.PortalLink, error) {
	var (
		link         models.PortalLink
		passwordHash sql.NullString
		passwordSalt sql.NullString
		expiresAt    sql.NullTime
	)

	err := row.Scan(
		&link.ID,
		&link.OwnerID,
		&link.Token,
		&link.Label,
		&passwordHash,
		&passwordSalt,
		&link.FailedAttempts,
		&link.IsLocked,
		&link.IsActive,
		&expiresAt,
		&link.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PortalLink{}, ErrLinkNotFound
	}
	if err != nil {
		return models.PortalLink{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	link.PasswordHash = passwordHash.String
	link.PasswordSalt = passwordSalt.String
	link.ExpiresAt = timePtr(expiresAt)

	return link, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

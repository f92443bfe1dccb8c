// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-portal/internal/crypto"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/store"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
	"github.com/MKhiriev/go-doc-portal/models"
)

// LockoutThreshold is the number of wrong passwords after which a link is
// locked until its owner rotates the password.
const LockoutThreshold = 5

// portalAccessService is the concrete [PortalAccessService].
type portalAccessService struct {
	links    store.PortalLinkRepository
	hasher   crypto.PasswordHasher
	sessions crypto.SessionTokenCodec

	// now is the clock used for link expiry.
	now func() time.Time

	logger *logger.Logger
}

// NewPortalAccessService wires the access guard to its collaborators.
func NewPortalAccessService(
	links store.PortalLinkRepository,
	hasher crypto.PasswordHasher,
	sessions crypto.SessionTokenCodec,
	logger *logger.Logger,
) PortalAccessService {
	return newPortalAccessService(links, hasher, sessions, time.Now, logger)
}

func newPortalAccessService(
	links store.PortalLinkRepository,
	hasher crypto.PasswordHasher,
	sessions crypto.SessionTokenCodec,
	now func() time.Time,
	logger *logger.Logger,
) *portalAccessService {
	return &portalAccessService{
		links:    links,
		hasher:   hasher,
		sessions: sessions,
		now:      now,
		logger:   logger,
	}
}

// VerifyLinkUsable implements [PortalAccessService]. Non-active states are
// reported through the Status field, not as errors.
func (s *portalAccessService) VerifyLinkUsable(ctx context.Context, token string) (models.LinkUsability, error) {
	info, err := s.links.GetLinkAuthInfo(ctx, token)
	if err != nil {
		return models.LinkUsability{}, s.mapLookupError(ctx, "VerifyLinkUsable", token, err)
	}

	status := linkStatus(info, s.now())
	if status != models.LinkActive {
		return models.LinkUsability{Status: status}, nil
	}

	return models.LinkUsability{
		Status:           models.LinkActive,
		Label:            info.Label,
		PasswordRequired: info.HasPassword,
	}, nil
}

// VerifyPassword implements [PortalAccessService].
//
// The KDF runs between two independent storage calls; nothing is held
// across it. The lock decision is taken from the row returned by the atomic
// increment, never from the earlier read.
func (s *portalAccessService) VerifyPassword(ctx context.Context, token, password string) (models.PasswordVerification, error) {
	log := logger.FromContext(ctx)

	link, err := s.links.GetLinkByToken(ctx, token)
	if err != nil {
		return models.PasswordVerification{}, s.mapLookupError(ctx, "VerifyPassword", token, err)
	}

	if err = statusError(linkStatus(link.AuthInfo(), s.now())); err != nil {
		if errors.Is(err, ErrLinkLocked) {
			return models.PasswordVerification{Locked: true}, err
		}
		return models.PasswordVerification{}, err
	}
	if !link.HasPassword() {
		return models.PasswordVerification{}, ErrPasswordNotRequired
	}

	// The state was read before the KDF; a concurrent miss may have locked
	// the link since. AuthorizeLinkOperation re-reads it on every use.
	if s.hasher.Verify(password, link.PasswordHash, link.PasswordSalt) {
		session, err := s.sessions.Issue(link.ID)
		if err != nil {
			log.Err(err).Str("func", "portalAccessService.VerifyPassword").Str("link_id", link.ID).Msg("failed to issue session token")
			return models.PasswordVerification{}, fmt.Errorf("failed to issue session token: %w", err)
		}
		return models.PasswordVerification{Session: &session}, nil
	}

	res, err := s.links.IncrementFailedAttempts(ctx, link.ID, LockoutThreshold)
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return models.PasswordVerification{}, ErrLinkNotFound
		}
		log.Err(err).Str("func", "portalAccessService.VerifyPassword").Str("link_id", link.ID).Msg("failed to count wrong password")
		return models.PasswordVerification{}, fmt.Errorf("failed to count wrong password: %w", err)
	}

	log.Warn().
		Str("link_id", link.ID).
		Int("failed_attempts", res.Count).
		Bool("locked", res.IsLocked).
		Msg("wrong portal password")

	if res.IsLocked {
		return models.PasswordVerification{Locked: true}, ErrLinkLocked
	}

	return models.PasswordVerification{RemainingAttempts: remainingAttempts(res.Count)}, ErrWrongPassword
}

// AuthorizeLinkOperation implements [PortalAccessService].
func (s *portalAccessService) AuthorizeLinkOperation(ctx context.Context, token, sessionToken string) (models.PortalLink, error) {
	link, err := s.links.GetLinkByToken(ctx, token)
	if err != nil {
		return models.PortalLink{}, s.mapLookupError(ctx, "AuthorizeLinkOperation", token, err)
	}

	if err = statusError(linkStatus(link.AuthInfo(), s.now())); err != nil {
		return models.PortalLink{}, err
	}

	if link.HasPassword() {
		if sessionToken == "" {
			return models.PortalLink{}, crypto.ErrSessionInvalid
		}
		linkID, err := s.sessions.Verify(sessionToken)
		if err != nil || linkID != link.ID {
			logger.FromContext(ctx).Debug().Str("link_id", link.ID).Msg("session token rejected")
			return models.PortalLink{}, crypto.ErrSessionInvalid
		}
	}

	link.PasswordHash = ""
	link.PasswordSalt = ""

	return link, nil
}

func (s *portalAccessService) mapLookupError(ctx context.Context, funcName, token string, err error) error {
	if errors.Is(err, store.ErrLinkNotFound) {
		return ErrLinkNotFound
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "portalAccessService."+funcName).
		Str("token_fp", utils.Fingerprint(token)).
		Msg("failed to look up portal link")

	return fmt.Errorf("failed to look up portal link: %w", err)
}

// linkStatus applies the state precedence: locked, inactive, expired,
// active. A link is expired from its expiry instant on.
func linkStatus(info models.LinkAuthInfo, now time.Time) models.LinkStatus {
	switch {
	case info.IsLocked:
		return models.LinkLocked
	case !info.IsActive:
		return models.LinkInactive
	case info.ExpiresAt != nil && !now.Before(*info.ExpiresAt):
		return models.LinkExpired
	default:
		return models.LinkActive
	}
}

func statusError(status models.LinkStatus) error {
	switch status {
	case models.LinkLocked:
		return ErrLinkLocked
	case models.LinkInactive:
		return ErrLinkInactive
	case models.LinkExpired:
		return ErrLinkExpired
	default:
		return nil
	}
}

func remainingAttempts(failed int) int {
	return max(0, LockoutThreshold-failed)
}

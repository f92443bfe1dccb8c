package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-doc-portal/internal/crypto"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/store"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
	"github.com/MKhiriev/go-doc-portal/internal/validators"
	"github.com/MKhiriev/go-doc-portal/models"
)

const (
	linkTokenBytes = 32

	// maxTokenCollisions bounds CreateLink retries on a duplicate token.
	maxTokenCollisions = 3
)

// linkAdminService is the concrete [LinkAdminService].
type linkAdminService struct {
	links     store.PortalLinkRepository
	generator crypto.PasswordGenerator
	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       *utils.UUIDGenerator

	random io.Reader
	now    func() time.Time

	logger *logger.Logger
}

func NewLinkAdminService(
	links store.PortalLinkRepository,
	generator crypto.PasswordGenerator,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	logger *logger.Logger,
) LinkAdminService {
	return &linkAdminService{
		links:     links,
		generator: generator,
		hasher:    hasher,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		random:    rand.Reader,
		now:       time.Now,
		logger:    logger,
	}
}

// CreateLink implements [LinkAdminService]. The plaintext password, if any,
// is only ever returned here.
func (s *linkAdminService) CreateLink(ctx context.Context, ownerID string, req models.CreateLinkRequest) (models.CreatedLink, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return models.CreatedLink{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.CreatedLink{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	link := models.PortalLink{
		ID:        s.ids.Generate(),
		OwnerID:   ownerID,
		Label:     req.Label,
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
		CreatedAt: s.now().UTC(),
	}
	if link.ExpiresAt != nil {
		expires := link.ExpiresAt.UTC()
		link.ExpiresAt = &expires
	}

	var password string
	if req.PasswordProtected {
		var err error
		password, link.PasswordHash, link.PasswordSalt, err = s.newPassword()
		if err != nil {
			log.Err(err).Str("func", "linkAdminService.CreateLink").Msg("failed to create link password")
			return models.CreatedLink{}, err
		}
	}

	for attempt := 1; ; attempt++ {
		token, err := s.newToken()
		if err != nil {
			log.Err(err).Str("func", "linkAdminService.CreateLink").Msg("failed to generate link token")
			return models.CreatedLink{}, err
		}
		link.Token = token

		err = s.links.CreateLink(ctx, link)
		if err == nil {
			break
		}
		if errors.Is(err, store.ErrTokenAlreadyExists) && attempt < maxTokenCollisions {
			log.Warn().Int("attempt", attempt).Msg("link token collision, regenerating")
			continue
		}
		log.Err(err).Str("func", "linkAdminService.CreateLink").Str("owner_id", ownerID).Msg("failed to store link")
		return models.CreatedLink{}, fmt.Errorf("failed to store link: %w", err)
	}

	log.Info().Str("link_id", link.ID).Bool("password_protected", req.PasswordProtected).Msg("portal link created")

	link.PasswordHash = ""
	link.PasswordSalt = ""

	return models.CreatedLink{Link: link, Password: password}, nil
}

// RotatePassword implements [LinkAdminService].
func (s *linkAdminService) RotatePassword(ctx context.Context, ownerID, linkID string) (string, error) {
	log := logger.FromContext(ctx)

	if _, err := s.ownedLink(ctx, ownerID, linkID); err != nil {
		return "", err
	}

	password, hash, salt, err := s.newPassword()
	if err != nil {
		log.Err(err).Str("func", "linkAdminService.RotatePassword").Msg("failed to create link password")
		return "", err
	}

	if err = s.links.SetPassword(ctx, linkID, hash, salt); err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return "", ErrLinkNotFound
		}
		return "", fmt.Errorf("failed to set link password: %w", err)
	}

	log.Info().Str("link_id", linkID).Msg("portal link password rotated")

	return password, nil
}

// SetActive implements [LinkAdminService].
func (s *linkAdminService) SetActive(ctx context.Context, ownerID, linkID string, active bool) error {
	if _, err := s.ownedLink(ctx, ownerID, linkID); err != nil {
		return err
	}

	if err := s.links.SetActive(ctx, linkID, active); err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to update link: %w", err)
	}

	logger.FromContext(ctx).Info().Str("link_id", linkID).Bool("active", active).Msg("portal link activation changed")

	return nil
}

func (s *linkAdminService) ownedLink(ctx context.Context, ownerID, linkID string) (models.PortalLink, error) {
	if ownerID == "" || linkID == "" {
		return models.PortalLink{}, ErrLinkNotFound
	}

	link, err := s.links.GetOwnedLink(ctx, ownerID, linkID)
	if errors.Is(err, store.ErrLinkNotFound) {
		return models.PortalLink{}, ErrLinkNotFound
	}
	if err != nil {
		return models.PortalLink{}, fmt.Errorf("failed to look up link: %w", err)
	}

	return link, nil
}

func (s *linkAdminService) newPassword() (password, hash, salt string, err error) {
	password, err = s.generator.Generate(crypto.DefaultPasswordLength)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to generate password: %w", err)
	}

	hash, salt, err = s.hasher.Hash(password)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	return password, hash, salt, nil
}

// newToken returns 32 random bytes, base64url-encoded without padding.
func (s *linkAdminService) newToken() (string, error) {
	buf := make([]byte, linkTokenBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("failed to generate link token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

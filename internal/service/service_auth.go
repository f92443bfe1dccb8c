package service

import (
	"context"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
	"github.com/MKhiriev/go-doc-portal/models"
)

// ownerAuthService verifies HS256 JWTs the identity provider issues to link
// owners. It never issues tokens itself.
type ownerAuthService struct {
	// tokenSignKey is the HMAC secret shared with the identity provider.
	tokenSignKey string

	// tokenIssuer, when non-empty, must match the "iss" claim.
	tokenIssuer string

	logger *logger.Logger
}

// NewOwnerAuthService constructs an [OwnerAuthService] from cfg.
func NewOwnerAuthService(cfg config.App, logger *logger.Logger) OwnerAuthService {
	return &ownerAuthService{
		tokenSignKey: cfg.OwnerTokenSignKey,
		tokenIssuer:  cfg.OwnerTokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, missing subject)
// is normalised to ErrOwnerTokenInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *ownerAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("owner token rejected")
		return models.Token{}, ErrOwnerTokenInvalid
	}

	return token, nil
}

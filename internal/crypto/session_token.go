// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a portal session token stays valid. The
// issue time is truncated to whole seconds, the resolution of the exp claim.
const DefaultSessionTTL = 60 * time.Minute

// SessionTokenOption customises a session codec.
type SessionTokenOption func(*sessionTokenCodec)

// WithClock replaces time.Now as the codec's time source.
func WithClock(now func() time.Time) SessionTokenOption {
	return func(c *sessionTokenCodec) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTTL overrides [DefaultSessionTTL]. Non-positive values are ignored.
func WithTTL(ttl time.Duration) SessionTokenOption {
	return func(c *sessionTokenCodec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// sessionTokenCodec implements [SessionTokenCodec] with compact HS256 JWS
// tokens: base64url(header).base64url(payload).base64url(signature).
//
// The payload holds only the link ID ("lid") and the expiry ("exp"). Nothing
// is stored server side; the secret is the only shared state and must be the
// same on every instance that verifies tokens.
type sessionTokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewSessionTokenCodec builds a codec signing with secret. An empty secret is
// a configuration error ([ErrMissingSigningSecret]).
func NewSessionTokenCodec(secret string, opts ...SessionTokenOption) (SessionTokenCodec, error) {
	if secret == "" {
		return nil, ErrMissingSigningSecret
	}

	c := &sessionTokenCodec{
		secret: []byte(secret),
		ttl:    DefaultSessionTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)

	return c, nil
}

// Issue implements [SessionTokenCodec].
func (c *sessionTokenCodec) Issue(linkID string) (models.SessionToken, error) {
	if linkID == "" {
		return models.SessionToken{}, ErrEmptyLinkID
	}

	claims := models.SessionClaims{
		LinkID: linkID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(c.now().Truncate(time.Second).Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error signing session token: %w", err)
	}

	return models.SessionToken{
		LinkID:    linkID,
		Value:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify implements [SessionTokenCodec]. The signature is checked with
// hmac.Equal by the jwt package before any claim is trusted.
func (c *sessionTokenCodec) Verify(token string) (string, error) {
	claims := &models.SessionClaims{}

	parsed, err := c.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil || !parsed.Valid || claims.LinkID == "" {
		return "", ErrSessionInvalid
	}

	return claims.LinkID, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LinkStatus describes whether a portal link may currently be used by an
// anonymous client.
type LinkStatus string

const (
	// LinkActive means the link is usable. Password-protected links still
	// require a session token for every file operation.
	LinkActive LinkStatus = "active"

	// LinkInactive means the owner has disabled the link.
	LinkInactive LinkStatus = "inactive"

	// LinkExpired means the link's expiry instant has passed.
	LinkExpired LinkStatus = "expired"

	// LinkLocked means too many wrong passwords were submitted. Only a
	// password rotation by the owner clears it.
	LinkLocked LinkStatus = "locked"
)

// PortalLink is a token-addressable upload/download endpoint created by an
// owner for a single counterparty.
//
// PasswordHash and PasswordSalt are either both set or both empty. They are
// never serialized to JSON.
type PortalLink struct {
	// ID is the immutable link identifier (UUIDv7).
	ID string `json:"id"`

	// OwnerID is the identity-provider subject of the owner.
	OwnerID string `json:"owner_id"`

	// Token is the high-entropy opaque string anonymous clients use to
	// address the link.
	Token string `json:"token"`

	// Label is a human readable name shown to the counterparty.
	Label string `json:"label"`

	PasswordHash string `json:"-"`
	PasswordSalt string `json:"-"`

	// FailedAttempts counts wrong passwords since the last rotation.
	FailedAttempts int `json:"failed_attempts"`

	IsLocked bool `json:"is_locked"`
	IsActive bool `json:"is_active"`

	// ExpiresAt is optional; nil means the link never expires.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// HasPassword reports whether the link is password-protected.
func (l PortalLink) HasPassword() bool {
	return l.PasswordHash != "" && l.PasswordSalt != ""
}

// AuthInfo returns the reduced view of the link used by anonymous flows.
func (l PortalLink) AuthInfo() LinkAuthInfo {
	return LinkAuthInfo{
		ID:          l.ID,
		Label:       l.Label,
		IsActive:    l.IsActive,
		IsLocked:    l.IsLocked,
		ExpiresAt:   l.ExpiresAt,
		HasPassword: l.HasPassword(),
	}
}

// LinkAuthInfo is the reduced-privilege projection of a [PortalLink]. It
// carries everything needed to decide usability but no credential material.
type LinkAuthInfo struct {
	ID          string
	Label       string
	IsActive    bool
	IsLocked    bool
	ExpiresAt   *time.Time
	HasPassword bool
}

// FailedAttemptsResult is the post-increment state returned by the storage
// layer after a wrong password.
type FailedAttemptsResult struct {
	Count    int
	IsLocked bool
}

// CreateLinkRequest is the owner's request for a new portal link.
type CreateLinkRequest struct {
	Label             string     `json:"label"`
	PasswordProtected bool       `json:"password_protected"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
}

// CreatedLink is returned once to the owner after a link is created. Password
// is the plaintext one-time password and is empty for unprotected links.
type CreatedLink struct {
	Link     PortalLink `json:"link"`
	Password string     `json:"password,omitempty"`
}

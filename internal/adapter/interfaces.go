// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the portal HTTP API.
//
// [PortalAdapter] hides the transport from cmd/client. Non-2xx responses are
// mapped by mapHTTPError to the sentinel errors in errors.go so callers can
// use [errors.Is] (e.g. [ErrLocked] for 423, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-doc-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PortalAdapter talks to one portal server.
type PortalAdapter interface {
	// SetSession stores the portal session token sent with file requests.
	SetSession(token string)

	// Session returns the stored session token, or "".
	Session() string

	// SetOwnerToken stores the owner's bearer JWT used by the owner calls.
	SetOwnerToken(token string)

	// LinkStatus reports the state of the link. Locked, inactive and
	// expired links are reported through Status with a nil error.
	LinkStatus(ctx context.Context, linkToken string) (models.LinkUsability, error)

	// VerifyPassword submits a password. On success the session is stored
	// via SetSession. A wrong password returns [ErrWrongPassword] with
	// RemainingAttempts set; a locked link returns [ErrLocked] with Locked
	// set.
	VerifyPassword(ctx context.Context, linkToken, password string) (models.PasswordVerification, error)

	ListFiles(ctx context.Context, linkToken string) ([]models.PortalFile, error)
	UploadFile(ctx context.Context, linkToken, name string, r io.Reader) (models.PortalFile, error)

	// DownloadFile streams the file into w and returns the number of bytes
	// written.
	DownloadFile(ctx context.Context, linkToken, name string, w io.Writer) (int64, error)

	CreateLink(ctx context.Context, req models.CreateLinkRequest) (models.CreatedLink, error)
	RotatePassword(ctx context.Context, linkID string) (models.RotatedPassword, error)
	SetActive(ctx context.Context, linkID string, active bool) error

	ServerVersion(ctx context.Context) (string, error)
}

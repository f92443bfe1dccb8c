package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-doc-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PortalAccessService is the anonymous-facing access guard for portal links.
//
// Link state is evaluated in a fixed precedence on every call: locked,
// inactive, expired, active. Nothing is cached between calls.
type PortalAccessService interface {
	// VerifyLinkUsable reports the link's state. Label and PasswordRequired
	// are only filled for an active link. Unknown token → [ErrLinkNotFound].
	VerifyLinkUsable(ctx context.Context, token string) (models.LinkUsability, error)

	// VerifyPassword checks password against the link. A correct password
	// yields a session token and leaves the failure counter untouched. A
	// wrong one is counted atomically and returns [ErrWrongPassword] with the
	// remaining attempts, or [ErrLinkLocked] with Locked set once the
	// threshold is reached.
	VerifyPassword(ctx context.Context, token, password string) (models.PasswordVerification, error)

	// AuthorizeLinkOperation re-validates link state and, for
	// password-protected links, the session token. It returns the link
	// without credential material.
	AuthorizeLinkOperation(ctx context.Context, token, sessionToken string) (models.PortalLink, error)
}

// LinkAdminService is the owner-facing surface. Every method is scoped to
// ownerID; links of other owners are reported as not found.
type LinkAdminService interface {
	CreateLink(ctx context.Context, ownerID string, req models.CreateLinkRequest) (models.CreatedLink, error)

	// RotatePassword sets a fresh one-time password, which also clears the
	// lock and the failure counter, and returns the plaintext once.
	RotatePassword(ctx context.Context, ownerID, linkID string) (string, error)

	SetActive(ctx context.Context, ownerID, linkID string, active bool) error
}

// PortalFilesService moves files through an already authorized link.
type PortalFilesService interface {
	List(ctx context.Context, link models.PortalLink) ([]models.PortalFile, error)
	Upload(ctx context.Context, link models.PortalLink, name string, size int64, r io.Reader) (models.PortalFile, error)
	Download(ctx context.Context, link models.PortalLink, name string) (io.ReadCloser, models.PortalFile, error)
}

// OwnerAuthService verifies bearer tokens issued to owners by the identity
// provider.
type OwnerAuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

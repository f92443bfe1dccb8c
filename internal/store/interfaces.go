package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-doc-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PortalLinkRepository persists portal links.
//
// Lookups by token are point queries on a unique column; nothing in this
// interface enumerates links for anonymous callers.
type PortalLinkRepository interface {
	// GetLinkByToken returns the full link record, including credential
	// material. Unknown token → [ErrLinkNotFound].
	GetLinkByToken(ctx context.Context, token string) (models.PortalLink, error)

	// GetLinkAuthInfo returns the reduced-privilege projection used to
	// decide usability. Unknown token → [ErrLinkNotFound].
	GetLinkAuthInfo(ctx context.Context, token string) (models.LinkAuthInfo, error)

	// GetOwnedLink returns the link with linkID if it belongs to ownerID.
	// Missing or foreign links → [ErrLinkNotFound].
	GetOwnedLink(ctx context.Context, ownerID, linkID string) (models.PortalLink, error)

	// IncrementFailedAttempts adds one to the link's failure counter and sets
	// the lock once the new value reaches threshold, as a single atomic
	// step. It returns the post-increment state.
	IncrementFailedAttempts(ctx context.Context, linkID string, threshold int) (models.FailedAttemptsResult, error)

	// SetPassword replaces hash and salt and, in the same update, resets
	// the failure counter and clears the lock.
	SetPassword(ctx context.Context, linkID, hash, salt string) error

	// CreateLink stores a new link. A token collision → [ErrTokenAlreadyExists].
	CreateLink(ctx context.Context, link models.PortalLink) error

	// SetActive flips the owner kill switch.
	SetActive(ctx context.Context, linkID string, active bool) error
}

// FileStorage keeps the files exchanged through portal links, namespaced by
// link ID. Names must already be sanitized base names.
type FileStorage interface {
	// List returns the files stored under linkID, sorted by name.
	List(ctx context.Context, linkID string) ([]models.PortalFile, error)

	// Save stores r under linkID/name, replacing any existing file.
	// size may be -1 when unknown.
	Save(ctx context.Context, linkID, name string, size int64, r io.Reader) (models.PortalFile, error)

	// Open returns a reader for linkID/name. The caller closes it.
	// Missing file → [ErrFileNotFound].
	Open(ctx context.Context, linkID, name string) (io.ReadCloser, models.PortalFile, error)
}

// ErrorClassificator decides how a failed database call should be handled.
type ErrorClassificator interface {
	// Classify reports whether err is worth retrying.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint failure.
	IsUniqueViolation(err error) bool
}

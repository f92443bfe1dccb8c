package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-doc-portal/models"
)

// memoryPortalLinkRepository keeps links in process memory. A single mutex
// guards both indexes, so every method is one atomic step.
type memoryPortalLinkRepository struct {
	mu      sync.Mutex
	byID    map[string]*models.PortalLink
	byToken map[string]string
}

// NewMemoryPortalLinkRepository returns an empty in-memory [PortalLinkRepository].
func NewMemoryPortalLinkRepository() PortalLinkRepository {
	return &memoryPortalLinkRepository{
		byID:    make(map[string]*models.PortalLink),
		byToken: make(map[string]string),
	}
}

func (m *memoryPortalLinkRepository) GetLinkByToken(_ context.Context, token string) (models.PortalLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.lookupToken(token)
	if !ok {
		return models.PortalLink{}, ErrLinkNotFound
	}
	return copyLink(link), nil
}

func (m *memoryPortalLinkRepository) GetLinkAuthInfo(_ context.Context, token string) (models.LinkAuthInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.lookupToken(token)
	if !ok {
		return models.LinkAuthInfo{}, ErrLinkNotFound
	}
	return copyLink(link).AuthInfo(), nil
}

func (m *memoryPortalLinkRepository) GetOwnedLink(_ context.Context, ownerID, linkID string) (models.PortalLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.byID[linkID]
	if !ok || link.OwnerID != ownerID {
		return models.PortalLink{}, ErrLinkNotFound
	}
	return copyLink(link), nil
}

func (m *memoryPortalLinkRepository) IncrementFailedAttempts(_ context.Context, linkID string, threshold int) (models.FailedAttemptsResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.byID[linkID]
	if !ok {
		return models.FailedAttemptsResult{}, ErrLinkNotFound
	}

	link.FailedAttempts++
	if link.FailedAttempts >= threshold {
		link.IsLocked = true
	}

	return models.FailedAttemptsResult{Count: link.FailedAttempts, IsLocked: link.IsLocked}, nil
}

func (m *memoryPortalLinkRepository) SetPassword(_ context.Context, linkID, hash, salt string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.byID[linkID]
	if !ok {
		return ErrLinkNotFound
	}

	link.PasswordHash = hash
	link.PasswordSalt = salt
	link.FailedAttempts = 0
	link.IsLocked = false
	return nil
}

func (m *memoryPortalLinkRepository) CreateLink(_ context.Context, link models.PortalLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byToken[link.Token]; exists {
		return ErrTokenAlreadyExists
	}
	if _, exists := m.byID[link.ID]; exists {
		return ErrTokenAlreadyExists
	}

	stored := copyLink(&link)
	m.byID[link.ID] = &stored
	m.byToken[link.Token] = link.ID
	return nil
}

func (m *memoryPortalLinkRepository) SetActive(_ context.Context, linkID string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.byID[linkID]
	if !ok {
		return ErrLinkNotFound
	}
	link.IsActive = active
	return nil
}

func (m *memoryPortalLinkRepository) lookupToken(token string) (*models.PortalLink, bool) {
	id, ok := m.byToken[token]
	if !ok {
		return nil, false
	}
	link, ok := m.byID[id]
	return link, ok
}

// copyLink detaches the ExpiresAt pointer so callers cannot mutate stored state.
func copyLink(link *models.PortalLink) models.PortalLink {
	c := *link
	if link.ExpiresAt != nil {
		t := *link.ExpiresAt
		c.ExpiresAt = &t
	}
	return c
}

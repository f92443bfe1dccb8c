package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/mock"
	"github.com/MKhiriev/go-doc-portal/internal/store"
	"github.com/MKhiriev/go-doc-portal/internal/validators"
	"github.com/MKhiriev/go-doc-portal/models"
)

type adminMocks struct {
	links     *mock.MockPortalLinkRepository
	generator *mock.MockPasswordGenerator
	hasher    *mock.MockPasswordHasher
}

func newAdminService(t *testing.T) (*linkAdminService, adminMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := adminMocks{
		links:     mock.NewMockPortalLinkRepository(ctrl),
		generator: mock.NewMockPasswordGenerator(ctrl),
		hasher:    mock.NewMockPasswordHasher(ctrl),
	}
	validator := validators.NewPortalValidatorWithClock(func() time.Time { return testNow })
	svc := NewLinkAdminService(m.links, m.generator, m.hasher, validator, logger.Nop()).(*linkAdminService)
	svc.now = func() time.Time { return testNow }
	return svc, m
}

// ─────────────────────────────────────────────
// CreateLink
// ─────────────────────────────────────────────

func TestCreateLink_PasswordProtected(t *testing.T) {
	svc, m := newAdminService(t)
	expires := testNow.Add(24 * time.Hour)

	m.generator.EXPECT().Generate(12).Return("Abc123Def456", nil)
	m.hasher.EXPECT().Hash("Abc123Def456").Return("hash", "salt", nil)

	var stored models.PortalLink
	m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, link models.PortalLink) error {
			stored = link
			return nil
		})

	created, err := svc.CreateLink(context.Background(), "owner-1", models.CreateLinkRequest{
		Label:             "Contracts",
		PasswordProtected: true,
		ExpiresAt:         &expires,
	})
	require.NoError(t, err)

	assert.Equal(t, "Abc123Def456", created.Password)
	assert.Equal(t, "hash", stored.PasswordHash)
	assert.Equal(t, "salt", stored.PasswordSalt)
	assert.True(t, stored.IsActive)
	assert.Equal(t, "owner-1", stored.OwnerID)
	assert.Equal(t, testNow, stored.CreatedAt)

	id, err := uuid.Parse(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	raw, err := base64.RawURLEncoding.DecodeString(stored.Token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	// credentials never leave the service
	assert.Empty(t, created.Link.PasswordHash)
	assert.Empty(t, created.Link.PasswordSalt)
	assert.Equal(t, stored.Token, created.Link.Token)
}

func TestCreateLink_Unprotected(t *testing.T) {
	svc, m := newAdminService(t)

	m.generator.EXPECT().Generate(gomock.Any()).Times(0)
	m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, link models.PortalLink) error {
			assert.False(t, link.HasPassword())
			return nil
		})

	created, err := svc.CreateLink(context.Background(), "owner-1", models.CreateLinkRequest{Label: "Open"})
	require.NoError(t, err)
	assert.Empty(t, created.Password)
}

func TestCreateLink_RetriesTokenCollision(t *testing.T) {
	svc, m := newAdminService(t)

	var tokens []string
	m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, link models.PortalLink) error {
			tokens = append(tokens, link.Token)
			if len(tokens) == 1 {
				return store.ErrTokenAlreadyExists
			}
			return nil
		}).Times(2)

	_, err := svc.CreateLink(context.Background(), "owner-1", models.CreateLinkRequest{})
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0], tokens[1])
}

func TestCreateLink_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, m := newAdminService(t)

	m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
		Return(store.ErrTokenAlreadyExists).Times(maxTokenCollisions)

	_, err := svc.CreateLink(context.Background(), "owner-1", models.CreateLinkRequest{})
	assert.ErrorIs(t, err, store.ErrTokenAlreadyExists)
}

func TestCreateLink_InvalidInput(t *testing.T) {
	svc, m := newAdminService(t)
	m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateLink(context.Background(), "", models.CreateLinkRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	past := testNow.Add(-time.Minute)
	_, err = svc.CreateLink(context.Background(), "owner-1", models.CreateLinkRequest{ExpiresAt: &past})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrExpiryNotInFuture)
}

func TestCreateLink_RandomSourceFailure(t *testing.T) {
	svc, m := newAdminService(t)
	svc.random = bytes.NewReader(make([]byte, 10))
	m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateLink(context.Background(), "owner-1", models.CreateLinkRequest{})
	assert.Error(t, err)
}

func TestCreateLink_HashFailure(t *testing.T) {
	svc, m := newAdminService(t)
	boom := errors.New("boom")

	m.generator.EXPECT().Generate(12).Return("pw", nil)
	m.hasher.EXPECT().Hash("pw").Return("", "", boom)
	m.links.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateLink(context.Background(), "owner-1", models.CreateLinkRequest{PasswordProtected: true})
	assert.ErrorIs(t, err, boom)
}

// ─────────────────────────────────────────────
// RotatePassword
// ─────────────────────────────────────────────

func TestRotatePassword(t *testing.T) {
	t.Run("owned link", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.links.EXPECT().GetOwnedLink(gomock.Any(), "owner-1", "link-1").Return(models.PortalLink{ID: "link-1", IsLocked: true}, nil)
		m.generator.EXPECT().Generate(12).Return("NewPassword1", nil)
		m.hasher.EXPECT().Hash("NewPassword1").Return("h2", "s2", nil)
		m.links.EXPECT().SetPassword(gomock.Any(), "link-1", "h2", "s2").Return(nil)

		pw, err := svc.RotatePassword(context.Background(), "owner-1", "link-1")
		require.NoError(t, err)
		assert.Equal(t, "NewPassword1", pw)
	})

	t.Run("foreign link", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.links.EXPECT().GetOwnedLink(gomock.Any(), "intruder", "link-1").Return(models.PortalLink{}, store.ErrLinkNotFound)
		m.links.EXPECT().SetPassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.RotatePassword(context.Background(), "intruder", "link-1")
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("empty IDs", func(t *testing.T) {
		svc, _ := newAdminService(t)

		_, err := svc.RotatePassword(context.Background(), "", "link-1")
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})
}

func TestRotatePassword_ClearsLockEndToEnd(t *testing.T) {
	repo := store.NewMemoryPortalLinkRepository()
	ctrl := gomock.NewController(t)
	generator := mock.NewMockPasswordGenerator(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewLinkAdminService(repo, generator, hasher, validators.NewPortalValidator(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.CreateLink(ctx, models.PortalLink{
		ID: "link-1", OwnerID: "owner-1", Token: "tok", PasswordHash: "h", PasswordSalt: "s", IsActive: true,
	}))
	for range LockoutThreshold {
		_, err := repo.IncrementFailedAttempts(ctx, "link-1", LockoutThreshold)
		require.NoError(t, err)
	}

	generator.EXPECT().Generate(12).Return("fresh", nil)
	hasher.EXPECT().Hash("fresh").Return("h2", "s2", nil)

	_, err := svc.RotatePassword(ctx, "owner-1", "link-1")
	require.NoError(t, err)

	link, err := repo.GetLinkByToken(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, link.IsLocked)
	assert.Zero(t, link.FailedAttempts)
	assert.Equal(t, "h2", link.PasswordHash)
}

// ─────────────────────────────────────────────
// SetActive
// ─────────────────────────────────────────────

func TestSetActive(t *testing.T) {
	t.Run("owned link", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.links.EXPECT().GetOwnedLink(gomock.Any(), "owner-1", "link-1").Return(models.PortalLink{ID: "link-1"}, nil)
		m.links.EXPECT().SetActive(gomock.Any(), "link-1", false).Return(nil)

		require.NoError(t, svc.SetActive(context.Background(), "owner-1", "link-1", false))
	})

	t.Run("foreign link", func(t *testing.T) {
		svc, m := newAdminService(t)

		m.links.EXPECT().GetOwnedLink(gomock.Any(), "intruder", "link-1").Return(models.PortalLink{}, store.ErrLinkNotFound)

		assert.ErrorIs(t, svc.SetActive(context.Background(), "intruder", "link-1", false), ErrLinkNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newAdminService(t)
		boom := errors.New("boom")

		m.links.EXPECT().GetOwnedLink(gomock.Any(), "owner-1", "link-1").Return(models.PortalLink{ID: "link-1"}, nil)
		m.links.EXPECT().SetActive(gomock.Any(), "link-1", true).Return(boom)

		assert.ErrorIs(t, svc.SetActive(context.Background(), "owner-1", "link-1", true), boom)
	})
}

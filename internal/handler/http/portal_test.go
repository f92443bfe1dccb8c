package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-portal/internal/app"
	"github.com/MKhiriev/go-doc-portal/internal/service"
	"github.com/MKhiriev/go-doc-portal/models"
)

// ─────────────────────────────────────────────
// GET /api/portal/{token}
// ─────────────────────────────────────────────

func TestGetLinkStatus(t *testing.T) {
	tests := []struct {
		name       string
		usability  models.LinkUsability
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "active",
			usability:  models.LinkUsability{Status: models.LinkActive, Label: "Q3", PasswordRequired: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"active","label":"Q3","password_required":true}`,
		},
		{
			name:       "locked",
			usability:  models.LinkUsability{Status: models.LinkLocked},
			wantStatus: http.StatusLocked,
			wantBody:   `{"status":"locked"}`,
		},
		{
			name:       "inactive",
			usability:  models.LinkUsability{Status: models.LinkInactive},
			wantStatus: http.StatusGone,
			wantBody:   `{"status":"inactive"}`,
		},
		{
			name:       "expired",
			usability:  models.LinkUsability{Status: models.LinkExpired},
			wantStatus: http.StatusGone,
			wantBody:   `{"status":"expired"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.access.EXPECT().VerifyLinkUsable(gomock.Any(), "tok").Return(tt.usability, tt.err)

			rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/portal/tok", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}

	t.Run("unknown token", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.access.EXPECT().VerifyLinkUsable(gomock.Any(), "nope").Return(models.LinkUsability{}, service.ErrLinkNotFound)

		rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/portal/nope", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, app.MsgLinkNotFound, strings.TrimSpace(rr.Body.String()))
	})
}

// ─────────────────────────────────────────────
// POST /api/portal/{token}/verify
// ─────────────────────────────────────────────

func TestVerifyPassword(t *testing.T) {
	t.Run("granted", func(t *testing.T) {
		h, m := newTestHandler(t)
		expires := time.Date(2026, 6, 1, 13, 0, 0, 0, time.UTC)
		m.access.EXPECT().VerifyPassword(gomock.Any(), "tok", "secret").Return(models.PasswordVerification{
			Session: &models.SessionToken{LinkID: "link-1", Value: "signed", ExpiresAt: expires},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/portal/tok/verify", jsonBody(t, models.VerifyPasswordRequest{Password: "secret"}))
		rr := serve(h, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"session_token":"signed","expires_at":"2026-06-01T13:00:00Z"}`, rr.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.access.EXPECT().VerifyPassword(gomock.Any(), "tok", "guess").
			Return(models.PasswordVerification{RemainingAttempts: 3}, service.ErrWrongPassword)

		rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/portal/tok/verify", jsonBody(t, models.VerifyPasswordRequest{Password: "guess"})))

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		body := decodeJSON[failedVerificationResponse](t, rr)
		assert.Equal(t, 3, body.RemainingAttempts)
		assert.False(t, body.Locked)
	})

	t.Run("locked", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.access.EXPECT().VerifyPassword(gomock.Any(), "tok", "guess").
			Return(models.PasswordVerification{Locked: true}, service.ErrLinkLocked)

		rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/portal/tok/verify", jsonBody(t, models.VerifyPasswordRequest{Password: "guess"})))

		require.Equal(t, http.StatusLocked, rr.Code)
		body := decodeJSON[failedVerificationResponse](t, rr)
		assert.True(t, body.Locked)
		assert.Zero(t, body.RemainingAttempts)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown token", service.ErrLinkNotFound, http.StatusNotFound},
		{"inactive", service.ErrLinkInactive, http.StatusGone},
		{"expired", service.ErrLinkExpired, http.StatusGone},
		{"no password on link", service.ErrPasswordNotRequired, http.StatusBadRequest},
		{"storage failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.access.EXPECT().VerifyPassword(gomock.Any(), "tok", "pw").Return(models.PasswordVerification{}, tt.err)

			rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/portal/tok/verify", jsonBody(t, models.VerifyPasswordRequest{Password: "pw"})))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	t.Run("invalid JSON", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.access.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/portal/tok/verify", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, httptest.NewRequest(http.MethodDelete, "/api/portal/tok/verify", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

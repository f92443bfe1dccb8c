package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-doc-portal/internal/app"
	"github.com/MKhiriev/go-doc-portal/internal/crypto"
	"github.com/MKhiriev/go-doc-portal/internal/service"
	"github.com/MKhiriev/go-doc-portal/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{fmt.Errorf("%w: label too long", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{service.ErrLinkNotFound, http.StatusNotFound},
		{service.ErrLinkExpired, http.StatusGone},
		{service.ErrLinkInactive, http.StatusGone},
		{service.ErrLinkLocked, http.StatusLocked},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{crypto.ErrSessionInvalid, http.StatusUnauthorized},
		{service.ErrOwnerTokenInvalid, http.StatusUnauthorized},
		{service.ErrFileNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: boom", store.ErrExecutingQuery), http.StatusInternalServerError},
		{ErrNoOwnerInContext, http.StatusInternalServerError},
		{context.Canceled, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestErrorStatusMap_NoOverlappingKeys(t *testing.T) {
	for a := range errorStatusMap {
		for b := range errorStatusMap {
			if a != b {
				assert.False(t, errors.Is(a, b), "%v wraps %v", a, b)
			}
		}
	}
}

func TestWriteError_ExpiredAndUnknownLookAlike(t *testing.T) {
	body := func(err error) string {
		rr := httptest.NewRecorder()
		writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), "test", err)
		return strings.TrimSpace(rr.Body.String())
	}

	assert.Equal(t, app.MsgLinkNotFound, body(service.ErrLinkNotFound))
	assert.Equal(t, body(service.ErrLinkNotFound), body(service.ErrLinkExpired))
	assert.Equal(t, app.MsgInternalServerError, body(errors.New("pq: connection reset")))
}

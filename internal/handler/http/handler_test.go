package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/mock"
	"github.com/MKhiriev/go-doc-portal/internal/service"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type handlerMocks struct {
	access  *mock.MockPortalAccessService
	admin   *mock.MockLinkAdminService
	files   *mock.MockPortalFilesService
	auth    *mock.MockOwnerAuthService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		access:  mock.NewMockPortalAccessService(ctrl),
		admin:   mock.NewMockLinkAdminService(ctrl),
		files:   mock.NewMockPortalFilesService(ctrl),
		auth:    mock.NewMockOwnerAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		PortalAccessService: m.access,
		LinkAdminService:    m.admin,
		PortalFilesService:  m.files,
		OwnerAuthService:    m.auth,
		AppInfoService:      m.appInfo,
	}, logger.Nop())
	return h, m
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init(0).ServeHTTP(rr, req)
	return rr
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

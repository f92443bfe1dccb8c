package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/utils"
	"github.com/MKhiriev/go-doc-portal/models"
)

const (
	sessionHeader = "X-Portal-Session"

	retryCount   = 2
	retryWait    = 200 * time.Millisecond
	retryMaxWait = 2 * time.Second
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	mu         sync.RWMutex
	session    string
	ownerToken string

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs the HTTP implementation of
// [PortalAdapter]. GET requests are retried on network errors and 5xx
// responses; nothing else is, since a replayed password submission would be
// counted twice.
func NewHTTPPortalAdapter(cfg config.ClientAdapter, logger *logger.Logger) (PortalAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(retryIdempotent)

	return &httpPortalAdapter{client: client, logger: logger}, nil
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpPortalAdapter) SetSession(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = strings.TrimSpace(token)
}

func (h *httpPortalAdapter) Session() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

func (h *httpPortalAdapter) SetOwnerToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ownerToken = strings.TrimSpace(token)
}

// portalRequest prepares a request on the link's routes, carrying the
// session when one is set.
func (h *httpPortalAdapter) portalRequest(ctx context.Context, linkToken string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("token", linkToken)
	if session := h.Session(); session != "" {
		req.SetHeader(sessionHeader, session)
	}
	return req
}

func (h *httpPortalAdapter) ownerRequest(ctx context.Context) *resty.Request {
	h.mu.RLock()
	token := h.ownerToken
	h.mu.RUnlock()

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token)
}

// LinkStatus implements [PortalAdapter]. 410 and 423 carry the state in the
// body and are not errors here.
func (h *httpPortalAdapter) LinkStatus(ctx context.Context, linkToken string) (models.LinkUsability, error) {
	var usability models.LinkUsability

	resp, err := h.portalRequest(ctx, linkToken).
		SetResult(&usability).
		SetError(&usability).
		Get("/api/portal/{token}")
	if err != nil {
		return models.LinkUsability{}, fmt.Errorf("link status request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusGone, http.StatusLocked:
		return usability, nil
	default:
		return models.LinkUsability{}, mapHTTPError(resp)
	}
}

type failedVerification struct {
	RemainingAttempts int  `json:"remaining_attempts"`
	Locked            bool `json:"locked"`
}

// VerifyPassword implements [PortalAdapter].
func (h *httpPortalAdapter) VerifyPassword(ctx context.Context, linkToken, password string) (models.PasswordVerification, error) {
	var (
		session models.SessionToken
		failed  failedVerification
	)

	resp, err := h.portalRequest(ctx, linkToken).
		SetBody(models.VerifyPasswordRequest{Password: password}).
		SetResult(&session).
		SetError(&failed).
		Post("/api/portal/{token}/verify")
	if err != nil {
		return models.PasswordVerification{}, fmt.Errorf("verify request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		h.SetSession(session.Value)
		return models.PasswordVerification{Session: &session}, nil
	case http.StatusUnauthorized:
		return models.PasswordVerification{RemainingAttempts: failed.RemainingAttempts}, ErrWrongPassword
	case http.StatusLocked:
		return models.PasswordVerification{Locked: true}, ErrLocked
	default:
		return models.PasswordVerification{}, mapHTTPError(resp)
	}
}

func (h *httpPortalAdapter) ListFiles(ctx context.Context, linkToken string) ([]models.PortalFile, error) {
	var files []models.PortalFile

	resp, err := h.portalRequest(ctx, linkToken).
		SetResult(&files).
		Get("/api/portal/{token}/files")
	if err != nil {
		return nil, fmt.Errorf("list files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return files, nil
}

func (h *httpPortalAdapter) UploadFile(ctx context.Context, linkToken, name string, r io.Reader) (models.PortalFile, error) {
	var file models.PortalFile

	resp, err := h.portalRequest(ctx, linkToken).
		SetFileReader("file", name, r).
		SetResult(&file).
		Post("/api/portal/{token}/files")
	if err != nil {
		return models.PortalFile{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PortalFile{}, err
	}

	return file, nil
}

// DownloadFile implements [PortalAdapter]. The body is streamed and never
// buffered in memory.
func (h *httpPortalAdapter) DownloadFile(ctx context.Context, linkToken, name string, w io.Writer) (int64, error) {
	resp, err := h.portalRequest(ctx, linkToken).
		SetPathParam("name", name).
		SetDoNotParseResponse(true).
		Get("/api/portal/{token}/files/{name}")
	if err != nil {
		return 0, fmt.Errorf("download request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		msg, _ := io.ReadAll(io.LimitReader(body, 4<<10))
		resp.SetBody(msg)
		return 0, mapHTTPError(resp)
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("download body: %w", err)
	}

	return n, nil
}

func (h *httpPortalAdapter) CreateLink(ctx context.Context, req models.CreateLinkRequest) (models.CreatedLink, error) {
	var created models.CreatedLink

	resp, err := h.ownerRequest(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/api/links")
	if err != nil {
		return models.CreatedLink{}, fmt.Errorf("create link request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreatedLink{}, err
	}

	return created, nil
}

func (h *httpPortalAdapter) RotatePassword(ctx context.Context, linkID string) (models.RotatedPassword, error) {
	var rotated models.RotatedPassword

	resp, err := h.ownerRequest(ctx).
		SetPathParam("id", linkID).
		SetResult(&rotated).
		Post("/api/links/{id}/password")
	if err != nil {
		return models.RotatedPassword{}, fmt.Errorf("rotate password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RotatedPassword{}, err
	}

	return rotated, nil
}

func (h *httpPortalAdapter) SetActive(ctx context.Context, linkID string, active bool) error {
	resp, err := h.ownerRequest(ctx).
		SetPathParam("id", linkID).
		SetBody(models.SetActiveRequest{Active: active}).
		Put("/api/links/{id}/active")
	if err != nil {
		return fmt.Errorf("set active request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPortalAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

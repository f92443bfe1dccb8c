package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-portal/internal/adapter"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/mock"
	"github.com/MKhiriev/go-doc-portal/models"
)

func newTestApp(t *testing.T, env map[string]string) (*App, *mock.MockPortalAdapter, *bytes.Buffer) {
	t.Helper()
	portal := mock.NewMockPortalAdapter(gomock.NewController(t))
	out := &bytes.Buffer{}

	app := NewApp(portal, out, logger.Nop())
	app.errOut = io.Discard
	app.getenv = func(key string) string { return env[key] }

	return app, portal, out
}

func TestRun_Usage(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	assert.ErrorIs(t, app.Run(context.Background(), nil), ErrUsage)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"rm"}), ErrUnknownCommand)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"status"}), ErrUsage)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"status", "-nope", "tok"}), ErrUsage)
}

func TestRun_Version(t *testing.T) {
	app, portal, out := newTestApp(t, nil)
	portal.EXPECT().ServerVersion(gomock.Any()).Return("1.2.0", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "server version: 1.2.0\n", out.String())
}

func TestRun_Status(t *testing.T) {
	app, portal, out := newTestApp(t, nil)
	portal.EXPECT().LinkStatus(gomock.Any(), "tok").
		Return(models.LinkUsability{Status: models.LinkActive, Label: "Q3", PasswordRequired: true}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"status", "tok"}))
	assert.Equal(t, "status: active\nlabel: Q3\npassword: required\n", out.String())
}

func TestRun_Verify(t *testing.T) {
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("password from env", func(t *testing.T) {
		app, portal, out := newTestApp(t, map[string]string{envPassword: "secret"})
		portal.EXPECT().VerifyPassword(gomock.Any(), "tok", "secret").
			Return(models.PasswordVerification{Session: &models.SessionToken{Value: "sess", ExpiresAt: expires}}, nil)

		require.NoError(t, app.Run(context.Background(), []string{"verify", "tok"}))
		assert.Contains(t, out.String(), "export PORTAL_SESSION=sess\n")
	})

	t.Run("flag wins over env", func(t *testing.T) {
		app, portal, _ := newTestApp(t, map[string]string{envPassword: "from-env"})
		portal.EXPECT().VerifyPassword(gomock.Any(), "tok", "from-flag").
			Return(models.PasswordVerification{Session: &models.SessionToken{Value: "sess", ExpiresAt: expires}}, nil)

		require.NoError(t, app.Run(context.Background(), []string{"verify", "-password", "from-flag", "tok"}))
	})

	t.Run("no password", func(t *testing.T) {
		app, _, _ := newTestApp(t, nil)
		assert.ErrorIs(t, app.Run(context.Background(), []string{"verify", "tok"}), ErrNoPassword)
	})

	t.Run("wrong password", func(t *testing.T) {
		app, portal, out := newTestApp(t, map[string]string{envPassword: "bad"})
		portal.EXPECT().VerifyPassword(gomock.Any(), "tok", "bad").
			Return(models.PasswordVerification{RemainingAttempts: 2}, adapter.ErrWrongPassword)

		err := app.Run(context.Background(), []string{"verify", "tok"})
		assert.ErrorIs(t, err, adapter.ErrWrongPassword)
		assert.Equal(t, "wrong password, 2 attempt(s) remaining\n", out.String())
	})

	t.Run("locked", func(t *testing.T) {
		app, portal, out := newTestApp(t, map[string]string{envPassword: "bad"})
		portal.EXPECT().VerifyPassword(gomock.Any(), "tok", "bad").
			Return(models.PasswordVerification{Locked: true}, adapter.ErrLocked)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"verify", "tok"}), adapter.ErrLocked)
		assert.Contains(t, out.String(), "link is locked")
	})
}

func TestRun_ListFiles(t *testing.T) {
	uploaded := time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)

	t.Run("session from env", func(t *testing.T) {
		app, portal, out := newTestApp(t, map[string]string{envSession: "sess"})
		gomock.InOrder(
			portal.EXPECT().SetSession("sess"),
			portal.EXPECT().ListFiles(gomock.Any(), "tok").Return([]models.PortalFile{
				{Name: "a.pdf", Size: 10, UploadedAt: uploaded},
			}, nil),
		)

		require.NoError(t, app.Run(context.Background(), []string{"ls", "tok"}))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, []string{"NAME", "SIZE", "UPLOADED"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"a.pdf", "10", "2026-03-04", "05:06:07"}, strings.Fields(lines[1]))
	})

	t.Run("no session and empty", func(t *testing.T) {
		app, portal, out := newTestApp(t, nil)
		portal.EXPECT().ListFiles(gomock.Any(), "tok").Return(nil, nil)

		require.NoError(t, app.Run(context.Background(), []string{"ls", "tok"}))
		assert.Equal(t, "no files\n", out.String())
	})

	t.Run("adapter error", func(t *testing.T) {
		app, portal, _ := newTestApp(t, nil)
		portal.EXPECT().ListFiles(gomock.Any(), "tok").Return(nil, adapter.ErrUnauthorized)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"ls", "tok"}), adapter.ErrUnauthorized)
	})
}

func TestRun_PutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	app, portal, out := newTestApp(t, nil)
	portal.EXPECT().SetSession("sess")
	portal.EXPECT().UploadFile(gomock.Any(), "tok", "report.txt", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, name string, r io.Reader) (models.PortalFile, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(data))
			return models.PortalFile{Name: name, Size: int64(len(data))}, nil
		})

	require.NoError(t, app.Run(context.Background(), []string{"put", "-session", "sess", "tok", path}))
	assert.Equal(t, "uploaded report.txt (5 bytes)\n", out.String())
}

func TestRun_PutFile_Missing(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	err := app.Run(context.Background(), []string{"put", "tok", filepath.Join(t.TempDir(), "nope")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_GetFile(t *testing.T) {
	writeBody := func(_ context.Context, _, _ string, w io.Writer) (int64, error) {
		n, err := io.WriteString(w, "content")
		return int64(n), err
	}

	t.Run("to file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "out.bin")
		app, portal, out := newTestApp(t, nil)
		portal.EXPECT().DownloadFile(gomock.Any(), "tok", "a.pdf", gomock.Any()).DoAndReturn(writeBody)

		require.NoError(t, app.Run(context.Background(), []string{"get", "-o", dest, "tok", "a.pdf"}))
		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
		assert.Contains(t, out.String(), "(7 bytes)")
	})

	t.Run("to stdout", func(t *testing.T) {
		app, portal, out := newTestApp(t, nil)
		portal.EXPECT().DownloadFile(gomock.Any(), "tok", "a.pdf", gomock.Any()).DoAndReturn(writeBody)

		require.NoError(t, app.Run(context.Background(), []string{"get", "-o", "-", "tok", "a.pdf"}))
		assert.Equal(t, "content", out.String())
	})

	t.Run("failure removes partial file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "out.bin")
		app, portal, _ := newTestApp(t, nil)
		portal.EXPECT().DownloadFile(gomock.Any(), "tok", "a.pdf", gomock.Any()).Return(int64(0), adapter.ErrNotFound)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"get", "-o", dest, "tok", "a.pdf"}), adapter.ErrNotFound)
		_, err := os.Stat(dest)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestRun_CreateLink(t *testing.T) {
	app, portal, out := newTestApp(t, map[string]string{envOwnerToken: "jwt"})
	portal.EXPECT().SetOwnerToken("jwt")
	portal.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateLinkRequest) (models.CreatedLink, error) {
			assert.Equal(t, "Deals", req.Label)
			assert.True(t, req.PasswordProtected)
			require.NotNil(t, req.ExpiresAt)
			assert.WithinDuration(t, time.Now().Add(48*time.Hour), *req.ExpiresAt, time.Minute)
			return models.CreatedLink{
				Link:     models.PortalLink{ID: "id-1", Token: "tok-1"},
				Password: "Abc123Def456",
			}, nil
		})

	args := []string{"create", "-label", "Deals", "-password", "-expires-in", "48h"}
	require.NoError(t, app.Run(context.Background(), args))
	assert.Equal(t, "id: id-1\ntoken: tok-1\npassword: Abc123Def456\n", out.String())
}

func TestRun_OwnerCommandsNeedToken(t *testing.T) {
	for _, args := range [][]string{
		{"create"},
		{"rotate", "id-1"},
		{"activate", "id-1"},
		{"deactivate", "id-1"},
	} {
		t.Run(args[0], func(t *testing.T) {
			app, _, _ := newTestApp(t, nil)
			assert.ErrorIs(t, app.Run(context.Background(), args), ErrNoOwnerToken)
		})
	}
}

func TestRun_RotatePassword(t *testing.T) {
	app, portal, out := newTestApp(t, nil)
	portal.EXPECT().SetOwnerToken("jwt")
	portal.EXPECT().RotatePassword(gomock.Any(), "id-1").
		Return(models.RotatedPassword{LinkID: "id-1", Password: "NewPass12345"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"rotate", "-owner-token", "jwt", "id-1"}))
	assert.Equal(t, "password: NewPass12345\n", out.String())
}

func TestRun_SetActive(t *testing.T) {
	tests := []struct {
		command string
		active  bool
		want    string
	}{
		{"activate", true, "link id-1 activated\n"},
		{"deactivate", false, "link id-1 deactivated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			app, portal, out := newTestApp(t, map[string]string{envOwnerToken: "jwt"})
			portal.EXPECT().SetOwnerToken("jwt")
			portal.EXPECT().SetActive(gomock.Any(), "id-1", tt.active).Return(nil)

			require.NoError(t, app.Run(context.Background(), []string{tt.command, "id-1"}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_SetActive_NotFound(t *testing.T) {
	app, portal, _ := newTestApp(t, map[string]string{envOwnerToken: "jwt"})
	portal.EXPECT().SetOwnerToken("jwt")
	portal.EXPECT().SetActive(gomock.Any(), "id-1", false).Return(adapter.ErrNotFound)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"deactivate", "id-1"}), adapter.ErrNotFound)
}

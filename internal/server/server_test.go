package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/handler"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/service"
)

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return s.(*server)
}

func TestNewServer_NothingEnabled(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, ErrNoTransportEnabled)
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newTestServer(t, config.Server{GRPCAddress: busy.Addr().String()})

	select {
	case err := <-func() chan error {
		ch := make(chan error, 1)
		go func() { ch <- s.run(context.Background()) }()
		return ch
	}():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not fail")
	}
}

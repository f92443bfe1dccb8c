package server

import "errors"

// ErrNoTransportEnabled means neither the portal HTTP API nor the gRPC
// health endpoint has both an address and a handler.
var ErrNoTransportEnabled = errors.New("no transport is enabled: set an HTTP or gRPC address")

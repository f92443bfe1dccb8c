// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrNoTransportConfigured is returned by NewHandlers when the server
// configuration has neither an HTTP nor a gRPC address.
var ErrNoTransportConfigured = errors.New("no transport address configured")

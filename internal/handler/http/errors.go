// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the owner authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoOwnerInContext is returned by owner handlers reached without the
	// auth middleware having stored an owner ID.
	ErrNoOwnerInContext = errors.New("no owner ID in request context")

	// ErrNoLinkInContext is returned by file handlers reached without the
	// link authorization middleware.
	ErrNoLinkInContext = errors.New("no authorized portal link in request context")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the inputs that reach the portal from outside:
// owner link requests and file names chosen by anonymous visitors.
//
// Validation can be scoped to named fields (see the Field* constants), so a
// caller that only needs a file name checked does not pay for the rest.
package validators

import "context"

// Validator validates v, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}

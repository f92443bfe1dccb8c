// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidPasswordLength is returned by [PasswordGenerator.Generate]
	// when the requested length is below 1.
	ErrInvalidPasswordLength = errors.New("password length must be positive")

	// ErrRandomSourceFailed wraps a failed read from the random source.
	ErrRandomSourceFailed = errors.New("random source failed")

	// ErrKeyDerivationFailed wraps a scrypt parameter or derivation error.
	ErrKeyDerivationFailed = errors.New("key derivation failed")
)

var (
	// ErrMissingSigningSecret is returned when a session codec is built
	// without a signing secret. It is a configuration error and fatal at
	// startup.
	ErrMissingSigningSecret = errors.New("session signing secret is not configured")

	// ErrEmptyLinkID is returned when a session is requested for an empty
	// link ID.
	ErrEmptyLinkID = errors.New("empty link id")

	// ErrSessionInvalid is the single outcome of every rejected session
	// token: bad signature, malformed payload, missing claims and expiry
	// are deliberately indistinguishable.
	ErrSessionInvalid = errors.New("session token is invalid")
)

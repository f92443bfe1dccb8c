// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-doc-portal server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgLinkNotFound is shared by unknown and expired links so that a
	// caller cannot tell whether a token ever existed.
	MsgLinkNotFound = "link not found or expired"

	// MsgLinkInactive is returned when the owner has deactivated the link.
	MsgLinkInactive = "link is inactive"

	// MsgLinkLocked is returned once too many wrong passwords were submitted.
	// Only the owner can unlock the link by rotating its password.
	MsgLinkLocked = "link is locked"

	MsgWrongPassword = "wrong password"

	// MsgPasswordNotRequired is returned when a password is submitted for a
	// link that has none.
	MsgPasswordNotRequired = "link is not password protected"

	// MsgSessionInvalid covers every session token failure without saying
	// which check failed.
	MsgSessionInvalid = "session is invalid"

	// MsgOwnerTokenInvalid is returned when the owner's bearer token is
	// missing, expired or cannot be verified.
	MsgOwnerTokenInvalid = "token is expired or invalid"

	MsgInvalidFileName = "invalid file name"
	MsgFileNotFound    = "file not found"

	// MsgFileTooLarge is returned when an upload exceeds the size limit.
	MsgFileTooLarge = "file too large"
)

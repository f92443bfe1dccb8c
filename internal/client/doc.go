// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the portal command-line client.
//
// Every invocation runs one subcommand against a [adapter.PortalAdapter].
// Visitor commands (status, verify, ls, put, get) address a link by its
// public token; owner commands (create, rotate, activate, deactivate) address
// it by ID and need an owner JWT in PORTAL_OWNER_TOKEN or -owner-token.
//
// The session returned by verify is printed so it can be exported as
// PORTAL_SESSION for later file commands.
package client

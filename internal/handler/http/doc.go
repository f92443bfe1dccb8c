// Package http implements the HTTP transport layer of the portal.
//
// It wires the anonymous portal routes, the owner routes and the middleware
// stack (tracing, access logging, compression, owner authentication and
// link authorization) in front of the service layer.
package http

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, token
// fingerprints, HTTP response writing, HTTP client initialization, JWT
// parsing and validation, and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-doc-portal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key under which the authenticated link owner's
// identity-provider subject is stored.
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, "auth0|42")
var OwnerIDCtxKey = contextKey("ownerID")

// PortalLinkCtxKey is the key under which a portal link that passed
// authorization is stored for the file handlers.
var PortalLinkCtxKey = contextKey("portalLink")

// GetOwnerIDFromContext retrieves the owner identifier from the context.
// ok is false when the value is missing, empty or of another type.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	return ownerID, ok && ownerID != ""
}

// GetPortalLinkFromContext retrieves the authorized portal link.
func GetPortalLinkFromContext(ctx context.Context) (models.PortalLink, bool) {
	link, ok := ctx.Value(PortalLinkCtxKey).(models.PortalLink)
	return link, ok
}

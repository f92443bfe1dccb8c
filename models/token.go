package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an owner JWT issued by the external identity provider.
//
// It embeds [jwt.Token] for low-level inspection and [jwt.RegisteredClaims]
// so the parser can decode standard claims straight into it.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// OwnerID is the "sub" claim, cached after parsing.
	OwnerID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

// SessionClaims is the payload of a portal session token.
//
// LinkID is carried in the short "lid" claim; expiry uses the registered
// "exp" claim.
type SessionClaims struct {
	LinkID string `json:"lid"`
	jwt.RegisteredClaims
}

package crypto

import "github.com/MKhiriev/go-doc-portal/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordGenerator produces human-typeable one-time passwords for portal
// links. Every character is drawn uniformly from [A-Za-z0-9].
type PasswordGenerator interface {
	// Generate returns a password of exactly length characters.
	// length must be at least 1.
	Generate(length int) (string, error)
}

// PasswordHasher derives and verifies salted password hashes with a
// memory-hard KDF. Hash and salt are hex-encoded for storage.
type PasswordHasher interface {
	// Hash derives a key from password and a freshly generated salt.
	Hash(password string) (hash, salt string, err error)

	// Verify re-derives the key from password and salt and compares it with
	// hash in constant time. Malformed input yields false.
	Verify(password, hash, salt string) bool
}

// SessionTokenCodec issues and verifies stateless session tokens that bind a
// client to one portal link for a bounded time.
type SessionTokenCodec interface {
	// Issue signs a token for linkID that expires after the codec's TTL.
	Issue(linkID string) (models.SessionToken, error)

	// Verify returns the link ID embedded in token. Every failure, whatever
	// the cause, is reported as [ErrSessionInvalid].
	Verify(token string) (string, error)
}

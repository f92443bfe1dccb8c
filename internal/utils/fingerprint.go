package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

const fingerprintLen = 12

// Fingerprint returns a short, stable, non-reversible identifier for a
// secret value such as a portal token, suitable for log correlation.
// The empty string maps to the empty string.
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

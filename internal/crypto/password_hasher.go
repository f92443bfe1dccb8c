// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const minSaltLen = 16

// ScryptParams holds the scrypt cost parameters and output sizes.
type ScryptParams struct {
	// N is the CPU/memory cost; must be a power of two greater than 1.
	N int
	// R is the block size.
	R int
	// P is the parallelisation factor.
	P int
	// KeyLen is the derived key length in bytes.
	KeyLen int
	// SaltLen is the random salt length in bytes; values below 16 are raised
	// to 16.
	SaltLen int
}

// DefaultScryptParams are the standard interactive-login scrypt parameters
// with a 64-byte key: N=2^14, r=8, p=1 (16 MiB per derivation).
var DefaultScryptParams = ScryptParams{
	N:       1 << 14,
	R:       8,
	P:       1,
	KeyLen:  64,
	SaltLen: 16,
}

// passwordHasher is the scrypt-backed [PasswordHasher].
//
// Derivation is CPU and memory bound. Callers must not hold storage locks or
// open transactions while calling Hash or Verify.
type passwordHasher struct {
	params ScryptParams
	source io.Reader
}

// NewPasswordHasher returns a [PasswordHasher] using params and crypto/rand
// for salts.
func NewPasswordHasher(params ScryptParams) PasswordHasher {
	if params.SaltLen < minSaltLen {
		params.SaltLen = minSaltLen
	}

	return &passwordHasher{
		params: params,
		source: rand.Reader,
	}
}

// Hash implements [PasswordHasher]. A new salt is generated on every call.
func (h *passwordHasher) Hash(password string) (string, string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.source, salt); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrRandomSourceFailed, err)
	}

	key, err := h.derive(password, salt)
	if err != nil {
		return "", "", err
	}

	return hex.EncodeToString(key), hex.EncodeToString(salt), nil
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(password, hash, salt string) bool {
	expected, err := hex.DecodeString(hash)
	if err != nil || len(expected) != h.params.KeyLen {
		return false
	}

	saltBytes, err := hex.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return false
	}

	actual, err := h.derive(password, saltBytes)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(actual, expected) == 1
}

func (h *passwordHasher) derive(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, h.params.N, h.params.R, h.params.P, h.params.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivationFailed, err)
	}
	return key, nil
}

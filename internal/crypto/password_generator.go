// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// DefaultPasswordLength is the length of passwords handed to link owners.
	DefaultPasswordLength = 12

	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// acceptanceLimit is the largest multiple of the alphabet size that fits
	// in a byte (248 for 62 characters). Bytes at or above it are rejected.
	acceptanceLimit = 256 - 256%len(passwordAlphabet)
)

// passwordGenerator is the default [PasswordGenerator]. It reads bytes from
// source and maps them onto the alphabet with rejection sampling, so no
// character is favoured by a modulo remainder.
type passwordGenerator struct {
	source io.Reader
}

// NewPasswordGenerator returns a [PasswordGenerator] backed by crypto/rand.
func NewPasswordGenerator() PasswordGenerator {
	return &passwordGenerator{source: rand.Reader}
}

// Generate implements [PasswordGenerator].
func (g *passwordGenerator) Generate(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidPasswordLength
	}

	password := make([]byte, 0, length)
	// oversample a little: about 3% of bytes are rejected
	buf := make([]byte, length+length/4+1)

	for len(password) < length {
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandomSourceFailed, err)
		}

		for _, b := range buf {
			if int(b) >= acceptanceLimit {
				continue
			}
			password = append(password, passwordAlphabet[int(b)%len(passwordAlphabet)])
			if len(password) == length {
				break
			}
		}
	}

	return string(password), nil
}

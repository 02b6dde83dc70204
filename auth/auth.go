// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ResultTokenBytes is the entropy of a result token (80 bits)
const ResultTokenBytes = 10

// MaxTokenLength matches the result_token column width
const MaxTokenLength = 64

var ErrInvalidToken = errors.New("invalid token format")

// GenerateResultToken creates a random URL-safe token for a submission.
// Anyone holding the token can read the result, so it must be unguessable.
func GenerateResultToken() (string, error) {
	b := make([]byte, ResultTokenBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate result token: %w", err)
	}
	// URL-safe base64 without padding
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidateToken checks that a token could have been issued by
// GenerateResultToken, without touching the database
func ValidateToken(token string) error {
	if token == "" || len(token) > MaxTokenLength {
		return ErrInvalidToken
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return ErrInvalidToken
		}
	}
	return nil
}

// HashEmail normalizes an email (trim, lower-case) and returns its
// SHA-256 hex digest, the form the Conversions API expects.
// Returns "" for an empty email.
func HashEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

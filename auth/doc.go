// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and privacy hashing utilities.

# Result Tokens

Result tokens are random 10-byte (80-bit) secrets:

	token, err := auth.GenerateResultToken()

Tokens are URL-safe base64 encoded without padding (14 characters). A token
is the only key to a submission's result, so it is never derived from user
data.

Handlers reject malformed tokens before querying:

	if err := auth.ValidateToken(token); err != nil {
		// respond 404
	}

# Email Hashing

The Conversions API accepts only hashed identifiers:

	hash := auth.HashEmail(sub.Email)

The email is trimmed and lower-cased, then hashed with SHA-256 and hex
encoded. An empty email hashes to "".
*/
package auth

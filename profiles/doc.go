// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package profiles holds the static profile catalogue and the deterministic
picker that assigns a profile to each quiz submission.

# Picking

	seed := profiles.SubmissionSeed(name, birthdate, city, sign, height, cards)
	profile := profiles.Pick(seed)

The seed is hashed with SHA-256 and the digest, read as a big-endian
integer, is reduced modulo the catalogue length. The same seed always maps
to the same profile, and distinct seeds spread roughly evenly.

# Seeds

Seed joins its non-empty parts with "|". SubmissionSeed lower-cases the
free-text fields (name, city, zodiac sign, height) before joining, so

	"Ana|São Paulo" and "ana|são paulo"

produce the same profile.

# Lookup

Stored submissions keep only the profile ID:

	p, ok := profiles.ByID(sub.ResultProfileID)
*/
package profiles

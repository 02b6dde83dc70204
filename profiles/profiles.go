// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package profiles

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	"github.com/danielhkuo/alma-gemea/models"
)

// SeedSeparator joins the seed parts
const SeedSeparator = "|"

var catalogue = []models.Profile{
	{
		ID:          1,
		Name:        "Alex Vega",
		Description: "Intelectual sarcástico, café forte, playlists obscuras e viagens espontâneas.",
		ImageURL:    "https://images.unsplash.com/photo-1502685104226-ee32379fefbe?q=80&w=1200&auto=format&fit=crop",
	},
	{
		ID:          2,
		Name:        "Luna Costa",
		Description: "Criativa caótica, filmes cult, astrologia por hobby e risadas difíceis de esquecer.",
		ImageURL:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=1200&auto=format&fit=crop",
	},
	{
		ID:          3,
		Name:        "Diego Marin",
		Description: "Extrovertido estratégico, esportes ao ar livre, cozinha apimentada e conversas longas.",
		ImageURL:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=1200&auto=format&fit=crop",
	},
	{
		ID:          4,
		Name:        "Maya Rocha",
		Description: "Minimalista elegante, livros sublinhados, plantas em excesso e ironia refinada.",
		ImageURL:    "https://images.unsplash.com/photo-1547425260-76bcadfb4f2c?q=80&w=1200&auto=format&fit=crop",
	},
}

// All returns a copy of the profile catalogue
func All() []models.Profile {
	out := make([]models.Profile, len(catalogue))
	copy(out, catalogue)
	return out
}

// ByID looks up a catalogue profile by its ID
func ByID(id int) (models.Profile, bool) {
	for _, p := range catalogue {
		if p.ID == id {
			return p, true
		}
	}
	return models.Profile{}, false
}

// Pick selects a catalogue profile deterministically from a seed.
// The same seed always yields the same profile.
func Pick(seed string) models.Profile {
	p, _ := PickFrom(catalogue, seed)
	return p
}

// PickFrom selects a profile from list and returns it with its index.
// The SHA-256 digest of the seed is read as a big-endian integer and
// reduced modulo len(list). Panics if list is empty.
func PickFrom(list []models.Profile, seed string) (models.Profile, int) {
	if len(list) == 0 {
		panic("profiles: PickFrom called with empty list")
	}
	idx := Index(seed, len(list))
	return list[idx], idx
}

// Index reduces the seed's digest modulo n. The result is in [0, n).
// Panics if n is not positive.
func Index(seed string, n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("profiles: Index called with n=%d", n))
	}
	digest := sha256.Sum256([]byte(seed))
	num := new(big.Int).SetBytes(digest[:])
	return int(num.Mod(num, big.NewInt(int64(n))).Int64())
}

// Seed joins the non-empty parts with SeedSeparator
func Seed(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, SeedSeparator)
}

// SubmissionSeed builds the seed for a quiz submission. Free-text fields
// are lower-cased so capitalization does not change the result.
func SubmissionSeed(name, birthdate, city, zodiacSign, height, tarotCards string) string {
	return Seed(
		strings.ToLower(name),
		birthdate,
		strings.ToLower(city),
		strings.ToLower(zodiacSign),
		strings.ToLower(height),
		tarotCards,
	)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/alma-gemea/models"
)

var ErrNotFound = errors.New("submission not found")

// InsertSubmission stores a new submission and fills in its ID.
// CreatedAt is set to the current UTC time when zero.
func InsertSubmission(ctx context.Context, db *sql.DB, sub *models.Submission) error {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	err := db.QueryRowContext(ctx, `
		INSERT INTO submissions (
			name, birthdate, city, email, zodiac_sign, height,
			preferences, tarot_cards, result_profile_id, result_token, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, sub.Name, sub.Birthdate, sub.City, sub.Email, sub.ZodiacSign, sub.Height,
		sub.Preferences, sub.TarotCards, sub.ResultProfileID, sub.ResultToken, sub.CreatedAt,
	).Scan(&sub.ID)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// GetSubmissionByToken loads the submission with the given result token.
// Returns ErrNotFound when no row matches.
func GetSubmissionByToken(ctx context.Context, db *sql.DB, token string) (*models.Submission, error) {
	var sub models.Submission
	var preferences sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(birthdate, ''), COALESCE(city, ''), COALESCE(email, ''),
		       COALESCE(zodiac_sign, ''), COALESCE(height, ''), preferences,
		       COALESCE(tarot_cards, ''), result_profile_id, result_token, created_at
		FROM submissions
		WHERE result_token = $1
	`, token).Scan(
		&sub.ID, &sub.Name, &sub.Birthdate, &sub.City, &sub.Email,
		&sub.ZodiacSign, &sub.Height, &preferences,
		&sub.TarotCards, &sub.ResultProfileID, &sub.ResultToken, &sub.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query submission: %w", err)
	}

	if preferences.Valid {
		sub.Preferences = &preferences.String
	}

	return &sub, nil
}

// CountSubmissions returns the number of stored submissions
func CountSubmissions(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM submissions").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return n, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Dialect names the SQL flavour behind a connection
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	var stmt string
	switch dialect {
	case SQLite:
		stmt = sqliteSchema
	case Postgres:
		stmt = postgresSchema
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	_, err := db.Exec(stmt)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Quiz submissions
CREATE TABLE IF NOT EXISTS submissions (
    id SERIAL PRIMARY KEY,
    name VARCHAR(120) NOT NULL,
    birthdate VARCHAR(20),
    city VARCHAR(120),
    email VARCHAR(200),
    zodiac_sign VARCHAR(40),
    height VARCHAR(40),
    preferences TEXT,
    tarot_cards TEXT,
    result_profile_id INTEGER NOT NULL,
    result_token VARCHAR(64) NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`

const sqliteSchema = `
-- Quiz submissions
CREATE TABLE IF NOT EXISTS submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(120) NOT NULL,
    birthdate VARCHAR(20),
    city VARCHAR(120),
    email VARCHAR(200),
    zodiac_sign VARCHAR(40),
    height VARCHAR(40),
    preferences TEXT,
    tarot_cards TEXT,
    result_profile_id INTEGER NOT NULL,
    result_token VARCHAR(64) NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`

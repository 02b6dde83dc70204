// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation, and submission queries.

# Connecting

Open selects the driver by dialect and pings with a 5s timeout:

	conn, err := db.Open(db.SQLite, "file:data.db")
	conn, err := db.Open(db.Postgres, "postgres://...")

SQLite (modernc.org/sqlite) connections get foreign_keys, busy_timeout and
WAL pragmas and are limited to one open connection. PostgreSQL (lib/pq)
connections are recycled every 5 minutes.

# Schema Creation

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Tables

  - submissions: one row per quiz answer, keyed publicly by result_token

result_token is UNIQUE. Rows are inserted once and never updated or
deleted.

# Queries

	err := db.InsertSubmission(ctx, conn, &sub)
	sub, err := db.GetSubmissionByToken(ctx, conn, token)
	n, err := db.CountSubmissions(ctx, conn)

GetSubmissionByToken returns ErrNotFound when no row matches. Queries use
$N placeholders, which both drivers accept.
*/
package db

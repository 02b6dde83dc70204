// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/alma-gemea/auth"
	"github.com/danielhkuo/alma-gemea/cliparse"
	"github.com/danielhkuo/alma-gemea/db"
	"github.com/danielhkuo/alma-gemea/models"
	"github.com/danielhkuo/alma-gemea/profiles"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = ":memory:"

// SetupTestDB opens a fresh in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration with conversion
// tracking disabled
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3318,
		DatabaseURL:        TestDBURL,
		DatabaseType:       string(db.SQLite),
		CORSOrigin:         "*",
		GraphURL:           cliparse.DefaultGraphURL,
		GraphVersion:       cliparse.DefaultGraphVersion,
		PixelTimeout:       time.Second,
		ConversionValue:    models.DefaultValue,
		ConversionCurrency: models.DefaultCurrency,
		LogFormat:          "text",
		LogLevel:           "info",
	}
}

// CreateTestSubmission stores a submission for name and email and returns it
// with its ID, token, and assigned profile filled in
func CreateTestSubmission(t *testing.T, conn *sql.DB, name, email string) *models.Submission {
	t.Helper()

	token, err := auth.GenerateResultToken()
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	sub := &models.Submission{
		Name:            name,
		Email:           email,
		ResultProfileID: profiles.Pick(profiles.SubmissionSeed(name, "", "", "", "", "")).ID,
		ResultToken:     token,
	}
	if err := db.InsertSubmission(context.Background(), conn, sub); err != nil {
		t.Fatalf("Failed to create test submission: %v", err)
	}

	return sub
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/alma-gemea/models"
	"github.com/danielhkuo/alma-gemea/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	for _, path := range []string{"/health", "/api/health"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}

		var resp models.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: failed to decode body: %v", path, err)
		}
		if resp.Status != "ok" {
			t.Errorf("%s: expected status 'ok', got %q", path, resp.Status)
		}
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "alma-gemea API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownPath(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// 400 and 404 are valid handler answers; 405 means no route
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/metrics"},

		{"POST", "/submit"},
		{"GET", "/result/abc"},
		{"POST", "/track-conversion/abc"},
		{"GET", "/profiles"},

		{"POST", "/api/submit"},
		{"GET", "/api/result/abc"},
		{"POST", "/api/track-conversion/abc"},
		{"GET", "/api/profiles"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"GET to submit endpoint", "GET", "/submit", http.StatusMethodNotAllowed},
		{"GET to track-conversion endpoint", "GET", "/track-conversion/abc", http.StatusMethodNotAllowed},
		{"DELETE on result", "DELETE", "/api/result/abc", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

// Full flow through the mux: submit, read the result, track the conversion
func TestSubmissionFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	body, _ := json.Marshal(models.SubmitRequest{Name: "Ana", Email: "ana@example.com"})
	req := httptest.NewRequest("POST", "/api/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var submitted models.SubmitResponse
	testutil.AssertJSON(t, w, &submitted)

	if got := w.Header().Get("X-Request-ID"); got == "" {
		t.Error("Expected X-Request-ID header on routed responses")
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/result/"+submitted.Token, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var result models.ResultResponse
	testutil.AssertJSON(t, w, &result)
	if result.Profile.ID != submitted.Profile.ID {
		t.Errorf("Expected profile %d, got %d", submitted.Profile.ID, result.Profile.ID)
	}

	// Conversion tracking is not configured in tests
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/track-conversion/"+submitted.Token, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var tracked models.TrackConversionResponse
	testutil.AssertJSON(t, w, &tracked)
	if !tracked.Success || tracked.PixelTracked {
		t.Errorf("Expected success without tracking, got %+v", tracked)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	// Generate at least one routed request so the counter has a series
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/profiles", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if !strings.Contains(w.Body.String(), "alma_http_requests_total") {
		t.Error("Expected alma_http_requests_total in metrics output")
	}
}

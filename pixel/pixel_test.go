// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pixel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/alma-gemea/auth"
	"github.com/danielhkuo/alma-gemea/cliparse"
)

func testConfig(baseURL string) cliparse.Config {
	return cliparse.Config{
		PixelID:          "1234567890",
		PixelAccessToken: "test-token",
		GraphURL:         baseURL,
		GraphVersion:     "v18.0",
		PixelTimeout:     2 * time.Second,
	}
}

func TestSendEvent(t *testing.T) {
	var gotPath, gotToken, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events_received":1,"messages":[],"fbtrace_id":"trace-1"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	now := time.Unix(1700000000, 0)
	ev := NewPurchaseEvent("  Ana@Example.com ", 19.90, "BRL", now)

	resp, err := client.SendEvent(context.Background(), ev)
	if err != nil {
		t.Fatalf("SendEvent() error = %v", err)
	}

	if resp.EventsReceived != 1 || resp.FBTraceID != "trace-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if gotPath != "/v18.0/1234567890/events" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotToken != "test-token" {
		t.Errorf("expected access_token query param, got %q", gotToken)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}

	data, ok := gotBody["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one event in data, got %v", gotBody["data"])
	}
	event := data[0].(map[string]any)

	if event["event_name"] != "Purchase" {
		t.Errorf("event_name = %v", event["event_name"])
	}
	if event["event_time"] != float64(1700000000) {
		t.Errorf("event_time = %v", event["event_time"])
	}
	if event["action_source"] != "website" {
		t.Errorf("action_source = %v", event["action_source"])
	}

	userData := event["user_data"].(map[string]any)
	em := userData["em"].([]any)
	if len(em) != 1 || em[0] != auth.HashEmail("ana@example.com") {
		t.Errorf("em = %v, want hashed email", em)
	}

	customData := event["custom_data"].(map[string]any)
	if customData["currency"] != "BRL" {
		t.Errorf("currency = %v", customData["currency"])
	}
	// Value is sent as a string
	if customData["value"] != "19.9" {
		t.Errorf("value = %v, want \"19.9\"", customData["value"])
	}
}

func TestSendEvent_NoEmail(t *testing.T) {
	var rawEm json.RawMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Data []struct {
				UserData map[string]json.RawMessage `json:"user_data"`
			} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Data) != 1 {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		rawEm = body.Data[0].UserData["em"]
		w.Write([]byte(`{"events_received":1}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.SendEvent(context.Background(), NewPurchaseEvent("", 19.90, "BRL", time.Now()))
	if err != nil {
		t.Fatalf("SendEvent() error = %v", err)
	}

	// An empty list, not null
	if string(rawEm) != "[]" {
		t.Errorf("expected em to be [], got %s", rawEm)
	}
}

func TestSendEvent_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  cliparse.Config
	}{
		{"no credentials", cliparse.Config{}},
		{"no token", cliparse.Config{PixelID: "123"}},
		{"no pixel id", cliparse.Config{PixelAccessToken: "tok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.cfg)
			if client.Enabled() {
				t.Error("client should not be enabled")
			}
			_, err := client.SendEvent(context.Background(), NewPurchaseEvent("a@b.c", 1, "BRL", time.Now()))
			if !errors.Is(err, ErrNotConfigured) {
				t.Errorf("expected ErrNotConfigured, got %v", err)
			}
		})
	}
}

func TestSendEvent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.SendEvent(context.Background(), NewPurchaseEvent("a@b.c", 19.90, "BRL", time.Now()))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
}

func TestSendEvent_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	cfg := testConfig(server.URL)
	cfg.PixelTimeout = 50 * time.Millisecond
	client := NewClient(cfg)

	start := time.Now()
	_, err := client.SendEvent(context.Background(), NewPurchaseEvent("a@b.c", 19.90, "BRL", time.Now()))
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > 2*time.Second {
		t.Errorf("SendEvent should honour the client timeout, took %v", time.Since(start))
	}
}

func TestSendEvent_BadResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	if _, err := client.SendEvent(context.Background(), NewPurchaseEvent("a@b.c", 19.90, "BRL", time.Now())); err == nil {
		t.Error("expected decode error")
	}
}

func TestNewPurchaseEvent(t *testing.T) {
	now := time.Now()
	ev := NewPurchaseEvent("Ana@Example.com", 19.90, "BRL", now)

	if ev.Name != "Purchase" {
		t.Errorf("Name = %q, want Purchase", ev.Name)
	}
	if ev.EmailHash != auth.HashEmail("ana@example.com") {
		t.Errorf("EmailHash = %q", ev.EmailHash)
	}
	if ev.EmailHash == "Ana@Example.com" {
		t.Error("email must be hashed")
	}
	if !ev.Time.Equal(now) || ev.Value != 19.90 || ev.Currency != "BRL" {
		t.Errorf("unexpected event %+v", ev)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pixel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/danielhkuo/alma-gemea/auth"
	"github.com/danielhkuo/alma-gemea/cliparse"
	"github.com/danielhkuo/alma-gemea/models"
)

var ErrNotConfigured = errors.New("conversions API not configured")

// APIError is a non-2xx answer from the Conversions API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("conversions API returned %d: %s", e.StatusCode, e.Body)
}

// Event is one conversion to report
type Event struct {
	Name      string
	Time      time.Time
	EmailHash string
	Value     float64
	Currency  string
}

// NewPurchaseEvent builds a Purchase event for the given email.
// The email is hashed here and never leaves the process in clear text.
func NewPurchaseEvent(email string, value float64, currency string, now time.Time) Event {
	return Event{
		Name:      models.EventPurchase,
		Time:      now,
		EmailHash: auth.HashEmail(email),
		Value:     value,
		Currency:  currency,
	}
}

// Wire format

type eventsRequest struct {
	Data []eventData `json:"data"`
}

type eventData struct {
	EventName    string     `json:"event_name"`
	EventTime    int64      `json:"event_time"`
	ActionSource string     `json:"action_source"`
	UserData     userData   `json:"user_data"`
	CustomData   customData `json:"custom_data"`
}

type userData struct {
	Email []string `json:"em"`
}

type customData struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// EventResponse is the Conversions API reply
type EventResponse struct {
	EventsReceived int      `json:"events_received"`
	Messages       []string `json:"messages"`
	FBTraceID      string   `json:"fbtrace_id"`
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	version     string
	pixelID     string
	accessToken string
}

func NewClient(cfg cliparse.Config) *Client {
	timeout := cfg.PixelTimeout
	if timeout <= 0 {
		timeout = cliparse.DefaultPixelTimeout
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     cfg.GraphURL,
		version:     cfg.GraphVersion,
		pixelID:     cfg.PixelID,
		accessToken: cfg.PixelAccessToken,
	}
}

// Enabled reports whether both the pixel ID and access token are set
func (c *Client) Enabled() bool {
	return c.pixelID != "" && c.accessToken != ""
}

// SendEvent posts a single event. Returns ErrNotConfigured when the
// client has no credentials, and *APIError for non-2xx answers.
func (c *Client) SendEvent(ctx context.Context, ev Event) (*EventResponse, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	emails := []string{}
	if ev.EmailHash != "" {
		emails = append(emails, ev.EmailHash)
	}

	body, err := json.Marshal(eventsRequest{
		Data: []eventData{{
			EventName:    ev.Name,
			EventTime:    ev.Time.Unix(),
			ActionSource: models.ActionSourceWebsite,
			UserData:     userData{Email: emails},
			CustomData: customData{
				Currency: ev.Currency,
				Value:    strconv.FormatFloat(ev.Value, 'f', -1, 64),
			},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.eventsURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send event: %w", err)
	}
	defer resp.Body.Close()

	// Cap how much of an error page we keep
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out EventResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &out, nil
}

func (c *Client) eventsURL() string {
	q := url.Values{}
	q.Set("access_token", c.accessToken)
	return c.baseURL + "/" + c.version + "/" + url.PathEscape(c.pixelID) + "/events?" + q.Encode()
}

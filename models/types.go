// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"
)

// Conversion event defaults
const (
	EventPurchase       = "Purchase"
	DefaultValue        = 19.90
	DefaultCurrency     = "BRL"
	ActionSourceWebsite = "website"
)

// Conversion outcomes, used as metric labels
const (
	ConversionTracked = "tracked"
	ConversionSkipped = "skipped"
	ConversionFailed  = "failed"
)

// Request types

type SubmitRequest struct {
	Name        Text            `json:"name"`
	Birthdate   Text            `json:"birthdate"`
	City        Text            `json:"city"`
	Email       Text            `json:"email"`
	ZodiacSign  Text            `json:"zodiacSign"`
	Height      Text            `json:"height"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
	TarotCards  []CardID        `json:"tarotCards,omitempty"`
}

// Text is a form field that accepts a JSON string or number. Numbers keep
// their literal text (165, 1.65). null leaves the field empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		*t = Text(v)
	case json.Number:
		*t = Text(v.String())
	default:
		return &json.UnmarshalTypeError{Value: jsonKind(v), Type: reflect.TypeFor[Text]()}
	}
	return nil
}

// CardID is one selected tarot card, either a number (7) or a name
// ("the-fool"). Numbers keep their literal text.
type CardID string

func (c *CardID) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*c = CardID(v)
	case json.Number:
		*c = CardID(v.String())
	default:
		return &json.UnmarshalTypeError{Value: jsonKind(v), Type: reflect.TypeFor[CardID]()}
	}
	return nil
}

func decodeScalar(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "value"
}

// Response types

type SubmitResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

type ResultResponse struct {
	Token      string    `json:"token"`
	Profile    Profile   `json:"profile"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedAgo string    `json:"created_ago"`
}

type TrackConversionResponse struct {
	Success      bool `json:"success"`
	PixelTracked bool `json:"pixel_tracked"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type ProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
}

// Domain types

type Profile struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Submission struct {
	ID              int64     `json:"-"`
	Name            string    `json:"name"`
	Birthdate       string    `json:"birthdate"`
	City            string    `json:"city"`
	Email           string    `json:"-"` // Never expose in JSON
	ZodiacSign      string    `json:"zodiac_sign"`
	Height          string    `json:"height"`
	Preferences     *string   `json:"preferences,omitempty"`
	TarotCards      string    `json:"tarot_cards"`
	ResultProfileID int       `json:"result_profile_id"`
	ResultToken     string    `json:"result_token"`
	CreatedAt       time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

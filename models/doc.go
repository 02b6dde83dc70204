// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitRequest: name, birthdate, city, email, zodiacSign, height,
    preferences, tarotCards

Field names follow the frontend's camelCase for the submit form. Text
fields accept a string or a number, and tarot cards may be numbers or
names; both keep the literal text. Other JSON types are rejected with a
*json.UnmarshalTypeError naming the field.

# Response Types

Types for JSON responses:

  - SubmitResponse: token, profile
  - ResultResponse: token, profile, created_at, created_ago
  - TrackConversionResponse: success, pixel_tracked
  - HealthResponse: status, time
  - ProfilesResponse: profiles
  - ErrorResponse: error, message, detail

# Domain Types

  - Profile: static persona (id, name, description, image_url)
  - Submission: one stored quiz answer and its assigned profile

Submission.Email is never serialized.

# Constants

Conversion event:

	EventPurchase   = "Purchase"
	DefaultValue    = 19.90
	DefaultCurrency = "BRL"

Conversion outcomes:

	ConversionTracked = "tracked"
	ConversionSkipped = "skipped"
	ConversionFailed  = "failed"
*/
package models

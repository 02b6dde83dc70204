// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Alma Gêmea API.

# Handler Types

Each handler is a struct holding its dependencies:

  - SubmissionHandler: stores quiz answers and assigns a profile
  - ResultsHandler: result lookup by token and the profile list
  - ConversionHandler: Purchase tracking through an EventSender
  - HealthHandler: liveness with a database ping

Handlers are created via constructor functions:

	submissionHandler := handlers.NewSubmissionHandler(db)
	conversionHandler := handlers.NewConversionHandler(db, cfg, pixel.NewClient(cfg))

# Errors

Errors are JSON with a machine-readable "error" and optional "detail":

	400 {"error": "name is required"}
	400 {"error": "invalid_field", "detail": "height: unsupported JSON type object"}
	413 {"error": "payload_too_large"}
	404 {"error": "not_found"}
	500 {"error": "db_error", "detail": "..."}
	500 {"error": "profile_missing"}

A submit body that is not JSON, or not an object, counts as an empty form
and fails on the name. Text fields take strings or numbers and tarot cards
take numbers or names; any other type is answered with invalid_field.

A malformed or unknown token is always 404 so token shape is not revealed.

# Conversion Tracking

TrackConversion answers 200 whenever the token exists. pixel_tracked
reports whether the event reached the Conversions API. Delivery failures
are logged, never surfaced as an HTTP error, and are not retried.
*/
package handlers

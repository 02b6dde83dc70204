// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Alma Gêmea API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Every API route is also mounted under /api:

	GET  /health                   - Liveness and database check
	POST /submit                   - Store quiz answers, assign profile
	GET  /result/{token}           - Result for a token
	POST /track-conversion/{token} - Report a Purchase conversion
	GET  /profiles                 - Profile catalogue

Operational:

	GET /metrics - Prometheus metrics
	GET /        - Version banner

API routes are wrapped in middleware.WithLogging, which assigns request
IDs and records request metrics.
*/
package router

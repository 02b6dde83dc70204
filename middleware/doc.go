// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). Each request gets an X-Request-ID, taken from the
incoming header or generated as a UUID, echoed on the response and available
to handlers via RequestID(r.Context()). Completed requests are also counted
in the Prometheus request metrics under their route pattern.

# Server-wide Middleware

	handler := middleware.Recovery(
		middleware.CORS(cfg.CORSOrigin)(
			middleware.SecureHeaders(mux),
		),
	)

CORS allows GET, POST, OPTIONS with Content-Type, Authorization and
X-Request-ID. Credentials are only allowed for a fixed origin. Recovery
converts handler panics into a 500 JSON error.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.CodedErrorResponse(w, http.StatusNotFound, "not_found", "")

Parse JSON request bodies:

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// ...
	}

# Client IP Extraction

Get the client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware

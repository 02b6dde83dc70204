// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/alma-gemea/auth"
	"github.com/danielhkuo/alma-gemea/db"
	"github.com/danielhkuo/alma-gemea/middleware"
	"github.com/danielhkuo/alma-gemea/models"
	"github.com/danielhkuo/alma-gemea/profiles"
	"github.com/dustin/go-humanize"
)

type ResultsHandler struct {
	db *sql.DB
}

func NewResultsHandler(db *sql.DB) *ResultsHandler {
	return &ResultsHandler{db: db}
}

// GetResult handles GET /result/{token}
func (h *ResultsHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	sub, ok := lookupSubmission(w, r, h.db)
	if !ok {
		return
	}

	profile, found := profiles.ByID(sub.ResultProfileID)
	if !found {
		slog.Error("submission references unknown profile",
			"profile_id", sub.ResultProfileID,
			"request_id", middleware.RequestID(r.Context()),
		)
		middleware.CodedErrorResponse(w, http.StatusInternalServerError, "profile_missing", "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultResponse{
		Token:      sub.ResultToken,
		Profile:    profile,
		CreatedAt:  sub.CreatedAt.UTC(),
		CreatedAgo: humanize.Time(sub.CreatedAt),
	})
}

// ListProfiles handles GET /profiles
func (h *ResultsHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ProfilesResponse{
		Profiles: profiles.All(),
	})
}

// lookupSubmission resolves the {token} path value. On failure it writes
// the error response and returns false.
func lookupSubmission(w http.ResponseWriter, r *http.Request, conn *sql.DB) (*models.Submission, bool) {
	token := r.PathValue("token")
	if err := auth.ValidateToken(token); err != nil {
		middleware.CodedErrorResponse(w, http.StatusNotFound, "not_found", "")
		return nil, false
	}

	sub, err := db.GetSubmissionByToken(r.Context(), conn, token)
	if errors.Is(err, db.ErrNotFound) {
		middleware.CodedErrorResponse(w, http.StatusNotFound, "not_found", "")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to query submission", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.CodedErrorResponse(w, http.StatusInternalServerError, "db_error", err.Error())
		return nil, false
	}

	return sub, true
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/alma-gemea/auth"
	"github.com/danielhkuo/alma-gemea/db"
	"github.com/danielhkuo/alma-gemea/metrics"
	"github.com/danielhkuo/alma-gemea/middleware"
	"github.com/danielhkuo/alma-gemea/models"
	"github.com/danielhkuo/alma-gemea/profiles"
)

// maxSubmitBody bounds the submit payload
const maxSubmitBody = 64 << 10

type SubmissionHandler struct {
	db *sql.DB
}

func NewSubmissionHandler(db *sql.DB) *SubmissionHandler {
	return &SubmissionHandler{db: db}
}

// Submit handles POST /submit
// Stores the answers and returns the result token with the assigned profile
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	var req models.SubmitRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBody)
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			middleware.CodedErrorResponse(w, http.StatusRequestEntityTooLarge, "payload_too_large", "")
			return
		case errors.As(err, &typeErr) && typeErr.Field != "":
			middleware.CodedErrorResponse(w, http.StatusBadRequest, "invalid_field",
				fmt.Sprintf("%s: unsupported JSON type %s", typeErr.Field, typeErr.Value))
			return
		default:
			// An unparseable body is an empty form, so it fails on name below
			slog.Debug("ignoring unparseable submit body", "error", err, "request_id", requestID)
			req = models.SubmitRequest{}
		}
	}

	name := strings.TrimSpace(string(req.Name))
	if name == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, "name is required", "")
		return
	}

	sub := models.Submission{
		Name:        name,
		Birthdate:   strings.TrimSpace(string(req.Birthdate)),
		City:        strings.TrimSpace(string(req.City)),
		Email:       strings.TrimSpace(string(req.Email)),
		ZodiacSign:  strings.TrimSpace(string(req.ZodiacSign)),
		Height:      strings.TrimSpace(string(req.Height)),
		Preferences: preferencesText(req.Preferences),
		TarotCards:  joinCards(req.TarotCards),
	}

	seed := profiles.SubmissionSeed(sub.Name, sub.Birthdate, sub.City, sub.ZodiacSign, sub.Height, sub.TarotCards)
	profile := profiles.Pick(seed)
	sub.ResultProfileID = profile.ID

	token, err := auth.GenerateResultToken()
	if err != nil {
		slog.Error("failed to generate result token", "error", err, "request_id", requestID)
		middleware.CodedErrorResponse(w, http.StatusInternalServerError, "token_error", err.Error())
		return
	}
	sub.ResultToken = token

	if err := db.InsertSubmission(r.Context(), h.db, &sub); err != nil {
		slog.Error("failed to insert submission", "error", err, "request_id", requestID)
		middleware.CodedErrorResponse(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	metrics.ObserveSubmission(profile.ID)
	slog.Info("submission created",
		"submission_id", sub.ID,
		"profile_id", profile.ID,
		"request_id", requestID,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		Token:   token,
		Profile: profile,
	})
}

// joinCards turns [1, 3, 7] into "1,3,7"
func joinCards(cards []models.CardID) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ",")
}

// preferencesText keeps a JSON string as plain text and anything else
// (object, array, number) as its compact JSON form. null or absent is nil.
func preferencesText(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return &s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		text := string(trimmed)
		return &text
	}
	text := buf.String()
	return &text
}

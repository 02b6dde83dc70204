// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/alma-gemea/auth"
	"github.com/danielhkuo/alma-gemea/cliparse"
	"github.com/danielhkuo/alma-gemea/metrics"
	"github.com/danielhkuo/alma-gemea/middleware"
	"github.com/danielhkuo/alma-gemea/models"
	"github.com/danielhkuo/alma-gemea/pixel"
)

// EventSender delivers conversion events. *pixel.Client satisfies it.
type EventSender interface {
	Enabled() bool
	SendEvent(ctx context.Context, ev pixel.Event) (*pixel.EventResponse, error)
}

type ConversionHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	sender EventSender
}

func NewConversionHandler(db *sql.DB, cfg cliparse.Config, sender EventSender) *ConversionHandler {
	return &ConversionHandler{db: db, cfg: cfg, sender: sender}
}

// TrackConversion handles POST /track-conversion/{token}
// Reports a Purchase for the submission. Delivery failures are logged and
// reported as pixel_tracked=false; the request itself still succeeds.
func (h *ConversionHandler) TrackConversion(w http.ResponseWriter, r *http.Request) {
	sub, ok := lookupSubmission(w, r, h.db)
	if !ok {
		return
	}

	requestID := middleware.RequestID(r.Context())
	tracked := h.send(r.Context(), sub, requestID)

	middleware.JSONResponse(w, http.StatusOK, models.TrackConversionResponse{
		Success:      true,
		PixelTracked: tracked,
	})
}

func (h *ConversionHandler) send(ctx context.Context, sub *models.Submission, requestID string) bool {
	if h.sender == nil || !h.sender.Enabled() {
		slog.Warn("conversion tracking not configured, skipping event", "request_id", requestID)
		metrics.ObserveConversion(models.ConversionSkipped)
		return false
	}

	ev := pixel.NewPurchaseEvent(sub.Email, h.cfg.ConversionValue, h.cfg.ConversionCurrency, time.Now())

	// The event is sent even if the caller goes away; the client timeout bounds it
	resp, err := h.sender.SendEvent(context.WithoutCancel(ctx), ev)
	if err != nil {
		slog.Error("failed to send conversion event", "error", err, "request_id", requestID)
		metrics.ObserveConversion(models.ConversionFailed)
		return false
	}

	attrs := []any{
		"events_received", resp.EventsReceived,
		"fbtrace_id", resp.FBTraceID,
		"request_id", requestID,
	}
	if sub.Email != "" {
		attrs = append(attrs, "email_hash", auth.HashEmail(sub.Email)[:16])
	}
	slog.Info("conversion event sent", attrs...)
	metrics.ObserveConversion(models.ConversionTracked)
	return true
}

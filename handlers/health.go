// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/alma-gemea/middleware"
	"github.com/danielhkuo/alma-gemea/models"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		slog.Warn("health check database ping failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status: "degraded",
			Time:   time.Now().UTC(),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC(),
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/alma-gemea/cliparse"
	"github.com/danielhkuo/alma-gemea/handlers"
	"github.com/danielhkuo/alma-gemea/middleware"
	"github.com/danielhkuo/alma-gemea/pixel"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIPrefix mounts every API route a second time, for frontends that
// proxy through /api
const APIPrefix = "/api"

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	submissionHandler := handlers.NewSubmissionHandler(db)
	resultsHandler := handlers.NewResultsHandler(db)
	conversionHandler := handlers.NewConversionHandler(db, cfg, pixel.NewClient(cfg))

	routes := []struct {
		method  string
		path    string
		handler http.HandlerFunc
	}{
		{"GET", "/health", healthHandler.Health},
		{"POST", "/submit", submissionHandler.Submit},
		{"GET", "/result/{token}", resultsHandler.GetResult},
		{"POST", "/track-conversion/{token}", conversionHandler.TrackConversion},
		{"GET", "/profiles", resultsHandler.ListProfiles},
	}

	for _, rt := range routes {
		h := middleware.WithLogging(rt.handler)
		mux.HandleFunc(rt.method+" "+rt.path, h)
		mux.HandleFunc(rt.method+" "+APIPrefix+rt.path, h)
	}

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("alma-gemea API v1"))
	})

	return mux
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/alma-gemea/models"
)

const (
	DefaultPort         = 8000
	DefaultDatabaseURL  = "file:data.db"
	DefaultGraphURL     = "https://graph.facebook.com"
	DefaultGraphVersion = "v18.0"
	DefaultPixelTimeout = 5 * time.Second
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	CORSOrigin   string

	// Conversions API
	PixelID            string
	PixelAccessToken   string
	GraphURL           string
	GraphVersion       string
	PixelTimeout       time.Duration
	ConversionValue    float64
	ConversionCurrency string

	LogFormat string
	LogLevel  string
}

// LoadDotEnv reads KEY=VALUE pairs from path into the environment.
// Variables already set are left alone, and a missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("alma-gemea", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.PixelID, "pixel-id", "", "Facebook Pixel ID (prefer env)")
	fs.StringVar(&cfg.PixelAccessToken, "pixel-token", "", "Facebook Conversions API access token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = envOr("DATABASE_URL", DefaultDatabaseURL)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = inferDatabaseType(cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = envOr("CORS_ORIGIN", "*")
	}

	// Pixel settings are optional; tracking is skipped without them
	if cfg.PixelID == "" {
		cfg.PixelID = os.Getenv("FACEBOOK_PIXEL_ID")
	}
	if cfg.PixelAccessToken == "" {
		cfg.PixelAccessToken = os.Getenv("FACEBOOK_ACCESS_TOKEN")
	}
	cfg.GraphURL = strings.TrimRight(envOr("FACEBOOK_GRAPH_URL", DefaultGraphURL), "/")
	cfg.GraphVersion = envOr("FACEBOOK_GRAPH_VERSION", DefaultGraphVersion)

	cfg.PixelTimeout = DefaultPixelTimeout
	if v := os.Getenv("FACEBOOK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.New("invalid FACEBOOK_TIMEOUT env variable")
		}
		cfg.PixelTimeout = d
	}

	cfg.ConversionValue = models.DefaultValue
	if v := os.Getenv("CONVERSION_VALUE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return Config{}, errors.New("invalid CONVERSION_VALUE env variable")
		}
		cfg.ConversionValue = f
	}
	cfg.ConversionCurrency = strings.ToUpper(envOr("CONVERSION_CURRENCY", models.DefaultCurrency))

	cfg.LogFormat = envOr("LOG_FORMAT", "text")
	cfg.LogLevel = envOr("LOG_LEVEL", "info")

	return cfg, nil
}

// PixelEnabled reports whether conversion tracking is configured
func (c Config) PixelEnabled() bool {
	return c.PixelID != "" && c.PixelAccessToken != ""
}

func inferDatabaseType(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

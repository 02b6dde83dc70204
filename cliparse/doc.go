// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

Load an optional .env file, then parse flags:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values already present in the environment are never replaced by .env.

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: SQLite DSN or PostgreSQL URL (default: file:data.db)
  - DatabaseType: sqlite or postgres (inferred from the URL when unset)
  - CORSOrigin: Allowed origin for browsers (default: *)
  - PixelID, PixelAccessToken: Conversions API credentials (optional)
  - GraphURL, GraphVersion: Conversions API endpoint (default: v18.0)
  - PixelTimeout: Outbound call timeout (default: 5s)
  - ConversionValue, ConversionCurrency: Purchase event value (19.90 BRL)
  - LogFormat, LogLevel: text|json and debug|info|warn|error

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--cors-origin Allowed CORS origin
	--pixel-id    Facebook Pixel ID
	--pixel-token Conversions API access token

# Environment Variables

	PORT                  → -p
	DATABASE_URL          → -d
	DATABASE_TYPE         → -t
	CORS_ORIGIN           → --cors-origin
	FACEBOOK_PIXEL_ID     → --pixel-id
	FACEBOOK_ACCESS_TOKEN → --pixel-token
	FACEBOOK_GRAPH_URL
	FACEBOOK_GRAPH_VERSION
	FACEBOOK_TIMEOUT
	CONVERSION_VALUE
	CONVERSION_CURRENCY
	LOG_FORMAT
	LOG_LEVEL

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for a malformed PORT, FACEBOOK_TIMEOUT or
CONVERSION_VALUE, and for a database type other than sqlite or postgres.
Missing pixel credentials are not an error; conversion tracking is then
skipped.
*/
package cliparse

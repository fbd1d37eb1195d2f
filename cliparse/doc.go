// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: sqlite file path or PostgreSQL connection string
    (required for postgres; sqlite defaults to data/raffle-app.db)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)
  - CORSOrigin: allowed origin; empty echoes the request's Origin

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--log-level   Log level
	--log-format  Log format
	--cors-origin Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_LEVEL     → --log-level
	LOG_FORMAT    → --log-format
	CORS_ORIGIN   → --cors-origin

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file first (github.com/joho/godotenv); variables already set in the
environment win over the file.

# Example

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	handler := router.NewRouter(conn, cfg)
*/
package cliparse

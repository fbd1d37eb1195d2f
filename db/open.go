// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// DefaultSQLitePath is used when no database URL is configured for sqlite.
const DefaultSQLitePath = "data/raffle-app.db"

// Open connects to the database for the given dialect and verifies the
// connection. sqlite connections are limited to a single open connection so
// every write is serialized, and foreign keys are enforced on it.
func Open(dialect, url string) (*sql.DB, error) {
	switch dialect {
	case SQLite:
		return openSQLite(url)
	case Postgres:
		if url == "" {
			return nil, fmt.Errorf("database URL required for %s", Postgres)
		}
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}
}

func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultSQLitePath
	}
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// PRAGMAs are per connection; with a single pooled connection they stick.
	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return conn, nil
}

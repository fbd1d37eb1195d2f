// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	schema, err := SchemaSQL(dialect)
	if err != nil {
		return err
	}

	// Statements are run one by one; lib/pq accepts multi-statement Exec but
	// keeping both dialects on the same path makes failures easier to locate.
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// SchemaSQL returns the authoritative schema statements for a dialect.
func SchemaSQL(dialect string) ([]string, error) {
	switch dialect {
	case SQLite:
		return sqliteSchema, nil
	case Postgres:
		return postgresSchema, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}
}

// TableNames lists the application tables present in the database.
func TableNames(ctx context.Context, db *sql.DB, dialect string) ([]string, error) {
	var query string
	switch dialect {
	case SQLite:
		query = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	case Postgres:
		query = `SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() ORDER BY table_name`
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS raffles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    created_at DATETIME NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    raffle_id INTEGER NOT NULL REFERENCES raffles(id),
    name TEXT NOT NULL,
    email TEXT,
    created_at DATETIME NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_raffle_id ON entries(raffle_id)`,
	`CREATE TABLE IF NOT EXISTS winners (
    raffle_id INTEGER PRIMARY KEY REFERENCES raffles(id),
    entry_id INTEGER NOT NULL REFERENCES entries(id),
    selected_at DATETIME NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_winners_entry_id ON winners(entry_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS raffles (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS entries (
    id BIGSERIAL PRIMARY KEY,
    raffle_id BIGINT NOT NULL REFERENCES raffles(id),
    name TEXT NOT NULL,
    email TEXT,
    created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_raffle_id ON entries(raffle_id)`,
	`CREATE TABLE IF NOT EXISTS winners (
    raffle_id BIGINT PRIMARY KEY REFERENCES raffles(id),
    entry_id BIGINT NOT NULL REFERENCES entries(id),
    selected_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_winners_entry_id ON winners(entry_id)`,
}

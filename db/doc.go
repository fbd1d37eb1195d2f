// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens connections and creates the schema.

# Dialects

Two database types are supported:

  - sqlite (default): modernc.org/sqlite, file at data/raffle-app.db unless
    a URL is given. One open connection, foreign_keys and busy_timeout on.
  - postgres: github.com/lib/pq, URL required.

	conn, err := db.Open(db.SQLite, "")
	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call CreateSchema multiple times - uses IF NOT EXISTS for all tables
and indexes.

# Tables

	raffles  id, name, description, created_at
	entries  id, raffle_id, name, email, created_at
	winners  raffle_id (primary key), entry_id, selected_at

# Relationships

	raffles 1──* entries
	raffles 1──? winners ──1 entries

The primary key on winners.raffle_id is what makes a second winner for the
same raffle impossible, even when two draws race. Foreign keys do not
cascade; removing dependents is done explicitly inside one transaction by
the store.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the raffle API server.

The service manages raffles and their entries and draws exactly one winner
per raffle. A winner, once drawn, stays until it is cleared explicitly or its
entry is deleted.

# Starting the Server

With no configuration the server listens on port 3000 and stores data in
data/raffle-app.db:

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first; variables already set
in the environment win.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - LOG_FORMAT (-log-format): text or json (default: text)
  - CORS_ORIGIN (-cors-origin): allowed origin (default: echo the request)

# Architecture

  - handlers: HTTP request handlers (raffles, entries, winner, system)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request ids, JSON helpers
  - raffle: Validation and the raffle/entry/winner operations
  - draw: Uniform random selection
  - store: SQL queries and transactions
  - models: Records and request/response types
  - db: Connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

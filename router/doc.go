// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the raffle API.

# Route Registration

NewRouter builds the service, the handlers and the mux, and wraps the mux
in CORS:

	handler := router.NewRouter(db, cfg)

# Endpoints

System:

	GET /          - Banner
	GET /health    - Liveness, pings the database
	GET /db-test   - Lists database tables

Raffles:

	GET        /raffles      - List, newest first
	POST       /raffles      - Create
	GET        /raffles/{id} - Get one
	PATCH|PUT  /raffles/{id} - Partial update
	DELETE     /raffles/{id} - Delete with entries and winner

Entries:

	GET        /raffles/{id}/entries           - List, newest first
	POST       /raffles/{id}/entries           - Add
	GET        /raffles/{id}/entries/{entryId} - Get one
	PATCH|PUT  /raffles/{id}/entries/{entryId} - Partial update
	DELETE     /raffles/{id}/entries/{entryId} - Delete, clearing the winner if needed

Winner:

	POST   /raffles/{id}/winner - Draw once
	GET    /raffles/{id}/winner - Current winner
	DELETE /raffles/{id}/winner - Clear the winner

Every route except / and /health is wrapped in middleware.WithLogging.
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the raffle API.

# Handler Types

  - RaffleHandler: raffle create, list, get, update, delete
  - EntryHandler: entry create, list, get, update, delete
  - WinnerHandler: select, get and clear a raffle's winner
  - SystemHandler: banner, health check and table listing

Raffle, entry and winner handlers share one *raffle.Service:

	svc := raffle.NewService(store.New(db, cfg.DatabaseType))
	raffleHandler := handlers.NewRaffleHandler(svc)

Handlers only parse paths and bodies; every rule lives in the raffle package.

# Raffles and Entries

	GET    /raffles                          → ListRaffles
	POST   /raffles                          → CreateRaffle (201)
	GET    /raffles/{id}                     → GetRaffle
	PATCH  /raffles/{id}                     → UpdateRaffle
	DELETE /raffles/{id}                     → DeleteRaffle (cascades)
	GET    /raffles/{id}/entries             → ListEntries
	POST   /raffles/{id}/entries             → CreateEntry (201)
	GET    /raffles/{id}/entries/{entryId}   → GetEntry
	PATCH  /raffles/{id}/entries/{entryId}   → UpdateEntry
	DELETE /raffles/{id}/entries/{entryId}   → DeleteEntry (reports winner_cleared)

# Winner

	POST   /raffles/{id}/winner → SelectWinner (201, or 409 with the existing winner)
	GET    /raffles/{id}/winner → GetWinner
	DELETE /raffles/{id}/winner → ClearWinner

# Status Codes

	400  invalid JSON, invalid path id, validation failure, no entries to draw
	404  raffle, entry or winner not found
	409  winner already selected
	500  storage failure (logged with the request id)
*/
package handlers

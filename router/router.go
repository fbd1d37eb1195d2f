// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/raffle-app/cliparse"
	"github.com/danielhkuo/raffle-app/handlers"
	"github.com/danielhkuo/raffle-app/middleware"
	"github.com/danielhkuo/raffle-app/raffle"
	"github.com/danielhkuo/raffle-app/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	return NewRouterWithService(db, cfg, raffle.NewService(store.New(db, cfg.DatabaseType)))
}

// NewRouterWithService is NewRouter with a caller-supplied service, so tests
// can fix the picker and clock.
func NewRouterWithService(db *sql.DB, cfg cliparse.Config, svc *raffle.Service) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(db, cfg)
	raffleHandler := handlers.NewRaffleHandler(svc)
	entryHandler := handlers.NewEntryHandler(svc)
	winnerHandler := handlers.NewWinnerHandler(svc)

	// System
	mux.HandleFunc("GET /{$}", systemHandler.Root)
	mux.HandleFunc("GET /health", systemHandler.Health)
	mux.HandleFunc("GET /db-test", middleware.WithLogging(systemHandler.DBTest))

	// Raffles
	mux.HandleFunc("GET /raffles", middleware.WithLogging(raffleHandler.ListRaffles))
	mux.HandleFunc("POST /raffles", middleware.WithLogging(raffleHandler.CreateRaffle))
	mux.HandleFunc("GET /raffles/{id}", middleware.WithLogging(raffleHandler.GetRaffle))
	mux.HandleFunc("PATCH /raffles/{id}", middleware.WithLogging(raffleHandler.UpdateRaffle))
	mux.HandleFunc("PUT /raffles/{id}", middleware.WithLogging(raffleHandler.UpdateRaffle))
	mux.HandleFunc("DELETE /raffles/{id}", middleware.WithLogging(raffleHandler.DeleteRaffle))

	// Entries
	mux.HandleFunc("GET /raffles/{id}/entries", middleware.WithLogging(entryHandler.ListEntries))
	mux.HandleFunc("POST /raffles/{id}/entries", middleware.WithLogging(entryHandler.CreateEntry))
	mux.HandleFunc("GET /raffles/{id}/entries/{entryId}", middleware.WithLogging(entryHandler.GetEntry))
	mux.HandleFunc("PATCH /raffles/{id}/entries/{entryId}", middleware.WithLogging(entryHandler.UpdateEntry))
	mux.HandleFunc("PUT /raffles/{id}/entries/{entryId}", middleware.WithLogging(entryHandler.UpdateEntry))
	mux.HandleFunc("DELETE /raffles/{id}/entries/{entryId}", middleware.WithLogging(entryHandler.DeleteEntry))

	// Winner
	mux.HandleFunc("POST /raffles/{id}/winner", middleware.WithLogging(winnerHandler.SelectWinner))
	mux.HandleFunc("GET /raffles/{id}/winner", middleware.WithLogging(winnerHandler.GetWinner))
	mux.HandleFunc("DELETE /raffles/{id}/winner", middleware.WithLogging(winnerHandler.ClearWinner))

	return middleware.CORS(cfg.CORSOrigin, mux)
}

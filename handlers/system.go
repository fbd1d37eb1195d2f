// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/raffle-app/cliparse"
	"github.com/danielhkuo/raffle-app/db"
	"github.com/danielhkuo/raffle-app/middleware"
	"github.com/danielhkuo/raffle-app/models"
)

type SystemHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSystemHandler(db *sql.DB, cfg cliparse.Config) *SystemHandler {
	return &SystemHandler{db: db, cfg: cfg}
}

// Root handles GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Raffle App Backend Running"))
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// DBTest handles GET /db-test
// Lists the tables in the connected database.
func (h *SystemHandler) DBTest(w http.ResponseWriter, r *http.Request) {
	tables, err := db.TableNames(r.Context(), h.db, h.cfg.DatabaseType)
	if err != nil {
		slog.Error("failed to list tables", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TablesResponse{Tables: tables})
}

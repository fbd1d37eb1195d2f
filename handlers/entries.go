// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/raffle-app/middleware"
	"github.com/danielhkuo/raffle-app/models"
	"github.com/danielhkuo/raffle-app/raffle"
)

type EntryHandler struct {
	svc *raffle.Service
}

func NewEntryHandler(svc *raffle.Service) *EntryHandler {
	return &EntryHandler{svc: svc}
}

// ListEntries handles GET /raffles/{id}/entries
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := pathID(w, r, "id", "raffle id")
	if !ok {
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// CreateEntry handles POST /raffles/{id}/entries
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := pathID(w, r, "id", "raffle id")
	if !ok {
		return
	}

	var req models.EntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), raffleID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, entry)
}

// GetEntry handles GET /raffles/{id}/entries/{entryId}
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	raffleID, entryID, ok := entryPath(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), raffleID, entryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// UpdateEntry handles PATCH and PUT /raffles/{id}/entries/{entryId}
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	raffleID, entryID, ok := entryPath(w, r)
	if !ok {
		return
	}

	var req models.EntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), raffleID, entryID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// DeleteEntry handles DELETE /raffles/{id}/entries/{entryId}
// The response says whether the entry was the winner.
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	raffleID, entryID, ok := entryPath(w, r)
	if !ok {
		return
	}

	result, err := h.svc.DeleteEntry(r.Context(), raffleID, entryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteEntryResponse{
		Message:       "Entry deleted",
		ID:            result.EntryID,
		WinnerCleared: result.WinnerCleared,
	})
}

func entryPath(w http.ResponseWriter, r *http.Request) (raffleID, entryID int64, ok bool) {
	if raffleID, ok = pathID(w, r, "id", "raffle id"); !ok {
		return 0, 0, false
	}
	if entryID, ok = pathID(w, r, "entryId", "entry id"); !ok {
		return 0, 0, false
	}
	return raffleID, entryID, true
}

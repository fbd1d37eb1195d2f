// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/raffle-app/middleware"
	"github.com/danielhkuo/raffle-app/models"
	"github.com/danielhkuo/raffle-app/raffle"
)

type RaffleHandler struct {
	svc *raffle.Service
}

func NewRaffleHandler(svc *raffle.Service) *RaffleHandler {
	return &RaffleHandler{svc: svc}
}

// ListRaffles handles GET /raffles
func (h *RaffleHandler) ListRaffles(w http.ResponseWriter, r *http.Request) {
	raffles, err := h.svc.ListRaffles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, raffles)
}

// CreateRaffle handles POST /raffles
func (h *RaffleHandler) CreateRaffle(w http.ResponseWriter, r *http.Request) {
	var req models.RaffleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rec, err := h.svc.CreateRaffle(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, rec)
}

// GetRaffle handles GET /raffles/{id}
func (h *RaffleHandler) GetRaffle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "raffle id")
	if !ok {
		return
	}

	rec, err := h.svc.GetRaffle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// UpdateRaffle handles PATCH and PUT /raffles/{id}
// Only the members present in the body are changed.
func (h *RaffleHandler) UpdateRaffle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "raffle id")
	if !ok {
		return
	}

	var req models.RaffleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rec, err := h.svc.UpdateRaffle(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// DeleteRaffle handles DELETE /raffles/{id}
// Entries and the winner go with it.
func (h *RaffleHandler) DeleteRaffle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "raffle id")
	if !ok {
		return
	}

	result, err := h.svc.DeleteRaffle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteRaffleResponse{
		Message: "Raffle deleted",
		ID:      result.RaffleID,
	})
}

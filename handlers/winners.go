// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/raffle-app/middleware"
	"github.com/danielhkuo/raffle-app/models"
	"github.com/danielhkuo/raffle-app/raffle"
)

type WinnerHandler struct {
	svc *raffle.Service
}

func NewWinnerHandler(svc *raffle.Service) *WinnerHandler {
	return &WinnerHandler{svc: svc}
}

// SelectWinner handles POST /raffles/{id}/winner
// Draws once; a second call answers 409 with the recorded winner.
func (h *WinnerHandler) SelectWinner(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := pathID(w, r, "id", "raffle id")
	if !ok {
		return
	}

	winner, err := h.svc.SelectWinner(r.Context(), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.WinnerResponse{
		Winner:     winner.Entry,
		SelectedAt: winner.SelectedAt,
	})
}

// GetWinner handles GET /raffles/{id}/winner
func (h *WinnerHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := pathID(w, r, "id", "raffle id")
	if !ok {
		return
	}

	winner, err := h.svc.GetWinner(r.Context(), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		Winner:     winner.Entry,
		SelectedAt: winner.SelectedAt,
	})
}

// ClearWinner handles DELETE /raffles/{id}/winner
func (h *WinnerHandler) ClearWinner(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := pathID(w, r, "id", "raffle id")
	if !ok {
		return
	}

	entryID, err := h.svc.ClearWinner(r.Context(), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ClearWinnerResponse{
		Message: "Winner cleared",
		EntryID: entryID,
	})
}

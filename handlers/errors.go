// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/raffle-app/middleware"
	"github.com/danielhkuo/raffle-app/models"
	"github.com/danielhkuo/raffle-app/raffle"
)

// writeError maps a raffle.Service error to its HTTP response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch raffle.KindOf(err) {
	case raffle.KindValidation:
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case raffle.KindNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case raffle.KindConflict:
		var conflict *raffle.ConflictError
		errors.As(err, &conflict)
		middleware.JSONResponse(w, http.StatusConflict, models.WinnerConflictResponse{
			Error:      http.StatusText(http.StatusConflict),
			Message:    "Winner already selected",
			Winner:     conflict.Winner.Entry,
			SelectedAt: conflict.Winner.SelectedAt,
		})
	default:
		slog.Error("request failed",
			"request_id", middleware.RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// pathID reads a positive integer path value. On failure it writes a 400
// and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, label+" must be a positive integer")
		return 0, false
	}
	return id, true
}

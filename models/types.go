// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// Persisted records

type Raffle struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Entry struct {
	ID        int64     `json:"id"`
	RaffleID  int64     `json:"raffle_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// WinnerAssignment links a raffle to its drawn entry. At most one per raffle.
type WinnerAssignment struct {
	RaffleID   int64     `json:"raffle_id"`
	EntryID    int64     `json:"entry_id"`
	SelectedAt time.Time `json:"selected_at"`
}

// Winner is an assignment resolved to its entry.
type Winner struct {
	Entry      Entry
	SelectedAt time.Time
}

// OptionalString captures a JSON member that may be absent, null, a string,
// or some other JSON type. Absent members never reach UnmarshalJSON, so the
// zero value means "not provided".
type OptionalString struct {
	Present bool
	Null    bool
	Invalid bool // present, not null, not a string
	Value   string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	*o = OptionalString{Present: true}
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		o.Invalid = true
		o.Value = ""
	}
	return nil
}

// String returns an OptionalString holding s, as if decoded from JSON.
func String(s string) OptionalString {
	return OptionalString{Present: true, Value: s}
}

// Request types

type RaffleRequest struct {
	Name        OptionalString `json:"name"`
	Description OptionalString `json:"description"`
}

type EntryRequest struct {
	Name  OptionalString `json:"name"`
	Email OptionalString `json:"email"`
}

// Response types

type WinnerResponse struct {
	Winner     Entry     `json:"winner"`
	SelectedAt time.Time `json:"selected_at"`
}

type WinnerConflictResponse struct {
	Error      string    `json:"error"`
	Message    string    `json:"message"`
	Winner     Entry     `json:"winner"`
	SelectedAt time.Time `json:"selected_at"`
}

type DeleteRaffleResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type DeleteEntryResponse struct {
	Message       string `json:"message"`
	ID            int64  `json:"id"`
	WinnerCleared bool   `json:"winner_cleared"`
}

type ClearWinnerResponse struct {
	Message string `json:"message"`
	EntryID int64  `json:"entry_id"`
}

type TablesResponse struct {
	Tables []string `json:"tables"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

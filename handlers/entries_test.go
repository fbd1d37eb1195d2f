// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/raffle-app/models"
	"github.com/danielhkuo/raffle-app/testutil"
)

func TestCreateEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewEntryHandler(newTestService(db))
	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")

	tests := []struct {
		name            string
		raffleID        string
		body            interface{}
		expectedStatus  int
		expectedMessage string
		wantEmail       *string
	}{
		{
			name:           "name only",
			raffleID:       id(raffleID),
			body:           map[string]any{"name": "Alice"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "with email",
			raffleID:       id(raffleID),
			body:           map[string]any{"name": " Alice ", "email": " alice@example.com "},
			expectedStatus: http.StatusCreated,
			wantEmail:      strPtr("alice@example.com"),
		},
		{
			name:           "null email",
			raffleID:       id(raffleID),
			body:           `{"name":"Alice","email":null}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "missing name",
			raffleID:        id(raffleID),
			body:            map[string]any{"email": "a@example.com"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Entry name is required",
		},
		{
			name:            "blank email",
			raffleID:        id(raffleID),
			body:            map[string]any{"name": "Alice", "email": "  "},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Entry email must be a non-empty string",
		},
		{
			name:            "non-string email",
			raffleID:        id(raffleID),
			body:            map[string]any{"name": "Alice", "email": true},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Entry email must be a non-empty string",
		},
		{
			name:            "missing raffle",
			raffleID:        "999",
			body:            map[string]any{"name": "Alice"},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Raffle not found",
		},
		{
			name:            "bad raffle id",
			raffleID:        "0",
			body:            map[string]any{"name": "Alice"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "raffle id must be a positive integer",
		},
		{
			name:            "invalid JSON",
			raffleID:        id(raffleID),
			body:            `not json`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(handler.CreateEntry, "POST", "/raffles/"+tt.raffleID+"/entries", tt.body,
				map[string]string{"id": tt.raffleID})

			if tt.expectedStatus != http.StatusCreated {
				assertError(t, w, tt.expectedStatus, tt.expectedMessage)
				return
			}

			testutil.AssertStatus(t, w, http.StatusCreated)
			var entry models.Entry
			testutil.AssertJSON(t, w, &entry)

			if entry.ID < 1 || entry.RaffleID != raffleID {
				t.Errorf("Unexpected ids: %+v", entry)
			}
			if entry.Name != "Alice" {
				t.Errorf("Expected name 'Alice', got %q", entry.Name)
			}
			switch {
			case tt.wantEmail == nil && entry.Email != nil:
				t.Errorf("Expected no email, got %q", *entry.Email)
			case tt.wantEmail != nil && (entry.Email == nil || *entry.Email != *tt.wantEmail):
				t.Errorf("Expected email %q, got %v", *tt.wantEmail, entry.Email)
			}
		})
	}
}

func TestListEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewEntryHandler(newTestService(db))

	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")
	alice := testutil.AddTestEntry(t, db, raffleID, "Alice")
	bob := testutil.AddTestEntry(t, db, raffleID, "Bob")

	other := testutil.CreateTestRaffle(t, db, "Other")
	testutil.AddTestEntry(t, db, other, "Carol")

	w := serve(handler.ListEntries, "GET", "/raffles/"+id(raffleID)+"/entries", nil,
		map[string]string{"id": id(raffleID)})
	testutil.AssertStatus(t, w, http.StatusOK)

	var entries []models.Entry
	testutil.AssertJSON(t, w, &entries)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != bob || entries[1].ID != alice {
		t.Errorf("Expected order [%d %d], got [%d %d]", bob, alice, entries[0].ID, entries[1].ID)
	}

	t.Run("missing raffle", func(t *testing.T) {
		w := serve(handler.ListEntries, "GET", "/raffles/999/entries", nil, map[string]string{"id": "999"})
		assertError(t, w, http.StatusNotFound, "Raffle not found")
	})

	t.Run("raffle without entries", func(t *testing.T) {
		empty := testutil.CreateTestRaffle(t, db, "Empty")
		w := serve(handler.ListEntries, "GET", "/raffles/"+id(empty)+"/entries", nil,
			map[string]string{"id": id(empty)})
		testutil.AssertStatus(t, w, http.StatusOK)
		if body := w.Body.String(); body != "[]\n" {
			t.Errorf("Expected empty JSON array, got %q", body)
		}
	})
}

func TestGetEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewEntryHandler(newTestService(db))

	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")
	alice := testutil.AddTestEntry(t, db, raffleID, "Alice")
	other := testutil.CreateTestRaffle(t, db, "Other")
	carol := testutil.AddTestEntry(t, db, other, "Carol")

	tests := []struct {
		name            string
		raffleID        string
		entryID         string
		expectedStatus  int
		expectedMessage string
	}{
		{"existing", id(raffleID), id(alice), http.StatusOK, ""},
		{"entry of another raffle", id(raffleID), id(carol), http.StatusNotFound, "Entry not found"},
		{"missing raffle", "999", id(alice), http.StatusNotFound, "Raffle not found"},
		{"missing entry", id(raffleID), "999", http.StatusNotFound, "Entry not found"},
		{"bad entry id", id(raffleID), "x", http.StatusBadRequest, "entry id must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(handler.GetEntry, "GET", "/raffles/"+tt.raffleID+"/entries/"+tt.entryID, nil,
				map[string]string{"id": tt.raffleID, "entryId": tt.entryID})

			if tt.expectedStatus != http.StatusOK {
				assertError(t, w, tt.expectedStatus, tt.expectedMessage)
				return
			}

			testutil.AssertStatus(t, w, http.StatusOK)
			var entry models.Entry
			testutil.AssertJSON(t, w, &entry)
			if entry.ID != alice || entry.Name != "Alice" {
				t.Errorf("Unexpected entry: %+v", entry)
			}
		})
	}
}

func TestUpdateEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewEntryHandler(newTestService(db))

	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")
	alice := testutil.AddTestEntry(t, db, raffleID, "Alice")
	path := map[string]string{"id": id(raffleID), "entryId": id(alice)}
	url := "/raffles/" + id(raffleID) + "/entries/" + id(alice)

	t.Run("set email", func(t *testing.T) {
		w := serve(handler.UpdateEntry, "PATCH", url, map[string]any{"email": "alice@example.com"}, path)
		testutil.AssertStatus(t, w, http.StatusOK)

		var entry models.Entry
		testutil.AssertJSON(t, w, &entry)
		if entry.Email == nil || *entry.Email != "alice@example.com" {
			t.Errorf("Expected email set, got %v", entry.Email)
		}
		if entry.Name != "Alice" {
			t.Errorf("Expected name kept, got %q", entry.Name)
		}
	})

	t.Run("rename", func(t *testing.T) {
		w := serve(handler.UpdateEntry, "PUT", url, map[string]any{"name": "Alicia"}, path)
		testutil.AssertStatus(t, w, http.StatusOK)

		var entry models.Entry
		testutil.AssertJSON(t, w, &entry)
		if entry.Name != "Alicia" {
			t.Errorf("Expected name 'Alicia', got %q", entry.Name)
		}
		if entry.Email == nil {
			t.Error("Expected email kept")
		}
	})

	t.Run("null email clears it", func(t *testing.T) {
		w := serve(handler.UpdateEntry, "PATCH", url, `{"email":null}`, path)
		testutil.AssertStatus(t, w, http.StatusOK)

		var entry models.Entry
		testutil.AssertJSON(t, w, &entry)
		if entry.Email != nil {
			t.Errorf("Expected email cleared, got %q", *entry.Email)
		}
	})

	errorCases := []struct {
		name            string
		body            interface{}
		expectedStatus  int
		expectedMessage string
	}{
		{"empty body", map[string]any{}, http.StatusBadRequest, "At least one of name or email is required"},
		{"blank name", map[string]any{"name": ""}, http.StatusBadRequest, "Entry name cannot be empty"},
		{"blank email", map[string]any{"email": " "}, http.StatusBadRequest, "Entry email must be a non-empty string"},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(handler.UpdateEntry, "PATCH", url, tt.body, path)
			assertError(t, w, tt.expectedStatus, tt.expectedMessage)
		})
	}

	t.Run("missing entry", func(t *testing.T) {
		w := serve(handler.UpdateEntry, "PATCH", "/raffles/"+id(raffleID)+"/entries/999",
			map[string]any{"name": "x"}, map[string]string{"id": id(raffleID), "entryId": "999"})
		assertError(t, w, http.StatusNotFound, "Entry not found")
	})
}

func TestDeleteEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewEntryHandler(newTestService(db))

	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")
	alice := testutil.AddTestEntry(t, db, raffleID, "Alice")
	bob := testutil.AddTestEntry(t, db, raffleID, "Bob")
	testutil.SetTestWinner(t, db, raffleID, alice)

	del := func(entryID int64) *models.DeleteEntryResponse {
		t.Helper()
		w := serve(handler.DeleteEntry, "DELETE", "/raffles/"+id(raffleID)+"/entries/"+id(entryID), nil,
			map[string]string{"id": id(raffleID), "entryId": id(entryID)})
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.DeleteEntryResponse
		testutil.AssertJSON(t, w, &resp)
		return &resp
	}

	t.Run("non-winner keeps winner", func(t *testing.T) {
		resp := del(bob)
		if resp.WinnerCleared {
			t.Error("Expected winner_cleared false")
		}
		if resp.ID != bob || resp.Message != "Entry deleted" {
			t.Errorf("Unexpected response: %+v", resp)
		}
		if n := testutil.CountRows(t, db, "winners"); n != 1 {
			t.Errorf("Expected winner kept, got %d rows", n)
		}
	})

	t.Run("winner clears winner", func(t *testing.T) {
		resp := del(alice)
		if !resp.WinnerCleared {
			t.Error("Expected winner_cleared true")
		}
		if n := testutil.CountRows(t, db, "winners"); n != 0 {
			t.Errorf("Expected winner removed, got %d rows", n)
		}
		if n := testutil.CountRows(t, db, "entries"); n != 0 {
			t.Errorf("Expected no entries left, got %d", n)
		}
	})

	t.Run("already deleted", func(t *testing.T) {
		w := serve(handler.DeleteEntry, "DELETE", "/raffles/"+id(raffleID)+"/entries/"+id(alice), nil,
			map[string]string{"id": id(raffleID), "entryId": id(alice)})
		assertError(t, w, http.StatusNotFound, "Entry not found")
	})
}

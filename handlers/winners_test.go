// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/raffle-app/models"
	"github.com/danielhkuo/raffle-app/raffle"
	"github.com/danielhkuo/raffle-app/testutil"
)

func TestSelectWinner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewWinnerHandler(newTestService(db, raffle.WithPicker(firstPicker)))

	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")
	alice := testutil.AddTestEntry(t, db, raffleID, "Alice")
	testutil.AddTestEntry(t, db, raffleID, "Bob")
	path := map[string]string{"id": id(raffleID)}
	url := "/raffles/" + id(raffleID) + "/winner"

	w := serve(handler.SelectWinner, "POST", url, nil, path)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var first models.WinnerResponse
	testutil.AssertJSON(t, w, &first)
	if first.Winner.ID != alice || first.Winner.Name != "Alice" {
		t.Errorf("Expected Alice (%d) to win, got %+v", alice, first.Winner)
	}
	if first.SelectedAt.IsZero() {
		t.Error("Expected selected_at to be set")
	}

	t.Run("second draw conflicts with same winner", func(t *testing.T) {
		w := serve(handler.SelectWinner, "POST", url, nil, path)
		testutil.AssertStatus(t, w, http.StatusConflict)

		var conflict models.WinnerConflictResponse
		testutil.AssertJSON(t, w, &conflict)
		if conflict.Message != "Winner already selected" {
			t.Errorf("Expected conflict message, got %q", conflict.Message)
		}
		if conflict.Winner.ID != first.Winner.ID {
			t.Errorf("Expected winner %d, got %d", first.Winner.ID, conflict.Winner.ID)
		}
		if !conflict.SelectedAt.Equal(first.SelectedAt) {
			t.Errorf("Expected selected_at %v, got %v", first.SelectedAt, conflict.SelectedAt)
		}
		if n := testutil.CountRows(t, db, "winners"); n != 1 {
			t.Errorf("Expected exactly one winner row, got %d", n)
		}
	})

	t.Run("no entries", func(t *testing.T) {
		empty := testutil.CreateTestRaffle(t, db, "Empty")
		w := serve(handler.SelectWinner, "POST", "/raffles/"+id(empty)+"/winner", nil,
			map[string]string{"id": id(empty)})
		assertError(t, w, http.StatusBadRequest, "Raffle has no entries")
	})

	t.Run("missing raffle", func(t *testing.T) {
		w := serve(handler.SelectWinner, "POST", "/raffles/999/winner", nil, map[string]string{"id": "999"})
		assertError(t, w, http.StatusNotFound, "Raffle not found")
	})
}

func TestSelectWinner_OnlyCurrentEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewWinnerHandler(newTestService(db))

	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")
	entries := map[int64]bool{}
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		entries[testutil.AddTestEntry(t, db, raffleID, name)] = true
	}
	other := testutil.CreateTestRaffle(t, db, "Other")
	testutil.AddTestEntry(t, db, other, "Dave")

	w := serve(handler.SelectWinner, "POST", "/raffles/"+id(raffleID)+"/winner", nil,
		map[string]string{"id": id(raffleID)})
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.WinnerResponse
	testutil.AssertJSON(t, w, &resp)
	if !entries[resp.Winner.ID] {
		t.Errorf("Winner %d is not an entry of raffle %d", resp.Winner.ID, raffleID)
	}
	if resp.Winner.RaffleID != raffleID {
		t.Errorf("Expected winner of raffle %d, got %d", raffleID, resp.Winner.RaffleID)
	}
}

func TestGetWinner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewWinnerHandler(newTestService(db))

	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")
	alice := testutil.AddTestEntry(t, db, raffleID, "Alice")
	path := map[string]string{"id": id(raffleID)}
	url := "/raffles/" + id(raffleID) + "/winner"

	t.Run("no winner yet", func(t *testing.T) {
		w := serve(handler.GetWinner, "GET", url, nil, path)
		assertError(t, w, http.StatusNotFound, "Winner not found")
	})

	t.Run("winner set", func(t *testing.T) {
		testutil.SetTestWinner(t, db, raffleID, alice)

		w := serve(handler.GetWinner, "GET", url, nil, path)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.WinnerResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Winner.ID != alice {
			t.Errorf("Expected winner %d, got %d", alice, resp.Winner.ID)
		}
	})

	t.Run("missing raffle", func(t *testing.T) {
		w := serve(handler.GetWinner, "GET", "/raffles/999/winner", nil, map[string]string{"id": "999"})
		assertError(t, w, http.StatusNotFound, "Raffle not found")
	})
}

func TestClearWinner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewWinnerHandler(newTestService(db, raffle.WithPicker(firstPicker)))

	raffleID := testutil.CreateTestRaffle(t, db, "Spring Draw")
	alice := testutil.AddTestEntry(t, db, raffleID, "Alice")
	testutil.SetTestWinner(t, db, raffleID, alice)
	path := map[string]string{"id": id(raffleID)}
	url := "/raffles/" + id(raffleID) + "/winner"

	w := serve(handler.ClearWinner, "DELETE", url, nil, path)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ClearWinnerResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Winner cleared" || resp.EntryID != alice {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if n := testutil.CountRows(t, db, "entries"); n != 1 {
		t.Errorf("Expected the entry to survive, got %d entries", n)
	}

	t.Run("nothing to clear", func(t *testing.T) {
		w := serve(handler.ClearWinner, "DELETE", url, nil, path)
		assertError(t, w, http.StatusNotFound, "Winner not found")
	})

	t.Run("can draw again", func(t *testing.T) {
		w := serve(handler.SelectWinner, "POST", url, nil, path)
		testutil.AssertStatus(t, w, http.StatusCreated)
	})
}

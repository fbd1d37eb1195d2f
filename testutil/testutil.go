// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/raffle-app/cliparse"
	"github.com/danielhkuo/raffle-app/db"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  ":memory:",
		DatabaseType: db.SQLite,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// CreateTestRaffle inserts a raffle and returns its ID
func CreateTestRaffle(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO raffles (name, description, created_at)
		VALUES ($1, NULL, $2)
		RETURNING id
	`, name, now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test raffle: %v", err)
	}

	return id
}

// AddTestEntry inserts an entry into a raffle and returns its ID
func AddTestEntry(t *testing.T, conn *sql.DB, raffleID int64, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO entries (raffle_id, name, email, created_at)
		VALUES ($1, $2, NULL, $3)
		RETURNING id
	`, raffleID, name, now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	return id
}

// SetTestWinner records entryID as the raffle's winner
func SetTestWinner(t *testing.T, conn *sql.DB, raffleID, entryID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO winners (raffle_id, entry_id, selected_at)
		VALUES ($1, $2, $3)
	`, raffleID, entryID, now())
	if err != nil {
		t.Fatalf("Failed to set test winner: %v", err)
	}
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// MakeRequest creates an HTTP test request. A string or []byte body is sent
// as is; anything else is JSON encoded.
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	case []byte:
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

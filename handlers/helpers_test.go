// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/raffle-app/db"
	"github.com/danielhkuo/raffle-app/draw"
	"github.com/danielhkuo/raffle-app/raffle"
	"github.com/danielhkuo/raffle-app/store"
	"github.com/danielhkuo/raffle-app/testutil"
)

// firstPicker always draws the first candidate, which is the lowest entry id.
var firstPicker = draw.PickerFunc(func(n int) (int, error) { return 0, nil })

func newTestService(conn *sql.DB, opts ...raffle.Option) *raffle.Service {
	return raffle.NewService(store.New(conn, db.SQLite), opts...)
}

// serve calls h with a request carrying the given path values.
func serve(h http.HandlerFunc, method, path string, body interface{}, pathValues map[string]string) *httptest.ResponseRecorder {
	req := testutil.MakeRequest(method, path, body, nil)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func id(n int64) string {
	return strconv.FormatInt(n, 10)
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	testutil.AssertStatus(t, w, status)

	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != message {
		t.Errorf("Expected message %q, got %q", message, resp.Message)
	}
	if resp.Error != http.StatusText(status) {
		t.Errorf("Expected error %q, got %q", http.StatusText(status), resp.Error)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealth(t *testing.T) {
	prevStore := dataStore
	dataStore = nil
	t.Cleanup(func() { dataStore = prevStore })

	fixedNow := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	prevNowFunc := nowFunc
	nowFunc = func() time.Time { return fixedNow }
	t.Cleanup(func() { nowFunc = prevNowFunc })

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("expected status ok, got %q", resp.Status)
	}
	if resp.Database != "unavailable" {
		t.Fatalf("expected database unavailable without a store, got %q", resp.Database)
	}
	if !resp.Time.Equal(fixedNow) {
		t.Fatalf("expected response time %s, got %s", fixedNow, resp.Time)
	}
}

func TestHealthReportsDatabase(t *testing.T) {
	withTestStore(t)

	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Database != "ok" {
		t.Fatalf("expected database ok, got %q", resp.Database)
	}
}

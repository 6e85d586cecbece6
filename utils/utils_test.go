package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithJSON(rec, http.StatusCreated, M{"ok": true})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}

	var body map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !body["ok"] {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, http.StatusNotFound, "nope")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != "nope" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"e1", "e1", "e2"})
	if !reflect.DeepEqual(got, []string{"e1", "e2"}) {
		t.Fatalf("expected [e1 e2], got %v", got)
	}

	if got := Dedupe(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	if got := GenerateRandomString(12); len(got) != 12 {
		t.Fatalf("expected length 12, got %d", len(got))
	}
}

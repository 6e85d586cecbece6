package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitBlocksBurst(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/api/token", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	first := httptest.NewRecorder()
	handler(first, req, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler(second, req, nil)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", second.Code)
	}
}

func TestLimitIsPerIP(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	a := httptest.NewRequest("POST", "/api/token", nil)
	a.RemoteAddr = "10.0.0.1:1234"
	b := httptest.NewRequest("POST", "/api/token", nil)
	b.RemoteAddr = "10.0.0.2:1234"

	rec := httptest.NewRecorder()
	handler(rec, a, nil)
	rec = httptest.NewRecorder()
	handler(rec, b, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("different IP should not be limited, got %d", rec.Code)
	}
}

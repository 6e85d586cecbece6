package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"couchfest/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, secret []byte, userID string, ttl time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestAuthenticateValidToken(t *testing.T) {
	am := &Auth{Secret: []byte("test-secret")}

	var gotUserID string
	handler := am.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, am.Secret, "42", time.Hour))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "42" {
		t.Fatalf("expected user ID 42 in context, got %q", gotUserID)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	am := &Auth{Secret: []byte("test-secret")}
	handler := am.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not be reached")
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing token", ""},
		{"bad prefix", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other-secret"), "42", time.Hour)},
		{"expired token", "Bearer " + signToken(t, []byte("test-secret"), "42", -time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/users/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req, nil)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestValidateJWT(t *testing.T) {
	am := &Auth{Secret: []byte("test-secret")}

	header := "Bearer " + signToken(t, am.Secret, "7", time.Hour)
	claims, err := am.ValidateJWT(header)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "7" {
		t.Fatalf("expected user ID 7, got %q", claims.UserID)
	}

	if _, err := am.ValidateJWT("no-bearer-prefix"); err == nil {
		t.Fatal("expected error for malformed header")
	}
}

package auth

import (
	"testing"

	"couchfest/middleware"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	h := &Handler{Secret: []byte("test-secret")}

	token, err := h.issueToken("42", "alice")
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	claims := &middleware.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		return h.Secret, nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	if claims.UserID != "42" {
		t.Fatalf("expected UserID 42, got %q", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Fatalf("expected Username alice, got %q", claims.Username)
	}
}

func TestIssueTokenWrongSecret(t *testing.T) {
	h := &Handler{Secret: []byte("test-secret")}

	token, err := h.issueToken("42", "")
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	claims := &middleware.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		return []byte("another-secret"), nil
	})
	if err == nil && parsed.Valid {
		t.Fatal("token verified against the wrong secret")
	}
}

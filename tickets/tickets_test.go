package tickets

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
)

func TestQRPayloadSignature(t *testing.T) {
	h := &Handler{HMACSecret: []byte("door-secret")}

	payload := h.qrPayload("A1", "55", 1700000000)
	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		t.Fatalf("expected 4 parts, got %d: %q", len(parts), payload)
	}
	if parts[0] != "A1" || parts[1] != "55" || parts[2] != "1700000000" {
		t.Fatalf("unexpected payload data: %q", payload)
	}

	mac := hmac.New(sha256.New, h.HMACSecret)
	mac.Write([]byte(strings.Join(parts[:3], "|")))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if parts[3] != want {
		t.Fatalf("signature mismatch: got %q want %q", parts[3], want)
	}
}

func TestQRPayloadSecretMatters(t *testing.T) {
	a := &Handler{HMACSecret: []byte("one")}
	b := &Handler{HMACSecret: []byte("two")}

	if a.qrPayload("A1", "55", 1) == b.qrPayload("A1", "55", 1) {
		t.Fatal("different secrets produced identical payloads")
	}
}

package config

import "testing"

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MODE", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("TICKET_SECRET", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBName != testDBName {
		t.Fatalf("expected test database, got %q", cfg.DBName)
	}
	if cfg.Port != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Port)
	}
	if string(cfg.TicketSecret) != "s3cret" {
		t.Fatal("ticket secret should fall back to the JWT secret")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadProductionMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MODE", "1")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://couchfest.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBName != prodDBName {
		t.Fatalf("expected production database, got %q", cfg.DBName)
	}
	if cfg.Port != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.ServerAddr != ":8080" {
		t.Errorf("expected default addr ':8080', got %q", cfg.ServerAddr)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected default TTL 30m, got %v", cfg.TokenTTL)
	}
	if cfg.CORSAllowedOrigin != "http://localhost:5173" {
		t.Errorf("unexpected default CORS origin %q", cfg.CORSAllowedOrigin)
	}
	if !cfg.RateLimitEnabled {
		t.Error("expected rate limiting enabled by default")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when JWT_SECRET is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("TOKEN_TTL_MINUTES", "5")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://app.example.com")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.ServerAddr != ":9090" {
		t.Errorf("expected addr ':9090', got %q", cfg.ServerAddr)
	}
	if cfg.TokenTTL != 5*time.Minute {
		t.Errorf("expected TTL 5m, got %v", cfg.TokenTTL)
	}
	if cfg.CORSAllowedOrigin != "https://app.example.com" {
		t.Errorf("unexpected CORS origin %q", cfg.CORSAllowedOrigin)
	}
	if cfg.RateLimitEnabled {
		t.Error("expected rate limiting disabled")
	}
}

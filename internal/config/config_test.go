package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("DB_DRIVER", "")
		t.Setenv("TOKEN_TTL", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "")

		cfg := Load()
		if cfg.Port != "8080" || cfg.DBDriver != "postgres" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.TokenTTL != 24*time.Hour {
			t.Fatalf("expected 24h ttl, got %s", cfg.TokenTTL)
		}
		if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
			t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("TOKEN_TTL", "90m")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
		t.Setenv("SMTP_PORT", "587")

		cfg := Load()
		if cfg.DBDriver != "sqlite" {
			t.Fatalf("expected sqlite, got %s", cfg.DBDriver)
		}
		if cfg.TokenTTL != 90*time.Minute {
			t.Fatalf("expected 90m, got %s", cfg.TokenTTL)
		}
		if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
			t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
		}
		if cfg.SMTPPort != 587 {
			t.Fatalf("expected 587, got %d", cfg.SMTPPort)
		}
	})

	t.Run("invalid ttl falls back", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		if cfg := Load(); cfg.TokenTTL != 24*time.Hour {
			t.Fatalf("expected fallback ttl, got %s", cfg.TokenTTL)
		}
	})
}

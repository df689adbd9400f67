package config_test

import (
	"testing"
	"time"

	"github.com/iho/customscore/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.TraceMaxExpansions != 10000 {
		t.Fatalf("expected default trace expansion limit 10000, got %d", cfg.TraceMaxExpansions)
	}

	if cfg.MRNValidity != 3*365*24*time.Hour {
		t.Fatalf("expected three-year MRN validity, got %s", cfg.MRNValidity)
	}

	if cfg.ReferenceCacheTTL != 5*time.Minute {
		t.Fatalf("expected 5m reference cache TTL, got %s", cfg.ReferenceCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("TRACE_MAX_EXPANSIONS", "250")
	t.Setenv("MIGRATE_ON_START", "true")
	t.Setenv("OUTBOX_STREAM", "events.test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.TraceMaxExpansions != 250 || !cfg.MigrateOnStart || cfg.OutboxStream != "events.test" {
		t.Fatalf("expected customs overrides, got %+v", cfg)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadInvalidExpansionLimit(t *testing.T) {
	t.Setenv("TRACE_MAX_EXPANSIONS", "many")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for non-numeric expansion limit")
	}
}

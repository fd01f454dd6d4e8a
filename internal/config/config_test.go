package config

import (
	"testing"
	"time"
)

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("RATADO_DB_PATH", "/tmp/r.db")
	t.Setenv("RATADO_TICK_MS", "250")
	t.Setenv("RATADO_STATUS_SECONDS", "7")
	t.Setenv("RATADO_CONFIRM_DELETE", "off")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "/tmp/r.db" {
		t.Fatalf("expected db path override, got %q", cfg.DBPath)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("expected 250ms tick, got %v", cfg.TickInterval)
	}
	if cfg.StatusSeconds != 7 {
		t.Fatalf("expected 7s status, got %d", cfg.StatusSeconds)
	}
	if cfg.ConfirmDelete {
		t.Fatal("expected confirm delete off")
	}
}

func TestRuntimeConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("RATADO_TICK_MS", "soon")
	t.Setenv("RATADO_CONFIRM_DELETE", "maybe")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg.TickInterval != base.TickInterval {
		t.Fatalf("expected default tick kept, got %v", cfg.TickInterval)
	}
	if cfg.ConfirmDelete != base.ConfirmDelete {
		t.Fatal("expected default confirm kept")
	}
}

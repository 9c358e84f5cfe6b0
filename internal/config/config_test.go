package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "9091" {
		t.Fatalf("port default: %q", cfg.Port)
	}
	if cfg.WhatsAppNumber == "" || cfg.CatalogPath == "" {
		t.Fatalf("defaults missing: %+v", cfg)
	}
	if cfg.OrderAttempts != 5 || cfg.OrderWindow != time.Minute {
		t.Fatalf("limiter defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ORDER_MAX_ATTEMPTS", "3")
	t.Setenv("ORDER_WINDOW_SECONDS", "30")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port override: %q", cfg.Port)
	}
	if cfg.OrderAttempts != 3 || cfg.OrderWindow != 30*time.Second {
		t.Fatalf("limiter override: %+v", cfg)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("ORDER_MAX_ATTEMPTS", "lots")
	cfg := Load()
	if cfg.OrderAttempts != 5 {
		t.Fatalf("bad value not ignored: %d", cfg.OrderAttempts)
	}
}

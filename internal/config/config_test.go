package config

import (
	"path/filepath"
	"testing"
	"time"
)

func withNoEnvFile(t *testing.T) {
	t.Helper()
	prev := EnvFile
	EnvFile = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() { EnvFile = prev })
}

func TestLoadDefaults(t *testing.T) {
	withNoEnvFile(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://iis.bsuir.by" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if !cfg.StatusCheck {
		t.Fatalf("expected status check enabled by default")
	}
	if cfg.PollInterval != 10*time.Minute {
		t.Fatalf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadFromEnvTrimsBaseURL(t *testing.T) {
	withNoEnvFile(t)
	t.Setenv("IIS_BASE_URL", "http://localhost:8080/")
	t.Setenv("POLL_INTERVAL", "30")
	t.Setenv("IIS_STATUS_CHECK", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.StatusCheck {
		t.Fatalf("expected status check disabled")
	}
}

func TestLoadRejectsNonPositivePollInterval(t *testing.T) {
	withNoEnvFile(t)
	t.Setenv("POLL_INTERVAL", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero poll interval")
	}
}

func TestLoadRejectsTTLNotLongerThanPollInterval(t *testing.T) {
	withNoEnvFile(t)
	t.Setenv("POLL_INTERVAL", "600")
	t.Setenv("STORAGE_TTL_SECONDS", "600")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when storage ttl does not exceed poll interval")
	}
}

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tasks-timeline/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
environment:
  name: production
http_server:
  port: 9090
  mode: release
vault:
  root: /data/vault
  default_file: Inbox.md
  timezone: Europe/Berlin
timeline:
  days_before: 3
  forward_overdue: false
google_calendar:
  credentials_path: creds.json
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment.Name != "production" {
		t.Errorf("expected production, got %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 9090 || cfg.HTTPServer.Mode != "release" {
		t.Errorf("unexpected http server config: %+v", cfg.HTTPServer)
	}
	if cfg.Vault.Root != "/data/vault" || cfg.Vault.DefaultFile != "Inbox.md" || cfg.Vault.Timezone != "Europe/Berlin" {
		t.Errorf("unexpected vault config: %+v", cfg.Vault)
	}
	if cfg.Timeline.DaysBefore != 3 || cfg.Timeline.ForwardOverdue {
		t.Errorf("unexpected timeline config: %+v", cfg.Timeline)
	}
	if cfg.GoogleCalendar.CredentialsPath != "creds.json" || cfg.GoogleCalendar.CalendarID != "primary" {
		t.Errorf("unexpected calendar config: %+v", cfg.GoogleCalendar)
	}

	// Defaults fill what the file leaves out.
	if cfg.Timeline.DaysAfter != 14 {
		t.Errorf("expected default days_after 14, got %d", cfg.Timeline.DaysAfter)
	}
	if cfg.QuickEntry.RateLimitPerMin != 600 {
		t.Errorf("expected default rate limit 600, got %d", cfg.QuickEntry.RateLimitPerMin)
	}
	if cfg.Cache.Size != 256 {
		t.Errorf("expected default cache size 256, got %d", cfg.Cache.Size)
	}
}

func TestLoadFileEnvOverride(t *testing.T) {
	path := writeConfig(t, "vault:\n  root: /from/file\n")
	t.Setenv("VAULT_ROOT", "/from/env")
	t.Setenv("HTTP_SERVER_PORT", "7000")

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Vault.Root != "/from/env" {
		t.Errorf("expected env override, got %q", cfg.Vault.Root)
	}
	if cfg.HTTPServer.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.HTTPServer.Port)
	}
}

func TestLoadFileRequiresVaultRoot(t *testing.T) {
	path := writeConfig(t, "environment:\n  name: test\n")

	_, err := config.LoadFile(path)
	if !errors.Is(err, config.ErrVaultRootRequired) {
		t.Errorf("expected ErrVaultRootRequired, got %v", err)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := writeConfig(t, "vault: [unterminated\n")

	if _, err := config.LoadFile(path); err == nil {
		t.Errorf("expected error for invalid yaml")
	}
}

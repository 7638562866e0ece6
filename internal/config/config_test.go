package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("default timeout: %v", cfg.Timeout())
	}
	presets := cfg.MergedPresets()
	if len(presets) != 8 {
		t.Errorf("expected 8 built-in presets, got %d", len(presets))
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
workspace = "/var/lib/sudoq"

[http]
timeout_seconds = 10
user_agent = "sudoq-test"

[presets.nightmare9]
desc = "Classic 9x9 (Nightmare)"
url = "https://example.com/nightmare"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("timeout: %v", cfg.Timeout())
	}
	if cfg.HTTP.UserAgent != "sudoq-test" {
		t.Errorf("user agent: %q", cfg.HTTP.UserAgent)
	}

	presets := cfg.MergedPresets()
	if len(presets) != 9 {
		t.Fatalf("expected 9 presets, got %d", len(presets))
	}
	p := presets["nightmare9"]
	if p.Key != "nightmare9" || p.URL != "https://example.com/nightmare" {
		t.Errorf("unexpected preset %+v", p)
	}

	if got := cfg.ResolveWorkspace(""); got != "/var/lib/sudoq" {
		t.Errorf("workspace: %q", got)
	}
	if got := cfg.ResolveWorkspace("/tmp/override"); got != "/tmp/override" {
		t.Errorf("workspace flag: %q", got)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
workspase = "/typo"
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	path := writeConfig(t, `
[http]
timeout_seconds = -5
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative timeout")
	}
}

func TestLoadRejectsBadPresetURL(t *testing.T) {
	path := writeConfig(t, `
[presets.bad]
desc = "nope"
url = "ftp://example.com"
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "url must be http(s)") {
		t.Errorf("expected url validation error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

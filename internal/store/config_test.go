package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FLOWPILOT_CONFIG_DIR", dir)

	// Missing file loads as empty config, not an error.
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.TUI != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}

	cfg.TUI = &TUIConfig{Theme: "dark", Glyphs: "ascii"}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TUI == nil || got.TUI.Theme != "dark" || got.TUI.Glyphs != "ascii" {
		t.Fatalf("unexpected config: %+v", got.TUI)
	}
}

func TestSaveConfigKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FLOWPILOT_CONFIG_DIR", dir)

	if err := SaveConfig(&GlobalConfig{TUI: &TUIConfig{Theme: "light"}}); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := SaveConfig(&GlobalConfig{TUI: &TUIConfig{Theme: "dark"}}); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "config.json.bak"))
	if err != nil {
		t.Fatalf("read bak: %v", err)
	}
	if !strings.Contains(string(b), `"light"`) {
		t.Fatalf("expected backup to hold previous config, got: %s", b)
	}
}

func TestNewIDShape(t *testing.T) {
	id, err := NewID("task")
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	if !strings.HasPrefix(id, "task-") {
		t.Fatalf("expected task- prefix, got %q", id)
	}
	suffix := strings.TrimPrefix(id, "task-")
	if len(suffix) != 8 || suffix != strings.ToLower(suffix) {
		t.Fatalf("expected 8 lowercase chars, got %q", suffix)
	}
	if other := MustNewID("task"); other == id {
		t.Fatalf("expected distinct ids, got %q twice", id)
	}
}

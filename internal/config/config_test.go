package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Drill.Count != nil || cfg.Drill.Language != nil || cfg.Drill.LocaleDir != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[drill]\ncount = 5\nlanguage = \"de_DE\"\nlocale-dir = \"/usr/share/addrill/locale\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Drill.Count == nil || *cfg.Drill.Count != 5 {
		t.Fatalf("unexpected count: %v", cfg.Drill.Count)
	}
	if cfg.Drill.Language == nil || *cfg.Drill.Language != "de_DE" {
		t.Fatalf("unexpected language: %v", cfg.Drill.Language)
	}
	if cfg.Drill.LocaleDir == nil || *cfg.Drill.LocaleDir != "/usr/share/addrill/locale" {
		t.Fatalf("unexpected locale dir: %v", cfg.Drill.LocaleDir)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[drill]\nexercise-type = \"addition-find-sum\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/xdg", "addrill", "config.toml") {
		t.Fatalf("unexpected path: %s", got)
	}
}

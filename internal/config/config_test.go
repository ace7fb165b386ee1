package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.LogRoot != "breathes" {
		t.Errorf("default log root = %q, want breathes", cfg.LogRoot)
	}
	if cfg.MaxWorkers != 0 {
		t.Errorf("default max workers = %d, want 0", cfg.MaxWorkers)
	}
	if !cfg.History {
		t.Error("history should default to enabled")
	}
	if len(cfg.Disabled) != 0 {
		t.Errorf("no ecosystems should be disabled by default, got %v", cfg.Disabled)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("a missing config file is not an error: %v", err)
	}
	if cfg.LogRoot != "breathes" {
		t.Errorf("defaults should apply, got log root %q", cfg.LogRoot)
	}
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	yaml := `log_root: out
max_workers: 2
history: false
disabled:
  - Rust
  - Python
dictionary: words.dic
`
	if err := os.WriteFile(filepath.Join(dir, ".breathe.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogRoot != "out" {
		t.Errorf("log root = %q, want out", cfg.LogRoot)
	}
	if cfg.MaxWorkers != 2 {
		t.Errorf("max workers = %d, want 2", cfg.MaxWorkers)
	}
	if cfg.History {
		t.Error("history should be disabled")
	}
	if len(cfg.Disabled) != 2 || cfg.Disabled[0] != "Rust" || cfg.Disabled[1] != "Python" {
		t.Errorf("disabled = %v", cfg.Disabled)
	}
	if cfg.Dictionary != "words.dic" {
		t.Errorf("dictionary = %q", cfg.Dictionary)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("BREATHE_LOG_ROOT", "elsewhere")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogRoot != "elsewhere" {
		t.Errorf("env override should win, got %q", cfg.LogRoot)
	}
}

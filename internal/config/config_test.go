package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHasDataDir(t *testing.T) {
	cfg := Default()
	if cfg.DataDir == "" {
		t.Fatal("default data dir must not be empty")
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("default log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadMissingDefaultConfig(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("a missing default config file is not an error: %v", err)
	}
	if cfg.DataDir != Default().DataDir {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadExplicitMissingConfig(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("an explicit missing config file is an error")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "dataDir: /custom/data\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DataDir != "/custom/data" {
		t.Fatalf("dataDir = %q", cfg.DataDir)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
	// Unset keys keep their defaults.
	if cfg.ResourceDir == "" {
		t.Fatal("resourceDir should fall back to the default")
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed config should error")
	}
}

func TestRecentFilesPath(t *testing.T) {
	cfg := Config{DataDir: "/data"}
	want := filepath.Join("/data", "recent-files.json")
	if got := cfg.RecentFilesPath(); got != want {
		t.Fatalf("RecentFilesPath() = %q, want %q", got, want)
	}
}

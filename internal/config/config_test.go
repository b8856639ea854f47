package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"linemark/internal/config"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StorePath == "" {
		t.Error("expected a default store path")
	}
	if cfg.Verbosity != 1 {
		t.Errorf("expected default verbosity 1, got %d", cfg.Verbosity)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"store": "/tmp/marks.db", "verbosity": 2}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorePath != "/tmp/marks.db" {
		t.Errorf("expected store path /tmp/marks.db, got %s", cfg.StorePath)
	}
	if cfg.Verbosity != 2 {
		t.Errorf("expected verbosity 2, got %d", cfg.Verbosity)
	}
}

// TestLoadFillsMissingKeys verifies a partial config keeps defaults for
// the keys it omits.
func TestLoadFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"verbosity": 3}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorePath == "" {
		t.Error("expected default store path for omitted key")
	}
	if cfg.Verbosity != 3 {
		t.Errorf("expected verbosity 3, got %d", cfg.Verbosity)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("expected an error for malformed config")
	}
}

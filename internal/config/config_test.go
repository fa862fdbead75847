package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
	if cfg.Producer != "dogear" {
		t.Errorf("Producer = %q, want dogear", cfg.Producer)
	}
	if cfg.PDF.Validation != "relaxed" {
		t.Errorf("PDF.Validation = %q, want relaxed", cfg.PDF.Validation)
	}
	if cfg.Defaults == nil {
		t.Error("expected non-nil Defaults map")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
producer: "acme corp"
log_level: debug
pdf:
  validation: strict
defaults:
  OPEN: "0"
`
		if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg, err := Load(configFile)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Producer != "acme corp" {
			t.Errorf("Producer = %q, want acme corp", cfg.Producer)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
		}
		if cfg.PDF.Validation != "strict" {
			t.Errorf("PDF.Validation = %q, want strict", cfg.PDF.Validation)
		}
		if cfg.Defaults["OPEN"] != "0" {
			t.Errorf("Defaults[OPEN] = %q, want 0", cfg.Defaults["OPEN"])
		}
		// Unset keys keep their defaults
		if cfg.LogFormat != "text" {
			t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
		}
	})

	t.Run("missing explicit file errors", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("malformed file errors", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configFile, []byte("producer: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		if _, err := Load(configFile); err == nil {
			t.Error("expected error for malformed config file")
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configFile, []byte(`producer: "from file"`), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		t.Setenv("DOGEAR_PRODUCER", "from env")

		cfg, err := Load(configFile)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Producer != "from env" {
			t.Errorf("Producer = %q, want from env", cfg.Producer)
		}
	})
}

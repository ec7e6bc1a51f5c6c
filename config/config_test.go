package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsUsableAsIs(t *testing.T) {
	cfg := Default()
	if cfg.MagicLengthLimit != 16 {
		t.Fatalf("MagicLengthLimit = %d, want 16", cfg.MagicLengthLimit)
	}
	if cfg.Debug {
		t.Fatalf("Debug should default to false")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	contents := "debug = true\nmax_concatenation_length = 1024\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug=true to be loaded")
	}
	if cfg.MaxConcatenationLength != 1024 {
		t.Fatalf("MaxConcatenationLength = %d, want 1024", cfg.MaxConcatenationLength)
	}
	// Fields absent from the file keep their Default() values.
	if cfg.MagicLengthLimit != 16 {
		t.Fatalf("MagicLengthLimit = %d, want 16 (from defaults)", cfg.MagicLengthLimit)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error loading a nonexistent config file")
	}
}

package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Heuristics.LongTextThreshold != 200 {
		t.Errorf("expected LongTextThreshold=200, got %d", cfg.Heuristics.LongTextThreshold)
	}
	if cfg.Heuristics.CheckmarkMaxTokens != 10 {
		t.Errorf("expected CheckmarkMaxTokens=10, got %d", cfg.Heuristics.CheckmarkMaxTokens)
	}
	if cfg.Palette.Primary != "#0077BB" {
		t.Errorf("expected Primary=#0077BB, got %s", cfg.Palette.Primary)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("QUALREPORT_CONFIG", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "qualreport.yaml")

	cfg := DefaultConfig()
	cfg.Heuristics.LongTextThreshold = 150
	cfg.Logging.DebugMode = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Heuristics.LongTextThreshold != 150 {
		t.Errorf("expected LongTextThreshold=150, got %d", loaded.Heuristics.LongTextThreshold)
	}
	if !loaded.Logging.DebugMode {
		t.Error("expected DebugMode=true after reload")
	}
	// Untouched sections keep their defaults.
	if loaded.Heuristics.NumericCodeMax != 20 {
		t.Errorf("expected NumericCodeMax=20, got %d", loaded.Heuristics.NumericCodeMax)
	}
}

func TestConfig_LoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("QUALREPORT_CONFIG", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file should not error, got %v", err)
	}
	if cfg.Heuristics.ShortValueMaxLength != 30 {
		t.Errorf("expected defaults, got ShortValueMaxLength=%d", cfg.Heuristics.ShortValueMaxLength)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Heuristics.CheckmarkMinTokens = 12
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for inverted checkmark bounds")
	}

	cfg = DefaultConfig()
	cfg.Heuristics.UniqueRatioMax = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unique_ratio_max > 1")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	if cfg.Reference.Dir != DefaultReferenceDir {
		t.Errorf("Reference.Dir = %q", cfg.Reference.Dir)
	}
	if cfg.Reference.Bin != DefaultReferenceBin {
		t.Errorf("Reference.Bin = %q", cfg.Reference.Bin)
	}
	if cfg.Candidate.Dir != DefaultCandidateDir {
		t.Errorf("Candidate.Dir = %q", cfg.Candidate.Dir)
	}
	if cfg.Suite.Size != DefaultSize {
		t.Errorf("Suite.Size = %v", cfg.Suite.Size)
	}
	if *cfg.Suite.Tolerance != DefaultTolerance {
		t.Errorf("Suite.Tolerance = %v", *cfg.Suite.Tolerance)
	}
	if cfg.Suite.Timeout != DefaultTimeout {
		t.Errorf("Suite.Timeout = %v", cfg.Suite.Timeout)
	}
	want := DefaultTexts()
	if len(cfg.Suite.Texts) != len(want) {
		t.Fatalf("Suite.Texts = %v", cfg.Suite.Texts)
	}
	for i := range want {
		if cfg.Suite.Texts[i] != want[i] {
			t.Errorf("Suite.Texts[%d] = %q, want %q", i, cfg.Suite.Texts[i], want[i])
		}
	}
}

func TestLoadAndValidate(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
reference:
  dir: engines/swash
candidate:
  dir: engines/moon_dump
suite:
  texts: ["fi", "ffl"]
  size: 18
  tolerance: 0.001
  timeout: 30s
`)

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if cfg.Reference.Dir != "engines/swash" {
		t.Errorf("Reference.Dir = %q", cfg.Reference.Dir)
	}
	// Unset fields still receive defaults.
	if cfg.Reference.Bin != DefaultReferenceBin {
		t.Errorf("Reference.Bin = %q", cfg.Reference.Bin)
	}
	if cfg.Suite.Size != 18 {
		t.Errorf("Suite.Size = %v", cfg.Suite.Size)
	}
	if *cfg.Suite.Tolerance != 0.001 {
		t.Errorf("Suite.Tolerance = %v", *cfg.Suite.Tolerance)
	}
	if time.Duration(cfg.Suite.Timeout) != 30*time.Second {
		t.Errorf("Suite.Timeout = %v", cfg.Suite.Timeout)
	}
	if len(cfg.Suite.Texts) != 2 || cfg.Suite.Texts[0] != "fi" {
		t.Errorf("Suite.Texts = %v", cfg.Suite.Texts)
	}
}

func TestLoadAndValidate_ExplicitZeroTolerance(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
suite:
  tolerance: 0
`)

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error: %v", err)
	}
	if *cfg.Suite.Tolerance != 0 {
		t.Errorf("explicit zero tolerance overwritten: %v", *cfg.Suite.Tolerance)
	}
	if len(warnings) != 1 {
		t.Errorf("expected exact-match warning, got %v", warnings)
	}
}

func TestLoadAndValidate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"negative tolerance", "suite:\n  tolerance: -0.5\n"},
		{"negative size", "suite:\n  size: -1\n"},
		{"empty text entry", "suite:\n  texts: [\"a\", \"\"]\n"},
		{"malformed yaml", "suite: [not a mapping\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, tt.content)
			if _, _, err := LoadAndValidate(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Error("expected error for missing file")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Standard != "2008" {
		t.Errorf("Standard = %q; want 2008", cfg.Standard)
	}
	if cfg.TimeDisplay != "auto" {
		t.Errorf("TimeDisplay = %q; want auto", cfg.TimeDisplay)
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	if err := Validate([]byte(`{"standard":"2008","trace":true}`)); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsUnknownStandard(t *testing.T) {
	if err := Validate([]byte(`{"standard":"1976"}`)); err == nil {
		t.Fatalf("expected validation error for an unknown standard revision")
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vhdl_sim.json")

	want := Default()
	want.Standard = "1993"
	want.Trace = true
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Standard != "1993" || !got.Trace {
		t.Fatalf("LoadFile round-trip mismatch: %+v", got)
	}
}

func TestLoadFileRejectsSchemaInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vhdl_sim.json")
	if err := os.WriteFile(path, []byte(`{"standard": "not-a-real-revision"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected LoadFile to reject a schema-invalid config")
	}
}

func TestLoadFallsBackToDefaultsWhenNothingFound(t *testing.T) {
	dir := t.TempDir()
	cfg := Load(dir)
	if cfg.Standard != "2008" {
		t.Fatalf("Load with no config file present should return defaults, got %+v", cfg)
	}
}

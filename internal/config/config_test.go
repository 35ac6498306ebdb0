package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/polyterm/internal/poly"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Capacity != 4 {
		t.Errorf("expected capacity 4, got %d", cfg.Capacity)
	}
	if cfg.Strict {
		t.Error("strict mode should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero capacity", func(c *Config) { c.Capacity = 0 }},
		{"negative capacity", func(c *Config) { c.Capacity = -3 }},
		{"zero plot height", func(c *Config) { c.Plot.Height = 0 }},
		{"unknown theme", func(c *Config) { c.Theme = "sepia" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polyterm.yaml")
	cfg := DefaultConfig()
	cfg.Capacity = 16
	cfg.Strict = true
	cfg.Theme = "mono"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Capacity != 16 || !loaded.Strict || loaded.Theme != "mono" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("strict: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.Strict {
		t.Error("expected strict from file")
	}
	if cfg.Capacity != DefaultCapacity || cfg.Plot.Width != DefaultPlotWidth {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("capacity: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewPolynomial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 2
	p, err := cfg.NewPolynomial()
	if err != nil {
		t.Fatalf("NewPolynomial failed: %v", err)
	}
	if p.Capacity() != 2 {
		t.Errorf("expected capacity 2, got %d", p.Capacity())
	}
}

func TestGetPreset(t *testing.T) {
	preset, ok := GetPreset("quadratic")
	if !ok {
		t.Fatal("expected preset")
	}
	p := poly.NewDefault()
	p.Parse(preset.Input)
	if got := p.Render(); got != "3x^2 - x + 4" {
		t.Errorf("quadratic renders as %q", got)
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected missing preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestPresets_ParseCleanly(t *testing.T) {
	for _, name := range ListPresets() {
		preset, _ := GetPreset(name)
		p := poly.NewDefault()
		if err := p.ParseStrict(preset.Input); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Topic != "electric-charge" {
		t.Errorf("expected topic electric-charge, got %s", cfg.Topic)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"huge height", func(c *Config) { c.Height = 10000 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }},
		{"empty topic", func(c *Config) { c.Topic = "" }},
		{"unknown preset", func(c *Config) { c.Preset = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestUnknownPresetError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "nope"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldlab.yaml")
	cfg := DefaultConfig()
	cfg.Topic = "ohms-law"
	cfg.Preset = "dim"
	cfg.Params = map[string]float64{"resistance": 10}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Topic != "ohms-law" || loaded.Params["resistance"] != 10 {
		t.Errorf("unexpected config %+v", loaded)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("topic: capacitors\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != DefaultWidth || cfg.FPS != DefaultFPS {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestInitialParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Topic = "ohms-law"
	cfg.Preset = "dim"
	cfg.Params = map[string]float64{"resistance": 10}

	got := cfg.InitialParams()
	if got["voltage"] != 3 || got["resistance"] != 10 {
		t.Errorf("unexpected merge %v", got)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("electric-charge", "repel")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p["distance"] != 60 {
		t.Errorf("expected distance 60, got %v", p["distance"])
	}
	if GetPreset("electric-charge", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "repel") != nil {
		t.Error("expected nil for nonexistent topic")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("ohms-law")
	if len(presets) != 3 || presets[0] != "bulb" {
		t.Errorf("expected sorted presets, got %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent topic")
	}
}

package holocard

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	for name, cfg := range map[string]Config{
		"default":     DefaultConfig(),
		"hover":       PresetHover(),
		"tilt":        PresetTilt(),
		"holographic": PresetHolographic(),
	} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", name, err)
		}
	}
}

func TestParseConfigOverridesPreset(t *testing.T) {
	data := []byte(`
preset: hover
maxTilt: 18
enableGlare: true
glareIntensity: 0.5
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.MaxTilt != 18 {
		t.Errorf("MaxTilt = %v, want 18", cfg.MaxTilt)
	}
	if !cfg.EnableGlare || cfg.GlareIntensity != 0.5 {
		t.Errorf("glare = %v/%v, want true/0.5", cfg.EnableGlare, cfg.GlareIntensity)
	}
	// Untouched keys keep the hover preset's values.
	if cfg.Scale != 1.05 || cfg.EnableOrientationTilt {
		t.Errorf("Scale/EnableOrientationTilt = %v/%v, want hover values", cfg.Scale, cfg.EnableOrientationTilt)
	}
}

func TestParseConfigEmptyIsDefault(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ParseConfig({}) = %+v, want DefaultConfig", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"bad yaml", "maxTilt: [1, 2", false},
		{"unknown preset", "preset: sparkly", true},
		{"tilt too large", "maxTilt: 95", true},
		{"negative speed", "speed: -1", true},
		{"glare above one", "glareIntensity: 1.5", true},
		{"negative gain", "orientationGain: -2", true},
		{"window too wide", "orientationWindow: 270", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(path, []byte("preset: tilt\nframeAligned: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxTilt != 25 || !cfg.FrameAligned {
		t.Errorf("MaxTilt/FrameAligned = %v/%v, want 25/true", cfg.MaxTilt, cfg.FrameAligned)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig on a missing file should fail")
	}
}

func TestApplyDefaultsFillsZeroes(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()
	if cfg.MaxTilt != defaultMaxTilt || cfg.Scale != defaultScale || cfg.Perspective != defaultPerspective {
		t.Errorf("applyDefaults = %+v", cfg)
	}
	if cfg.EnableGlare {
		t.Error("applyDefaults must not flip booleans")
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"NaN max tilt", func(c *Config) { c.MaxTilt = math.NaN() }},
		{"NaN scale", func(c *Config) { c.Scale = math.NaN() }},
		{"infinite speed", func(c *Config) { c.Speed = math.Inf(1) }},
		{"NaN glare", func(c *Config) { c.GlareIntensity = math.NaN() }},
		{"NaN window", func(c *Config) { c.OrientationWindow = math.NaN() }},
		{"infinite perspective", func(c *Config) { c.Perspective = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

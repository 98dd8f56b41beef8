package holocard

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config is the immutable configuration captured when an engine is built.
// Start from DefaultConfig or a preset; zero numeric fields are replaced by
// their defaults when the engine is created, booleans are taken as given.
type Config struct {
	MaxTilt        float64 `yaml:"maxTilt"`        // degrees, rotation limit on both axes
	Scale          float64 `yaml:"scale"`          // scale while engaged
	Speed          float64 `yaml:"speed"`          // milliseconds, disengage transition
	GlareIntensity float64 `yaml:"glareIntensity"` // [0, 1]
	ShineIntensity float64 `yaml:"shineIntensity"` // [0, 1]
	EnableGlare    bool    `yaml:"enableGlare"`
	EnableShine    bool    `yaml:"enableShine"`

	EnableTouchTilt       bool `yaml:"enableTouchTilt"`
	EnableOrientationTilt bool `yaml:"enableOrientationTilt"`

	// OrientationWindow is the sensor angle, in degrees, that maps to full
	// tilt. Readings beyond it are clamped.
	OrientationWindow float64 `yaml:"orientationWindow"`
	// OrientationGain boosts orientation tilt; real hand tilt is smaller than
	// deliberate mouse movement.
	OrientationGain float64 `yaml:"orientationGain"`
	// TouchReleaseDelay is the grace period in milliseconds between a touch
	// end and the return to idle.
	TouchReleaseDelay float64 `yaml:"touchReleaseDelay"`
	Perspective       float64 `yaml:"perspective"` // pixels
	// FrameAligned defers composition to Engine.Update so that at most one
	// descriptor is produced per frame.
	FrameAligned bool `yaml:"frameAligned"`
}

const (
	defaultMaxTilt           = 20
	defaultScale             = 1.08
	defaultSpeed             = 300
	defaultGlareIntensity    = 0.4
	defaultShineIntensity    = 0.6
	defaultOrientationWindow = 45
	defaultOrientationGain   = 1.2
	defaultTouchReleaseDelay = 100
	defaultPerspective       = 1000
)

// DefaultConfig returns the holographic card configuration: glare and shine
// on, every input source enabled.
func DefaultConfig() Config {
	return Config{
		MaxTilt:               defaultMaxTilt,
		Scale:                 defaultScale,
		Speed:                 defaultSpeed,
		GlareIntensity:        defaultGlareIntensity,
		ShineIntensity:        defaultShineIntensity,
		EnableGlare:           true,
		EnableShine:           true,
		EnableTouchTilt:       true,
		EnableOrientationTilt: true,
		OrientationWindow:     defaultOrientationWindow,
		OrientationGain:       defaultOrientationGain,
		TouchReleaseDelay:     defaultTouchReleaseDelay,
		Perspective:           defaultPerspective,
	}
}

// PresetHover is a plain hover tilt with no lighting and no mobile input.
func PresetHover() Config {
	c := DefaultConfig()
	c.MaxTilt = 15
	c.Scale = 1.05
	c.EnableGlare = false
	c.EnableShine = false
	c.EnableTouchTilt = false
	c.EnableOrientationTilt = false
	return c
}

// PresetTilt is a wide tilt with a soft sheen that follows the device
// orientation on phones and ignores finger drags.
func PresetTilt() Config {
	c := DefaultConfig()
	c.MaxTilt = 25
	c.Scale = 1.05
	c.Speed = 1000
	c.EnableGlare = false
	c.ShineIntensity = 0.3
	c.EnableTouchTilt = false
	return c
}

// PresetHolographic is DefaultConfig.
func PresetHolographic() Config {
	return DefaultConfig()
}

// Preset returns the named preset: "hover", "tilt" or "holographic".
func Preset(name string) (Config, error) {
	switch name {
	case "", "holographic":
		return PresetHolographic(), nil
	case "hover":
		return PresetHover(), nil
	case "tilt":
		return PresetTilt(), nil
	default:
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
}

// LoadConfig reads an engine configuration from a YAML file.
//
// The file may name a base preset with a top-level "preset" key; every other
// key overrides the preset's value.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read engine config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load engine config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML engine configuration.
func ParseConfig(data []byte) (Config, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("failed to parse engine config YAML: %w", err)
	}
	cfg, err := Preset(head.Preset)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse engine config YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills zero numeric fields.
func (c *Config) applyDefaults() {
	if c.MaxTilt == 0 {
		c.MaxTilt = defaultMaxTilt
	}
	if c.Scale == 0 {
		c.Scale = defaultScale
	}
	if c.OrientationWindow == 0 {
		c.OrientationWindow = defaultOrientationWindow
	}
	if c.OrientationGain == 0 {
		c.OrientationGain = defaultOrientationGain
	}
	if c.Perspective == 0 {
		c.Perspective = defaultPerspective
	}
}

// Validate checks every field against its allowed range. NaN fails every
// check.
func (c Config) Validate() error {
	switch {
	case !(c.MaxTilt > 0 && c.MaxTilt < 90):
		return fmt.Errorf("%w: maxTilt %v outside (0, 90)", ErrInvalidConfig, c.MaxTilt)
	case !(c.Scale > 0) || math.IsInf(c.Scale, 0):
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidConfig, c.Scale)
	case !(c.Speed >= 0) || math.IsInf(c.Speed, 0):
		return fmt.Errorf("%w: speed %v must not be negative", ErrInvalidConfig, c.Speed)
	case !(c.GlareIntensity >= 0 && c.GlareIntensity <= 1):
		return fmt.Errorf("%w: glareIntensity %v outside [0, 1]", ErrInvalidConfig, c.GlareIntensity)
	case !(c.ShineIntensity >= 0 && c.ShineIntensity <= 1):
		return fmt.Errorf("%w: shineIntensity %v outside [0, 1]", ErrInvalidConfig, c.ShineIntensity)
	case !(c.OrientationWindow > 0 && c.OrientationWindow <= 180):
		return fmt.Errorf("%w: orientationWindow %v outside (0, 180]", ErrInvalidConfig, c.OrientationWindow)
	case !(c.OrientationGain > 0) || math.IsInf(c.OrientationGain, 0):
		return fmt.Errorf("%w: orientationGain %v must be positive", ErrInvalidConfig, c.OrientationGain)
	case !(c.TouchReleaseDelay >= 0) || math.IsInf(c.TouchReleaseDelay, 0):
		return fmt.Errorf("%w: touchReleaseDelay %v must not be negative", ErrInvalidConfig, c.TouchReleaseDelay)
	case !(c.Perspective > 0) || math.IsInf(c.Perspective, 0):
		return fmt.Errorf("%w: perspective %v must be positive", ErrInvalidConfig, c.Perspective)
	}
	return nil
}

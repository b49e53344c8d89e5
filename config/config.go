// Package config provides configuration loading and access for the
// playground.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all playground configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Pool      PoolConfig      `yaml:"pool"`
	Well      WellConfig      `yaml:"well"`
	Collision CollisionConfig `yaml:"collision"`
	Emitters  EmittersConfig  `yaml:"emitters"`
	Bodies    BodiesConfig    `yaml:"bodies"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PoolConfig holds particle pool parameters.
type PoolConfig struct {
	Capacity int     `yaml:"capacity"`
	GravityX float64 `yaml:"gravity_x"`
	GravityY float64 `yaml:"gravity_y"`
}

// WellConfig holds gravity well defaults applied while the well key is held.
type WellConfig struct {
	Strength float64 `yaml:"strength"`
	Radius   float64 `yaml:"radius"`
}

// CollisionConfig holds particle-vs-body collision parameters.
type CollisionConfig struct {
	Restitution float64 `yaml:"restitution"` // 0 = damped stop, 1 = elastic
}

// EmittersConfig names the built-in emitter presets.
type EmittersConfig struct {
	Burst    EmitterPreset `yaml:"burst"`
	Fountain EmitterPreset `yaml:"fountain"`
}

// EmitterPreset is the full emitter surface; every field is required, the
// engine applies no defaults of its own.
type EmitterPreset struct {
	Count         int         `yaml:"count"`
	SpeedMin      float64     `yaml:"speed_min"`
	SpeedMax      float64     `yaml:"speed_max"`
	SpreadRadians float64     `yaml:"spread_radians"`
	BaseDirection float64     `yaml:"base_direction"` // radians, 0 = +x, positive = screen-down
	LifeMin       float64     `yaml:"life_min"`       // seconds
	LifeMax       float64     `yaml:"life_max"`
	SizeMin       float64     `yaml:"size_min"` // pixels
	SizeMax       float64     `yaml:"size_max"`
	StartColor    ColorConfig `yaml:"start_color"`
	EndColor      ColorConfig `yaml:"end_color"`
}

// ColorConfig is an 8-bit RGBA value.
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// BodiesConfig holds obstacle body spawn parameters.
type BodiesConfig struct {
	Count    int     `yaml:"count"`
	Size     float64 `yaml:"size"`      // square side, pixels
	MaxSpeed float64 `yaml:"max_speed"` // initial speed cap per axis
}

// TelemetryConfig holds stats aggregation parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per aggregation window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

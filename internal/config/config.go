package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTopic    = "electric-charge"
	DefaultWidth    = 800.0
	DefaultHeight   = 384.0
	DefaultFPS      = 60
	DefaultTheme    = "slate"
	DefaultLogLevel = "info"
)

type Config struct {
	Topic    string             `yaml:"topic" validate:"required"`
	Width    float64            `yaml:"width" validate:"gt=0,lte=4096"`
	Height   float64            `yaml:"height" validate:"gt=0,lte=4096"`
	FPS      int                `yaml:"fps" validate:"gte=1,lte=240"`
	Theme    string             `yaml:"theme" validate:"required,oneof=slate chalk phosphor paper"`
	LogLevel string             `yaml:"log_level" validate:"oneof=debug info warn error"`
	Autoplay bool               `yaml:"autoplay"`
	Preset   string             `yaml:"preset,omitempty"`
	Params   map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Topic:    DefaultTopic,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Preset != "" && GetPreset(c.Topic, c.Preset) == nil {
		return fmt.Errorf("%w: %s/%s", ErrUnknownPreset, c.Topic, c.Preset)
	}
	return nil
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitialParams merges the configured preset with explicit overrides;
// explicit values win.
func (c *Config) InitialParams() map[string]float64 {
	out := make(map[string]float64)
	for k, v := range GetPreset(c.Topic, c.Preset) {
		out[k] = v
	}
	for k, v := range c.Params {
		out[k] = v
	}
	return out
}

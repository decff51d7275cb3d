package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/fieldlab/internal/config"
)

var errBadAssignment = errors.New("expected name=value")

// parseAssignments turns repeated --set flags into a parameter map. Later
// assignments to the same name win.
func parseAssignments(in []string) (map[string]float64, error) {
	out := make(map[string]float64, len(in))
	for _, s := range in {
		name, raw, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", errBadAssignment, s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadAssignment, s, err)
		}
		out[name] = v
	}
	return out, nil
}

// resolveConfig loads the config file (or defaults) and layers the command
// line on top: topic argument, --preset, then --set.
func resolveConfig(args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 && args[0] != cfg.Topic {
		cfg.Topic = args[0]
		// a preset from the file belongs to the file's topic
		if config.GetPreset(cfg.Topic, cfg.Preset) == nil {
			cfg.Preset = ""
		}
	}
	if preset != "" {
		cfg.Preset = preset
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	overrides, err := parseAssignments(sets)
	if err != nil {
		return nil, err
	}
	if cfg.Params == nil {
		cfg.Params = make(map[string]float64)
	}
	for k, v := range overrides {
		cfg.Params[k] = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

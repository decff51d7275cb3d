package config

import (
	"errors"
	"sort"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Presets holds named parameter sets per topic. Values pass through the
// clamping parameter store when applied.
var Presets = map[string]map[string]map[string]float64{
	"electric-charge": {
		"attract": {"charge1": 1, "charge2": -1, "distance": 100},
		"repel":   {"charge1": 2, "charge2": 2, "distance": 60},
		"weak":    {"charge1": 0.2, "charge2": -0.2, "distance": 150},
	},
	"electric-field": {
		"strong": {"fieldStrength": 2},
		"weak":   {"fieldStrength": 0.5},
	},
	"capacitors": {
		"low-voltage":  {"charge1": 1, "voltage": 1},
		"high-voltage": {"charge1": 2, "voltage": 24},
	},
	"ohms-law": {
		"bulb":  {"voltage": 12, "resistance": 6},
		"short": {"voltage": 24, "resistance": 1},
		"dim":   {"voltage": 3, "resistance": 20},
	},
}

func GetPreset(topic, preset string) map[string]float64 {
	topicPresets, ok := Presets[topic]
	if !ok {
		return nil
	}
	p, ok := topicPresets[preset]
	if !ok {
		return nil
	}
	return p
}

func ListPresets(topic string) []string {
	topicPresets, ok := Presets[topic]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(topicPresets))
	for name := range topicPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package params

import "math"

// Domain is the closed interval a parameter may take. Step is the increment
// used by interactive nudging; writes are not quantized to it.
type Domain struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

func (d Domain) Clamp(v float64) float64 {
	return math.Max(d.Min, math.Min(d.Max, v))
}

func (d Domain) Contains(v float64) bool { return v >= d.Min && v <= d.Max }

// Param describes one adjustable parameter of a topic.
type Param struct {
	Name   Name   `json:"name" yaml:"name"`
	Label  string `json:"label" yaml:"label"`
	Unit   string `json:"unit" yaml:"unit"`
	Domain Domain `json:"domain" yaml:"domain"`
}

// Coupling recomputes dependent values after name was written into next.
type Coupling func(name Name, next Set) Set

// OhmsLaw keeps V = I·R when the resistance changes. A voltage write leaves
// current and resistance untouched.
func OhmsLaw(name Name, next Set) Set {
	if name == Resistance && next.Resistance != 0 {
		next.Current = next.Voltage / next.Resistance
	}
	return next
}

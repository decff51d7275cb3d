package topics

import (
	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

// Topic identifies one lesson visualization.
type Topic string

const (
	ElectricCharge    Topic = "electric-charge"
	ElectricField     Topic = "electric-field"
	ElectricPotential Topic = "electric-potential"
	Capacitors        Topic = "capacitors"
	Resistivity       Topic = "resistivity"
	OhmsLaw           Topic = "ohms-law"
	MaxwellEquations  Topic = "maxwell-equations"

	Placeholder Topic = "placeholder"
)

// Frame carries everything a routine may depend on besides the parameters.
// Elapsed is in seconds since the animation origin.
type Frame struct {
	Width   float64
	Height  float64
	Elapsed float64
	Playing bool
}

func (f Frame) center() (float64, float64) { return f.Width / 2, f.Height / 2 }

// Routine renders one frame. Routines are pure: equal inputs yield equal
// command lists.
type Routine func(f Frame, p params.Set) []scene.Command

// Reading is the live numeric result a topic annotates its frame with.
type Reading struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Palette shared by all routines.
const (
	ColorBackground scene.Color = "#1f2937"
	ColorPositive   scene.Color = "#ef4444"
	ColorNegative   scene.Color = "#3b82f6"
	ColorField      scene.Color = "#10b981"
	ColorText       scene.Color = "#ffffff"
	ColorPlate      scene.Color = "#6b7280"
	ColorCurrent    scene.Color = "#fbbf24"
)

func chargeColor(q float64) scene.Color {
	if q > 0 {
		return ColorPositive
	}
	return ColorNegative
}

func chargeGlyph(q float64) string {
	if q > 0 {
		return "+"
	}
	return "−"
}

// formula writes the heading formula and its caption in the top-left corner.
func formula(b *scene.Builder, head, caption string) {
	b.Text(scene.Pt(20, 30), head, 18, scene.AlignLeft, ColorText)
	b.Text(scene.Pt(20, 50), caption, 14, scene.AlignLeft, ColorText)
}

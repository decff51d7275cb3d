package topics

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

var allTopics = append(Default.Topics(), Placeholder, "no-such-topic")

func frameAt(t float64, playing bool) Frame {
	return Frame{Width: 800, Height: 384, Elapsed: t, Playing: playing}
}

func count(cmds []scene.Command, match func(scene.Command) bool) int {
	n := 0
	for _, c := range cmds {
		if match(c) {
			n++
		}
	}
	return n
}

func texts(cmds []scene.Command) []string {
	var out []string
	for _, c := range cmds {
		if c.Kind == scene.KindText {
			out = append(out, c.Text)
		}
	}
	return out
}

func hasText(cmds []scene.Command, want string) bool {
	for _, s := range texts(cmds) {
		if s == want {
			return true
		}
	}
	return false
}

func TestRoutinesAreDeterministic(t *testing.T) {
	sets := []params.Set{
		params.Defaults(),
		{Charge1: -2, Charge2: 1.5, Distance: 50, FieldStrength: 2, Voltage: 24, Current: 1.2, Resistance: 20},
	}
	times := []float64{0, 0.25, 3.7, 120}

	for _, id := range allTopics {
		e := Lookup(string(id))
		for _, p := range sets {
			for _, tm := range times {
				for _, playing := range []bool{false, true} {
					a := e.Render(frameAt(tm, playing), p)
					b := e.Render(frameAt(tm, playing), p)
					if !reflect.DeepEqual(a, b) {
						t.Errorf("%s t=%v playing=%v: non-deterministic output", id, tm, playing)
					}
				}
			}
		}
	}
}

func TestEveryFrameStartsWithClear(t *testing.T) {
	for _, id := range allTopics {
		cmds := Lookup(string(id)).Render(frameAt(1, true), params.Defaults())
		if len(cmds) == 0 || cmds[0].Kind != scene.KindClear {
			t.Errorf("%s: expected leading clear", id)
		}
	}
}

func TestUnknownTopicUsesPlaceholder(t *testing.T) {
	e := Lookup("quantum-tunnelling")
	if e.Topic != Placeholder {
		t.Fatalf("expected placeholder, got %s", e.Topic)
	}
	if Default.Known("quantum-tunnelling") {
		t.Error("unknown id reported as known")
	}

	cmds := e.Render(frameAt(5, true), params.Defaults())
	if !hasText(cmds, "Physics Simulation") {
		t.Errorf("expected title text, got %v", texts(cmds))
	}
	still := e.Render(frameAt(0, false), params.Defaults())
	if !reflect.DeepEqual(cmds, still) {
		t.Error("placeholder should not animate")
	}
}

func TestZeroEntryRendersPlaceholder(t *testing.T) {
	var e Entry
	cmds := e.Render(frameAt(0, false), params.Defaults())
	if !hasText(cmds, "Interactive visualization coming soon!") {
		t.Error("expected placeholder output for empty entry")
	}
	if _, ok := e.Reading(params.Defaults()); ok {
		t.Error("empty entry should have no reading")
	}
}

func TestCoulombFormulaFidelity(t *testing.T) {
	p := params.Defaults()
	if got := CoulombForce(p); got != -8.99e9 {
		t.Errorf("expected -8.99e9, got %v", got)
	}

	cmds := Lookup(string(ElectricCharge)).Render(frameAt(0, false), p)
	if !hasText(cmds, "F = -8990.00 × 10⁶ N") {
		t.Errorf("force annotation missing, got %v", texts(cmds))
	}

	r, ok := Lookup(string(ElectricCharge)).Reading(p)
	if !ok || r.Value != -8.99e9 || r.Unit != "N" {
		t.Errorf("unexpected reading %+v", r)
	}
}

func TestAnnotationsFollowParameters(t *testing.T) {
	p := params.Defaults()
	p.Resistance = 4
	p.Current = 3

	cmds := Lookup(string(OhmsLaw)).Render(frameAt(0, false), p)
	for _, want := range []string{"V = 12V", "I = 3A", "R = 4Ω", "Power P = VI = 36.0W"} {
		if !hasText(cmds, want) {
			t.Errorf("expected %q in %v", want, texts(cmds))
		}
	}

	p.Charge1 = 2
	p.Voltage = 8
	cmds = Lookup(string(Capacitors)).Render(frameAt(0, false), p)
	if !hasText(cmds, "C = 0.25 F") {
		t.Errorf("capacitance annotation missing, got %v", texts(cmds))
	}
}

func TestChargeMarkers(t *testing.T) {
	p := params.Defaults()
	p.Distance = 120
	cmds := Lookup(string(ElectricCharge)).Render(frameAt(0, false), p)

	var circles []scene.Command
	for _, c := range cmds {
		if c.Kind == scene.KindCircle {
			circles = append(circles, c)
		}
	}
	if len(circles) != 2 {
		t.Fatalf("expected 2 charges, got %d", len(circles))
	}
	if circles[0].Points[0].X != 400-120 || circles[1].Points[0].X != 400+120 {
		t.Errorf("unexpected charge positions %v %v", circles[0].Points, circles[1].Points)
	}
	if circles[0].Fill != ColorPositive || circles[1].Fill != ColorNegative {
		t.Errorf("unexpected charge colors %s %s", circles[0].Fill, circles[1].Fill)
	}
}

func TestForceArrowsOnlyWhilePlaying(t *testing.T) {
	isArrow := func(c scene.Command) bool { return c.Kind == scene.KindLine && c.Stroke == ColorField }
	e := Lookup(string(ElectricCharge))

	if n := count(e.Render(frameAt(1, false), params.Defaults()), isArrow); n != 0 {
		t.Errorf("expected no arrows when paused, got %d", n)
	}
	playing := e.Render(frameAt(0, true), params.Defaults())
	if n := count(playing, isArrow); n != 2 {
		t.Fatalf("expected 2 arrows, got %d", n)
	}
	for _, c := range playing {
		if isArrow(c) {
			if l := c.Points[0].X - c.Points[1].X; l != 60 && l != -60 {
				t.Errorf("expected arrow length 60 at t=0, got %v", l)
			}
		}
	}
}

func TestFieldLines(t *testing.T) {
	isLine := func(c scene.Command) bool { return c.Kind == scene.KindLine }
	isHead := func(c scene.Command) bool { return c.Kind == scene.KindPolygon }
	e := Lookup(string(ElectricField))

	for _, playing := range []bool{false, true} {
		cmds := e.Render(frameAt(2, playing), params.Defaults())
		if n := count(cmds, isLine); n != fieldLines {
			t.Errorf("playing=%v: expected %d lines, got %d", playing, fieldLines, n)
		}
		if n := count(cmds, isHead); n != fieldLines {
			t.Errorf("playing=%v: expected %d arrowheads, got %d", playing, fieldLines, n)
		}
	}

	a := e.Render(frameAt(0, false), params.Defaults())
	b := e.Render(frameAt(9, false), params.Defaults())
	if !reflect.DeepEqual(a, b) {
		t.Error("paused field lines should not depend on time")
	}
	c := e.Render(frameAt(0.5, true), params.Defaults())
	d := e.Render(frameAt(1.5, true), params.Defaults())
	if reflect.DeepEqual(c, d) {
		t.Error("playing field lines should breathe")
	}
}

func TestPotentialIsStatic(t *testing.T) {
	e := Lookup(string(ElectricPotential))
	a := e.Render(frameAt(0, false), params.Defaults())
	b := e.Render(frameAt(7, true), params.Defaults())
	if !reflect.DeepEqual(a, b) {
		t.Error("potential frame should be independent of play state and time")
	}
	for _, v := range []string{"20V", "15V", "10V", "5V", "2V"} {
		if !hasText(a, v) {
			t.Errorf("missing label %s", v)
		}
	}
}

func TestCapacitorMarkersAndLines(t *testing.T) {
	e := Lookup(string(Capacitors))
	isMarker := func(c scene.Command) bool { return c.Kind == scene.KindCircle && c.Radius == 4 }
	isLine := func(c scene.Command) bool { return c.Kind == scene.KindLine }

	paused := e.Render(frameAt(1, false), params.Defaults())
	if n := count(paused, isMarker); n != 2*plateCharges {
		t.Errorf("expected %d markers, got %d", 2*plateCharges, n)
	}
	if n := count(paused, isLine); n != 0 {
		t.Errorf("expected no field lines when paused, got %d", n)
	}
	if n := count(e.Render(frameAt(1, true), params.Defaults()), isLine); n != capacitorLines {
		t.Errorf("expected %d field lines, got %d", capacitorLines, n)
	}
}

func TestResistivityParticles(t *testing.T) {
	e := Lookup(string(Resistivity))
	isParticle := func(c scene.Command) bool { return c.Kind == scene.KindCircle && c.Fill == ColorCurrent }

	if n := count(e.Render(frameAt(3, false), params.Defaults()), isParticle); n != 0 {
		t.Errorf("expected no particles when paused, got %d", n)
	}

	cmds := e.Render(frameAt(100, true), params.Defaults())
	if n := count(cmds, isParticle); n != driftParticles {
		t.Fatalf("expected %d particles, got %d", driftParticles, n)
	}
	for _, c := range cmds {
		if isParticle(c) {
			x := c.Points[0].X
			if x < 400-90 || x >= 400-90+driftSpan {
				t.Errorf("particle escaped the block: x=%v", x)
			}
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {179, 179}, {180, 0}, {370, 10}, {-10, 170},
	}
	for _, tt := range tests {
		if got := wrap(tt.in, 180); got != tt.want {
			t.Errorf("wrap(%v) expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestMaxwellWave(t *testing.T) {
	e := Lookup(string(MaxwellEquations))
	isWave := func(c scene.Command) bool { return c.Kind == scene.KindPolyline }

	paused := e.Render(frameAt(1, false), params.Defaults())
	if n := count(paused, isWave); n != 0 {
		t.Errorf("expected no waves when paused, got %d", n)
	}
	if !hasText(paused, "∇ × E = -∂B/∂t") {
		t.Error("equations should be drawn while paused")
	}

	cmds := e.Render(frameAt(0, true), params.Defaults())
	var waves []scene.Command
	for _, c := range cmds {
		if isWave(c) {
			waves = append(waves, c)
		}
	}
	if len(waves) != 2 {
		t.Fatalf("expected 2 waves, got %d", len(waves))
	}
	if len(waves[0].Points) != 160 {
		t.Errorf("expected 160 samples for width 800, got %d", len(waves[0].Points))
	}
	// 90° phase shift: at x=0, t=0 the electric wave is at the axis and the
	// magnetic wave at its crest.
	if waves[0].Points[0].Y != 192 || waves[1].Points[0].Y != 192+waveAmplitude {
		t.Errorf("unexpected phase: E=%v B=%v", waves[0].Points[0].Y, waves[1].Points[0].Y)
	}
	if n := count(cmds, func(c scene.Command) bool { return c.Kind == scene.KindPolygon }); n != 8 {
		t.Errorf("expected 8 propagation arrows, got %d", n)
	}
}

func TestMaxwellDegenerateWidth(t *testing.T) {
	e := Lookup(string(MaxwellEquations))
	for _, w := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		cmds := e.Render(Frame{Width: w, Height: 384, Elapsed: 1, Playing: true}, params.Defaults())
		if n := count(cmds, func(c scene.Command) bool { return c.Kind == scene.KindPolyline }); n != 0 {
			t.Errorf("width %v: expected no waves, got %d", w, n)
		}
		if !hasText(cmds, "∇ × E = -∂B/∂t") {
			t.Errorf("width %v: equations missing", w)
		}
	}
}

func TestRegistryOrderAndParams(t *testing.T) {
	want := []Topic{ElectricCharge, ElectricField, ElectricPotential, Capacitors, Resistivity, OhmsLaw, MaxwellEquations}
	if got := Default.Topics(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	ohm := Lookup(string(OhmsLaw))
	if ohm.Coupling == nil {
		t.Error("ohms-law should couple resistance to current")
	}
	for _, id := range want {
		e := Lookup(string(id))
		for _, p := range e.Params {
			v, _ := e.Defaults().Get(p.Name)
			if !p.Domain.Contains(v) {
				t.Errorf("%s: default %s=%v outside %+v", id, p.Name, v, p.Domain)
			}
		}
		if !strings.Contains(strings.Join(texts(e.Render(frameAt(0, false), params.Defaults())), "\n"), "=") {
			t.Errorf("%s: expected a formula annotation", id)
		}
	}
}

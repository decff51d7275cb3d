package topics

import (
	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

// Entry is everything the engine needs to present one topic.
type Entry struct {
	Topic    Topic
	Title    string
	Draw     Routine
	Params   []params.Param
	Coupling params.Coupling
	Readout  func(params.Set) Reading
}

// Render draws the entry, falling back to the placeholder routine when the
// entry carries none.
func (e Entry) Render(f Frame, p params.Set) []scene.Command {
	if e.Draw == nil {
		return drawPlaceholder(f, p)
	}
	return e.Draw(f, p)
}

func (e Entry) Reading(p params.Set) (Reading, bool) {
	if e.Readout == nil {
		return Reading{}, false
	}
	return e.Readout(p), true
}

func (e Entry) Defaults() params.Set { return params.Defaults() }

type Registry struct {
	entries     map[Topic]Entry
	order       []Topic
	placeholder Entry
}

var (
	chargeDomain   = params.Domain{Min: -2, Max: 2, Step: 0.1}
	distanceDomain = params.Domain{Min: 50, Max: 150, Step: 1}
	voltageDomain  = params.Domain{Min: 1, Max: 24, Step: 1}
)

func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[Topic]Entry),
		placeholder: Entry{
			Topic: Placeholder,
			Title: "Physics Simulation",
			Draw:  drawPlaceholder,
		},
	}

	r.register(Entry{
		Topic: ElectricCharge,
		Title: "Coulomb's law",
		Draw:  drawElectricCharge,
		Params: []params.Param{
			{Name: params.Charge1, Label: "Charge 1", Unit: "C", Domain: chargeDomain},
			{Name: params.Charge2, Label: "Charge 2", Unit: "C", Domain: chargeDomain},
			{Name: params.Distance, Label: "Distance", Unit: "cm", Domain: distanceDomain},
		},
		Readout: coulombReading,
	})
	r.register(Entry{
		Topic: ElectricField,
		Title: "Electric field lines",
		Draw:  drawElectricField,
		Params: []params.Param{
			{Name: params.FieldStrength, Label: "Field strength", Unit: "×", Domain: params.Domain{Min: 0.5, Max: 2, Step: 0.1}},
		},
	})
	r.register(Entry{
		Topic: ElectricPotential,
		Title: "Equipotential surfaces",
		Draw:  drawElectricPotential,
	})
	r.register(Entry{
		Topic: Capacitors,
		Title: "Capacitor charge",
		Draw:  drawCapacitor,
		Params: []params.Param{
			{Name: params.Charge1, Label: "Plate charge", Unit: "C", Domain: params.Domain{Min: 0.1, Max: 2, Step: 0.1}},
			{Name: params.Voltage, Label: "Voltage", Unit: "V", Domain: voltageDomain},
		},
		Readout: capacitanceReading,
	})
	r.register(Entry{
		Topic: Resistivity,
		Title: "Resistive current flow",
		Draw:  drawResistivity,
	})
	r.register(Entry{
		Topic: OhmsLaw,
		Title: "Ohm's law circuit",
		Draw:  drawOhmsLaw,
		Params: []params.Param{
			{Name: params.Voltage, Label: "Voltage", Unit: "V", Domain: voltageDomain},
			{Name: params.Resistance, Label: "Resistance", Unit: "Ω", Domain: params.Domain{Min: 1, Max: 20, Step: 1}},
		},
		Coupling: params.OhmsLaw,
		Readout:  powerReading,
	})
	r.register(Entry{
		Topic: MaxwellEquations,
		Title: "Electromagnetic wave",
		Draw:  drawMaxwell,
	})

	return r
}

// Default is the registry of the built-in lesson topics.
var Default = NewRegistry()

func (r *Registry) register(e Entry) {
	r.entries[e.Topic] = e
	r.order = append(r.order, e.Topic)
}

// Lookup never fails: unknown ids resolve to the placeholder entry.
func (r *Registry) Lookup(id string) Entry {
	if e, ok := r.entries[Topic(id)]; ok {
		return e
	}
	return r.placeholder
}

func (r *Registry) Known(id string) bool {
	_, ok := r.entries[Topic(id)]
	return ok
}

// Topics lists the registered topics in lesson order.
func (r *Registry) Topics() []Topic {
	out := make([]Topic, len(r.order))
	copy(out, r.order)
	return out
}

func Lookup(id string) Entry { return Default.Lookup(id) }

package params

// Name identifies one adjustable quantity.
type Name string

const (
	Charge1       Name = "charge1"
	Charge2       Name = "charge2"
	Distance      Name = "distance"
	FieldStrength Name = "fieldStrength"
	Voltage       Name = "voltage"
	Current       Name = "current"
	Resistance    Name = "resistance"
)

// Names lists every parameter in canonical order. Batch writes follow this
// order so that voltage is applied before resistance.
var Names = []Name{Charge1, Charge2, Distance, FieldStrength, Voltage, Current, Resistance}

// Set is an immutable snapshot of all parameter values. Writers replace it
// wholesale via With.
type Set struct {
	Charge1       float64 `json:"charge1" yaml:"charge1"`
	Charge2       float64 `json:"charge2" yaml:"charge2"`
	Distance      float64 `json:"distance" yaml:"distance"`
	FieldStrength float64 `json:"fieldStrength" yaml:"fieldStrength"`
	Voltage       float64 `json:"voltage" yaml:"voltage"`
	Current       float64 `json:"current" yaml:"current"`
	Resistance    float64 `json:"resistance" yaml:"resistance"`
}

const (
	DefaultCharge1       = 1.0
	DefaultCharge2       = -1.0
	DefaultDistance      = 100.0
	DefaultFieldStrength = 1.0
	DefaultVoltage       = 12.0
	DefaultCurrent       = 2.0
	DefaultResistance    = 6.0
)

func Defaults() Set {
	return Set{
		Charge1:       DefaultCharge1,
		Charge2:       DefaultCharge2,
		Distance:      DefaultDistance,
		FieldStrength: DefaultFieldStrength,
		Voltage:       DefaultVoltage,
		Current:       DefaultCurrent,
		Resistance:    DefaultResistance,
	}
}

func (s Set) Get(n Name) (float64, bool) {
	switch n {
	case Charge1:
		return s.Charge1, true
	case Charge2:
		return s.Charge2, true
	case Distance:
		return s.Distance, true
	case FieldStrength:
		return s.FieldStrength, true
	case Voltage:
		return s.Voltage, true
	case Current:
		return s.Current, true
	case Resistance:
		return s.Resistance, true
	}
	return 0, false
}

// With returns a copy of s with n set to v. Unknown names return s unchanged.
func (s Set) With(n Name, v float64) Set {
	switch n {
	case Charge1:
		s.Charge1 = v
	case Charge2:
		s.Charge2 = v
	case Distance:
		s.Distance = v
	case FieldStrength:
		s.FieldStrength = v
	case Voltage:
		s.Voltage = v
	case Current:
		s.Current = v
	case Resistance:
		s.Resistance = v
	}
	return s
}

func (s Set) Map() map[string]float64 {
	m := make(map[string]float64, len(Names))
	for _, n := range Names {
		v, _ := s.Get(n)
		m[string(n)] = v
	}
	return m
}

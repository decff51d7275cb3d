package params

import "math"

// Store holds the parameter set of the active topic. Only the parameters the
// topic declares are writable and every write is clamped into its domain.
// A Store is not safe for concurrent use.
type Store struct {
	params   []Param
	coupling Coupling
	cur      Set
}

func NewStore(ps []Param, c Coupling) *Store {
	s := &Store{cur: Defaults()}
	s.Bind(ps, c)
	return s
}

// Bind switches the declared parameter list and clamps the current values
// into the new domains. The clamp overwrites the stored value: binding back
// to a wider domain does not restore what was there before.
func (s *Store) Bind(ps []Param, c Coupling) {
	s.params = ps
	s.coupling = c
	next := s.cur
	for _, p := range ps {
		v, _ := next.Get(p.Name)
		next = next.With(p.Name, p.Domain.Clamp(v))
	}
	s.cur = next
}

func (s *Store) Get() Set { return s.cur }

func (s *Store) Adjustable() []Param { return s.params }

func (s *Store) Param(name string) (Param, bool) {
	for _, p := range s.params {
		if string(p.Name) == name {
			return p, true
		}
	}
	return Param{}, false
}

// Set writes value into name, clamped to the parameter's domain. It reports
// false and changes nothing when name is not adjustable for the bound topic
// or value is NaN.
func (s *Store) Set(name string, value float64) bool {
	p, ok := s.Param(name)
	if !ok || math.IsNaN(value) {
		return false
	}
	next := s.cur.With(p.Name, p.Domain.Clamp(value))
	if s.coupling != nil {
		next = s.coupling(p.Name, next)
	}
	s.cur = next
	return true
}

// Nudge moves name by steps increments of its domain step.
func (s *Store) Nudge(name string, steps int) bool {
	p, ok := s.Param(name)
	if !ok {
		return false
	}
	v, _ := s.cur.Get(p.Name)
	step := p.Domain.Step
	if step == 0 {
		step = (p.Domain.Max - p.Domain.Min) / 100
	}
	return s.Set(name, v+float64(steps)*step)
}

// Apply writes a batch of values in canonical order and returns how many
// were accepted.
func (s *Store) Apply(values map[string]float64) int {
	n := 0
	for _, name := range Names {
		v, ok := values[string(name)]
		if !ok {
			continue
		}
		if s.Set(string(name), v) {
			n++
		}
	}
	return n
}

func (s *Store) Reset() { s.cur = Defaults() }

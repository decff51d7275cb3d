package main

import (
	"errors"
	"fmt"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/topics"
)

var (
	errNoReadout    = errors.New("topic has no reading")
	errNotAdjusting = errors.New("parameter is not adjustable for topic")
)

type sweepResult struct {
	Param   params.Param
	Reading topics.Reading
	Inputs  []float64
	Values  []float64
}

// sweep walks name across its domain through a clamping store seeded with
// base, recording the topic reading at each point.
func sweep(e topics.Entry, name string, n int, base map[string]float64) (sweepResult, error) {
	if e.Readout == nil {
		return sweepResult{}, fmt.Errorf("%w: %s", errNoReadout, e.Topic)
	}
	store := params.NewStore(e.Params, e.Coupling)
	p, ok := store.Param(name)
	if !ok {
		return sweepResult{}, fmt.Errorf("%w: %s/%s", errNotAdjusting, e.Topic, name)
	}
	if n < 2 {
		n = 2
	}
	store.Apply(base)

	res := sweepResult{Param: p}
	span := p.Domain.Max - p.Domain.Min
	for i := 0; i < n; i++ {
		v := p.Domain.Min + span*float64(i)/float64(n-1)
		store.Set(name, v)
		r, _ := e.Reading(store.Get())
		res.Reading = r
		res.Inputs = append(res.Inputs, v)
		res.Values = append(res.Values, r.Value)
	}
	return res, nil
}

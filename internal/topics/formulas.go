package topics

import (
	"math"

	"github.com/san-kum/fieldlab/internal/params"
)

// K is Coulomb's constant in N·m²/C².
const K = 8.99e9

// PixelsPerMeter converts the on-screen charge offset to metres.
const PixelsPerMeter = 100.0

// CoulombForce returns k·q1·q2/r² with r = distance/100 m. Negative values
// are attractive.
func CoulombForce(p params.Set) float64 {
	r := p.Distance / PixelsPerMeter
	return K * p.Charge1 * p.Charge2 / (r * r)
}

// Capacitance returns Q/V using charge1 as the plate charge.
func Capacitance(p params.Set) float64 {
	if p.Voltage == 0 {
		return math.Inf(1)
	}
	return p.Charge1 / p.Voltage
}

// Power returns P = V·I.
func Power(p params.Set) float64 { return p.Voltage * p.Current }

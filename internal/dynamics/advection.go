package dynamics

import "math"

// Advection transports the value function with a constant velocity:
// H(x, t, v, p) = c . p, so the profile moves at velocity c under forward
// integration.
type Advection struct {
	Velocity []float64
}

func NewAdvection(velocity ...float64) *Advection {
	return &Advection{Velocity: velocity}
}

func (d *Advection) StateDim() int { return len(d.Velocity) }

func (d *Advection) Hamiltonian(_ []float64, _ float64, _ float64, grad []float64) float64 {
	h := 0.0
	for a, c := range d.Velocity {
		h += c * grad[a]
	}
	return h
}

func (d *Advection) PartialMaxMagnitudes(_ []float64, _ float64, _ float64, _ []float64, out []float64) {
	for a, c := range d.Velocity {
		out[a] = math.Abs(c)
	}
}

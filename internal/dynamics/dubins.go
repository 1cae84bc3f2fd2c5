package dynamics

import "math"

// Dubins is a constant-speed car over (x, y, heading) whose turn rate is
// the control, chosen to maximize escape from the target set:
// H(x, t, v, p) = s*(cos(theta)*p_x + sin(theta)*p_y) + wMax*|p_theta|.
type Dubins struct {
	Speed       float64
	MaxTurnRate float64
}

func NewDubins(speed, maxTurnRate float64) *Dubins {
	return &Dubins{Speed: speed, MaxTurnRate: maxTurnRate}
}

func (d *Dubins) StateDim() int { return 3 }

func (d *Dubins) Hamiltonian(state []float64, _ float64, _ float64, grad []float64) float64 {
	theta := state[2]
	return d.Speed*(math.Cos(theta)*grad[0]+math.Sin(theta)*grad[1]) + d.MaxTurnRate*math.Abs(grad[2])
}

func (d *Dubins) PartialMaxMagnitudes(state []float64, _ float64, _ float64, _ []float64, out []float64) {
	theta := state[2]
	out[0] = d.Speed * math.Abs(math.Cos(theta))
	out[1] = d.Speed * math.Abs(math.Sin(theta))
	out[2] = d.MaxTurnRate
}

package dynamics

import "math"

// Eikonal is isotropic front propagation with a minimizing control that
// drives states toward the target set: H(x, t, v, p) = -s * |p|. With a
// signed-distance initial condition and backward integration the zero
// level set grows at speed s.
type Eikonal struct {
	Speed float64
	Dims  int
}

func NewEikonal(speed float64, dims int) *Eikonal {
	return &Eikonal{Speed: speed, Dims: dims}
}

func (d *Eikonal) StateDim() int { return d.Dims }

func (d *Eikonal) Hamiltonian(_ []float64, _ float64, _ float64, grad []float64) float64 {
	return -d.Speed * norm(grad)
}

// PartialMaxMagnitudes bounds |dH/dp_a| = s*|p_a|/|p|. At a vanishing
// gradient the derivative is undefined; the conservative bound s applies.
func (d *Eikonal) PartialMaxMagnitudes(_ []float64, _ float64, _ float64, grad []float64, out []float64) {
	n := norm(grad)
	for a := range out {
		if n == 0 {
			out[a] = d.Speed
		} else {
			out[a] = d.Speed * math.Abs(grad[a]) / n
		}
	}
}

func norm(p []float64) float64 {
	sum := 0.0
	for _, v := range p {
		sum += v * v
	}
	return math.Sqrt(sum)
}

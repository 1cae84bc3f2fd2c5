package solver

import "math"

// Field is a dense value function sampled at every grid node, in the
// grid's row-major node order.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

// IsFinite reports whether every entry is a finite number.
func (f Field) IsFinite() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ActiveSet marks the grid nodes eligible for update. Inactive nodes
// contribute zero flux and keep their value bit-for-bit across a step.
type ActiveSet []bool

// AllActive returns a mask covering every node.
func AllActive(n int) ActiveSet {
	a := make(ActiveSet, n)
	for i := range a {
		a[i] = true
	}
	return a
}

// Dynamics is the problem-specific Hamiltonian capability consumed by the
// solver. Implementations must be pure and safe to evaluate at every grid
// node concurrently.
type Dynamics interface {
	// Hamiltonian evaluates H(x, t, v, grad) at a single node.
	Hamiltonian(state []float64, time float64, value float64, grad []float64) float64

	// PartialMaxMagnitudes writes an upper bound for |dH/dgrad[a]| per
	// axis into out, evaluated at a single node.
	PartialMaxMagnitudes(state []float64, time float64, value float64, grad []float64, out []float64)

	// StateDim is the spatial dimension the dynamics are defined over.
	StateDim() int
}

// HamiltonianPostprocessor transforms the time-direction-scaled numerical
// flux at one node before it is negated into a time derivative.
type HamiltonianPostprocessor func(flux float64) float64

// ValuePostprocessor transforms the combined value field once per
// Runge-Kutta step.
type ValuePostprocessor func(time float64, values Field) Field

// IdentityHamiltonian leaves the flux unchanged.
func IdentityHamiltonian(flux float64) float64 { return flux }

// BackwardReachableTube floors the scaled flux at zero, so the value
// function can only move toward its running minimum. Combined with
// backward integration this yields the reachable-tube semantics.
func BackwardReachableTube(flux float64) float64 { return math.Min(flux, 0) }

// IdentityValue returns the field unchanged.
func IdentityValue(_ float64, values Field) Field { return values }

// StaticObstacle clamps the value function to stay above the obstacle
// field ("max with obstacle" masking).
func StaticObstacle(obstacle Field) ValuePostprocessor {
	return func(_ float64, values Field) Field {
		out := values.Clone()
		for i, o := range obstacle {
			if out[i] < o {
				out[i] = o
			}
		}
		return out
	}
}

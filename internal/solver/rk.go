package solver

import (
	"gonum.org/v1/gonum/floats"

	"github.com/arjunkp/hjsolve/internal/grid"
)

// Integrator advances the value function toward targetTime by one
// Runge-Kutta step built from Euler sub-steps. The returned time may fall
// short of targetTime when the CFL bound limits the step. The value
// post-processor runs once, on the final stage combination only.
type Integrator interface {
	Name() string
	Step(set Settings, dyn Dynamics, g *grid.Grid, t float64, values Field, targetTime float64, active ActiveSet) (float64, Field)
}

// blend returns base + c*(stage - base). The increment form keeps nodes
// with stage == base (inactive nodes) bit-identical to base.
func blend(base, stage Field, c float64) Field {
	out := base.Clone()
	diff := stage.Clone()
	floats.Sub(diff, base)
	floats.AddScaled(out, c, diff)
	return out
}

// RK1 is the explicit Euler scheme.
type RK1 struct{}

func (RK1) Name() string { return "tvd_rk1" }

func (RK1) Step(set Settings, dyn Dynamics, g *grid.Grid, t float64, values Field, targetTime float64, active ActiveSet) (float64, Field) {
	t1, v1 := eulerStep(set, dyn, g, t, values, active, 0, targetTime-t)
	return t1, set.ValuePost(t1, v1)
}

// RK2 is the Heun-type second-order TVD scheme: two Euler sub-steps at the
// same step size, averaged with the initial field.
type RK2 struct{}

func (RK2) Name() string { return "tvd_rk2" }

func (RK2) Step(set Settings, dyn Dynamics, g *grid.Grid, t float64, values Field, targetTime float64, active ActiveSet) (float64, Field) {
	t1, v1 := eulerStep(set, dyn, g, t, values, active, 0, targetTime-t)
	dt := t1 - t
	_, v2 := eulerStep(set, dyn, g, t1, v1, active, dt, dt)
	return t1, set.ValuePost(t1, blend(values, v2, 0.5))
}

// RK3 is the classic Shu-Osher third-order TVD scheme.
type RK3 struct{}

func (RK3) Name() string { return "tvd_rk3" }

func (RK3) Step(set Settings, dyn Dynamics, g *grid.Grid, t float64, values Field, targetTime float64, active ActiveSet) (float64, Field) {
	t1, v1 := eulerStep(set, dyn, g, t, values, active, 0, targetTime-t)
	dt := t1 - t
	_, v2 := eulerStep(set, dyn, g, t1, v1, active, dt, dt)

	vHalf := blend(values, v2, 0.25)
	_, v15 := eulerStep(set, dyn, g, t+dt/2, vHalf, active, dt, dt)
	return t1, set.ValuePost(t1, blend(values, v15, 2.0/3.0))
}

package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunkp/hjsolve/internal/grid"
)

// zeroDynamics is stationary: H = 0 with zero wave speeds.
type zeroDynamics struct{ dims int }

func (d *zeroDynamics) StateDim() int { return d.dims }

func (d *zeroDynamics) Hamiltonian(_ []float64, _ float64, _ float64, _ []float64) float64 {
	return 0
}

func (d *zeroDynamics) PartialMaxMagnitudes(_ []float64, _ float64, _ float64, _ []float64, out []float64) {
	for a := range out {
		out[a] = 0
	}
}

func lineGrid(t *testing.T, nodes int, bc grid.Boundary) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.Axis{Min: 0, Max: 1, Nodes: nodes, Boundary: bc})
	require.NoError(t, err)
	return g
}

func sineField(g *grid.Grid, shift float64) Field {
	v := make(Field, g.NumNodes())
	for i := range v {
		v[i] = math.Sin(2 * math.Pi * (g.State(i)[0] - shift))
	}
	return v
}

func integrators() []Integrator {
	return []Integrator{RK1{}, RK2{}, RK3{}}
}

// A zero Hamiltonian must be a fixed point of every integrator: the
// degenerate dissipation field falls back to the full step and the field
// comes back bit-identical.
func TestZeroHamiltonianFixedPoint(t *testing.T) {
	g := lineGrid(t, 32, grid.Extrapolate)
	dyn := &zeroDynamics{dims: 1}
	set := DefaultSettings()
	v0 := sineField(g, 0)

	for _, integ := range integrators() {
		t.Run(integ.Name(), func(t *testing.T) {
			t1, v1 := integ.Step(set, dyn, g, 0, v0, 2.5, AllActive(g.NumNodes()))
			assert.Equal(t, 2.5, t1, "degenerate dissipation should take the full step")
			assert.Equal(t, v0, v1)
		})
	}
}

// The adaptive step must satisfy dt * s / h <= CFL for the known maximum
// wave speed of constant advection.
func TestCFLBound(t *testing.T) {
	g := lineGrid(t, 101, grid.Periodic)
	h := g.Spacings()[0]
	speed := 2.0
	dyn := &driftDynamics{velocity: []float64{speed}}
	set := DefaultSettings()

	t1, _ := RK1{}.Step(set, dyn, g, 0, sineField(g, 0), 10, AllActive(g.NumNodes()))
	dt := t1

	assert.LessOrEqual(t, dt*speed/h, set.CFL+1e-12)
	assert.InDelta(t, set.CFL*h/speed, dt, 1e-12)
}

// Backward integration mirrors forward integration: the step direction
// follows the sign of target - t.
func TestBackwardStepDirection(t *testing.T) {
	g := lineGrid(t, 101, grid.Periodic)
	dyn := &driftDynamics{velocity: []float64{1}}
	set := DefaultSettings()

	t1, _ := RK1{}.Step(set, dyn, g, 0, sineField(g, 0), -10, AllActive(g.NumNodes()))
	assert.Negative(t, t1)
}

func TestRK3MoreAccurateThanRK1(t *testing.T) {
	g := lineGrid(t, 64, grid.Periodic)
	dyn := &driftDynamics{velocity: []float64{1}}
	target := 0.5
	v0 := sineField(g, 0)
	want := sineField(g, target)

	errFor := func(integ Integrator) float64 {
		set := DefaultSettings()
		set.Integrator = integ
		out, err := Step(set, dyn, g, 0, v0, target, Options{})
		require.NoError(t, err)
		maxErr := 0.0
		for i := range out {
			maxErr = math.Max(maxErr, math.Abs(out[i]-want[i]))
		}
		return maxErr
	}

	err1 := errFor(RK1{})
	err3 := errFor(RK3{})

	assert.Less(t, err1, 0.5, "first order should still track the profile")
	assert.Less(t, err3, err1/5, "third order should be clearly more accurate at the same step size")
}

package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunkp/hjsolve/internal/grid"
)

// driftDynamics is constant advection: H = c . grad.
type driftDynamics struct {
	velocity []float64
}

func (d *driftDynamics) StateDim() int { return len(d.velocity) }

func (d *driftDynamics) Hamiltonian(_ []float64, _ float64, _ float64, grad []float64) float64 {
	h := 0.0
	for a, c := range d.velocity {
		h += c * grad[a]
	}
	return h
}

func (d *driftDynamics) PartialMaxMagnitudes(_ []float64, _ float64, _ float64, _ []float64, out []float64) {
	for a, c := range d.velocity {
		out[a] = math.Abs(c)
	}
}

// frontDynamics depends on the gradient, so local and global coefficients
// differ: H = -|grad|, bound |grad_a|/|grad|.
type frontDynamics struct{ dims int }

func (d *frontDynamics) StateDim() int { return d.dims }

func (d *frontDynamics) Hamiltonian(_ []float64, _ float64, _ float64, grad []float64) float64 {
	n := 0.0
	for _, p := range grad {
		n += p * p
	}
	return -math.Sqrt(n)
}

func (d *frontDynamics) PartialMaxMagnitudes(_ []float64, _ float64, _ float64, grad []float64, out []float64) {
	n := 0.0
	for _, p := range grad {
		n += p * p
	}
	n = math.Sqrt(n)
	for a := range out {
		if n == 0 {
			out[a] = 1
		} else {
			out[a] = math.Abs(grad[a]) / n
		}
	}
}

func coeffFixture(t *testing.T) (*grid.Grid, Field, []float64, []float64) {
	t.Helper()
	g, err := grid.New(
		grid.Axis{Min: -1, Max: 1, Nodes: 11},
		grid.Axis{Min: -1, Max: 1, Nodes: 11},
	)
	require.NoError(t, err)
	v := make(Field, g.NumNodes())
	for i := range v {
		x := g.State(i)
		v[i] = x[0]*x[0] + 0.5*x[1]
	}
	left, right := g.UpwindGradValues(grid.ENO2{}, v)
	return g, v, left, right
}

func TestGlobalLaxFriedrichsConstantSpeeds(t *testing.T) {
	g, v, left, right := coeffFixture(t)
	dyn := &driftDynamics{velocity: []float64{2, -3}}

	alpha := make([]float64, g.NumNodes()*2)
	GlobalLaxFriedrichs{}.Coefficients(dyn, g, 0, v, left, right, alpha)

	for i := 0; i < g.NumNodes(); i++ {
		assert.Equal(t, 2.0, alpha[i*2])
		assert.Equal(t, 3.0, alpha[i*2+1])
	}
}

func TestGlobalDominatesLocal(t *testing.T) {
	g, v, left, right := coeffFixture(t)
	dyn := &frontDynamics{dims: 2}

	local := make([]float64, g.NumNodes()*2)
	LocalLaxFriedrichs{}.Coefficients(dyn, g, 0, v, left, right, local)

	global := make([]float64, g.NumNodes()*2)
	GlobalLaxFriedrichs{}.Coefficients(dyn, g, 0, v, left, right, global)

	// Global is one conservative per-axis bound applied everywhere.
	for i := 1; i < g.NumNodes(); i++ {
		assert.Equal(t, global[0], global[i*2])
		assert.Equal(t, global[1], global[i*2+1])
	}
	for i := 0; i < g.NumNodes()*2; i++ {
		assert.GreaterOrEqual(t, global[i], local[i])
	}
}

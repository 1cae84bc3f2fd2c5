package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemes() []Scheme {
	return []Scheme{FirstOrder{}, ENO2{}, WENO3{}, WENO5{}}
}

func sample(g *Grid, fn func(x []float64) float64) []float64 {
	v := make([]float64, g.NumNodes())
	for i := range v {
		v[i] = fn(g.State(i))
	}
	return v
}

func TestSchemesExactOnLinear(t *testing.T) {
	g, err := New(Axis{Min: 0, Max: 1, Nodes: 21})
	require.NoError(t, err)
	v := sample(g, func(x []float64) float64 { return 2*x[0] + 1 })

	for _, s := range schemes() {
		t.Run(s.Name(), func(t *testing.T) {
			left, right := g.UpwindGradValues(s, v)
			for i := 0; i < g.NumNodes(); i++ {
				assert.InDelta(t, 2.0, left[i], 1e-11)
				assert.InDelta(t, 2.0, right[i], 1e-11)
			}
		})
	}
}

// Every candidate stencil of the second- and higher-order schemes is
// exact on quadratics, so any convex weighting must reproduce the
// derivative away from the extrapolated boundary.
func TestHigherOrderExactOnQuadratic(t *testing.T) {
	g, err := New(Axis{Min: 0, Max: 1, Nodes: 21})
	require.NoError(t, err)
	v := sample(g, func(x []float64) float64 { return x[0] * x[0] })

	for _, s := range []Scheme{ENO2{}, WENO3{}, WENO5{}} {
		t.Run(s.Name(), func(t *testing.T) {
			left, right := g.UpwindGradValues(s, v)
			for i := 4; i < g.NumNodes()-4; i++ {
				want := 2 * g.State(i)[0]
				assert.InDelta(t, want, left[i], 1e-9)
				assert.InDelta(t, want, right[i], 1e-9)
			}
		})
	}
}

func TestWENO5PeriodicSine(t *testing.T) {
	g, err := New(Axis{Min: 0, Max: 1, Nodes: 64, Boundary: Periodic})
	require.NoError(t, err)
	v := sample(g, func(x []float64) float64 { return math.Sin(2 * math.Pi * x[0]) })

	left, right := g.UpwindGradValues(WENO5{}, v)
	for i := 0; i < g.NumNodes(); i++ {
		want := 2 * math.Pi * math.Cos(2*math.Pi*g.State(i)[0])
		assert.InDelta(t, want, left[i], 1e-3)
		assert.InDelta(t, want, right[i], 1e-3)
	}
}

func TestUpwindGradValues2D(t *testing.T) {
	g, err := New(
		Axis{Min: 0, Max: 1, Nodes: 11},
		Axis{Min: 0, Max: 1, Nodes: 11},
	)
	require.NoError(t, err)
	v := sample(g, func(x []float64) float64 { return 3*x[0] + 5*x[1] })

	left, right := g.UpwindGradValues(ENO2{}, v)
	require.Len(t, left, g.NumNodes()*2)
	require.Len(t, right, g.NumNodes()*2)
	for i := 0; i < g.NumNodes(); i++ {
		assert.InDelta(t, 3.0, left[i*2], 1e-11)
		assert.InDelta(t, 5.0, left[i*2+1], 1e-11)
		assert.InDelta(t, 3.0, right[i*2], 1e-11)
		assert.InDelta(t, 5.0, right[i*2+1], 1e-11)
	}
}

// A discontinuity must not produce overshooting derivative estimates on
// the smooth side of the jump.
func TestWENO5NonOscillatoryAtJump(t *testing.T) {
	g, err := New(Axis{Min: 0, Max: 1, Nodes: 41})
	require.NoError(t, err)
	v := sample(g, func(x []float64) float64 {
		if x[0] < 0.5 {
			return 0
		}
		return 1
	})

	left, _ := g.UpwindGradValues(WENO5{}, v)
	for i := 0; i < 15; i++ { // well left of the jump
		assert.InDelta(t, 0.0, left[i], 1e-6)
	}
	for i := 26; i < g.NumNodes(); i++ { // well right of the jump
		assert.InDelta(t, 0.0, left[i], 1e-6)
	}
}

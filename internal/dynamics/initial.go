package dynamics

import (
	"math"

	"github.com/arjunkp/hjsolve/internal/grid"
	"github.com/arjunkp/hjsolve/internal/solver"
)

// SphereDistance returns the signed distance to a sphere of the given
// radius: negative inside, zero on the surface. The usual initial value
// function for a ball-shaped target set.
func SphereDistance(g *grid.Grid, center []float64, radius float64) solver.Field {
	v := make(solver.Field, g.NumNodes())
	for i := range v {
		x := g.State(i)
		sum := 0.0
		for a := range x {
			d := x[a]
			if a < len(center) {
				d -= center[a]
			}
			sum += d * d
		}
		v[i] = math.Sqrt(sum) - radius
	}
	return v
}

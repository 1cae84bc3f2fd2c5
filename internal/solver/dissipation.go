package solver

import "github.com/arjunkp/hjsolve/internal/grid"

// DissipationScheme computes the per-node, per-axis artificial dissipation
// coefficients of the Lax-Friedrichs numerical flux.
type DissipationScheme interface {
	Name() string
	// Coefficients fills alpha (node-major, NumNodes*NumDims entries)
	// from the dynamics' wave-speed bounds evaluated at the left and
	// right gradient estimates.
	Coefficients(dyn Dynamics, g *grid.Grid, time float64, values Field, leftGrad, rightGrad, alpha []float64)
}

// LocalLaxFriedrichs bounds the wave speed per node: the elementwise
// maximum of the dynamics' bounds at the left and right gradients.
type LocalLaxFriedrichs struct{}

func (LocalLaxFriedrichs) Name() string { return "local_lax_friedrichs" }

func (LocalLaxFriedrichs) Coefficients(dyn Dynamics, g *grid.Grid, time float64, values Field, leftGrad, rightGrad, alpha []float64) {
	localMaxMagnitudes(dyn, g, time, values, leftGrad, rightGrad, alpha)
}

// GlobalLaxFriedrichs reduces the per-node bounds to a single per-axis
// maximum over the whole grid and applies it uniformly. More smoothing
// than the local variant, but the scheme stays monotone.
type GlobalLaxFriedrichs struct{}

func (GlobalLaxFriedrichs) Name() string { return "global_lax_friedrichs" }

func (GlobalLaxFriedrichs) Coefficients(dyn Dynamics, g *grid.Grid, time float64, values Field, leftGrad, rightGrad, alpha []float64) {
	localMaxMagnitudes(dyn, g, time, values, leftGrad, rightGrad, alpha)

	nd := g.NumDims()
	axisMax := make([]float64, nd)
	for i := 0; i < g.NumNodes(); i++ {
		for a := 0; a < nd; a++ {
			if alpha[i*nd+a] > axisMax[a] {
				axisMax[a] = alpha[i*nd+a]
			}
		}
	}
	for i := 0; i < g.NumNodes(); i++ {
		copy(alpha[i*nd:(i+1)*nd], axisMax)
	}
}

// localMaxMagnitudes evaluates the dynamics' per-axis bounds at both
// one-sided gradients of every node and keeps the larger.
func localMaxMagnitudes(dyn Dynamics, g *grid.Grid, time float64, values Field, leftGrad, rightGrad, alpha []float64) {
	nd := g.NumDims()
	ParallelFor(g.NumNodes(), fluxChunk, func(start, end int) {
		scratch := make([]float64, nd)
		for i := start; i < end; i++ {
			at := i * nd
			state := g.State(i)
			dyn.PartialMaxMagnitudes(state, time, values[i], leftGrad[at:at+nd], alpha[at:at+nd])
			dyn.PartialMaxMagnitudes(state, time, values[i], rightGrad[at:at+nd], scratch)
			for a := 0; a < nd; a++ {
				if scratch[a] > alpha[at+a] {
					alpha[at+a] = scratch[a]
				}
			}
		}
	})
}

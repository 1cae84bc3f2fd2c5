package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arjunkp/hjsolve/internal/grid"
)

// fluxChunk is the smallest per-worker node range worth a goroutine.
const fluxChunk = 256

// eulerStep advances values by one explicit Euler stage: gradient
// reconstruction, dissipation coefficients, Lax-Friedrichs flux, step-size
// selection, update. If fixedStep is nonzero it is used as-is; otherwise
// the step comes from the CFL bound, clamped so its magnitude never
// exceeds |maxStep|. The time direction is the sign of the step in use.
func eulerStep(set Settings, dyn Dynamics, g *grid.Grid, t float64, values Field, active ActiveSet, fixedStep, maxStep float64) (float64, Field) {
	dir := sign(maxStep)
	if fixedStep != 0 {
		dir = sign(fixedStep)
	}

	left, right := g.UpwindGradValues(set.Upwind, values)

	nd := g.NumDims()
	alpha := make([]float64, g.NumNodes()*nd)
	set.Dissipation.Coefficients(dyn, g, t, values, left, right, alpha)

	dvdt := make(Field, g.NumNodes())
	ParallelFor(g.NumNodes(), fluxChunk, func(start, end int) {
		avg := make([]float64, nd)
		for i := start; i < end; i++ {
			if !active[i] {
				continue
			}
			at := i * nd
			gl := left[at : at+nd]
			gr := right[at : at+nd]
			diss := 0.0
			for a := 0; a < nd; a++ {
				avg[a] = (gl[a] + gr[a]) / 2
				diss += alpha[at+a] * (gr[a] - gl[a]) / 2
			}
			flux := dir*dyn.Hamiltonian(g.State(i), t, values[i], avg) - diss
			dvdt[i] = -set.HamiltonianPost(dir * flux)
		}
	})

	dt := fixedStep
	if fixedStep == 0 {
		// Hard barrier: the CFL bound is a global reduction over the
		// dissipation field, so it cannot be fused with the update.
		maxSum := 0.0
		spacings := g.Spacings()
		for i := 0; i < g.NumNodes(); i++ {
			sum := 0.0
			for a := 0; a < nd; a++ {
				sum += alpha[i*nd+a] / spacings[a]
			}
			if sum > maxSum {
				maxSum = sum
			}
		}
		if maxSum > 0 {
			dt = dir * math.Min(set.CFL/maxSum, math.Abs(maxStep))
		} else {
			// Degenerate dissipation (stationary dynamics): the
			// stability bound is unbounded, take the full step.
			dt = maxStep
		}
	}

	out := values.Clone()
	floats.AddScaled(out, dt, dvdt)
	return t + dt, out
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

package solver

import (
	"fmt"
	"math"

	"github.com/arjunkp/hjsolve/internal/grid"
)

// Reporter observes cumulative simulated time advanced during a stepping
// call. Reporting is advisory only and must never affect results; a nil
// reporter disables it.
type Reporter interface {
	// Update is called with the total |t - t_start| advanced so far.
	Update(advanced float64)
	Close() error
}

// Options configures a Step or Solve call.
type Options struct {
	// Active marks the nodes eligible for update; nil means all nodes.
	Active ActiveSet
	// Reporter receives progress updates. The driver takes ownership
	// and closes it on every exit path.
	Reporter Reporter
}

// Step advances values from t to exactly targetTime, sub-stepping as many
// times as the CFL bound requires, and returns the value field at the
// target.
func Step(set Settings, dyn Dynamics, g *grid.Grid, t float64, values Field, targetTime float64, opt Options) (Field, error) {
	active, err := validate(set, dyn, g, values, opt.Active)
	if err != nil {
		closeReporter(opt.Reporter)
		return nil, err
	}
	if opt.Reporter != nil {
		defer opt.Reporter.Close()
	}
	_, out, err := step(set, dyn, g, t, values, targetTime, active, t, opt.Reporter)
	return out, err
}

// Solve advances initialValues across an ordered sequence of times and
// returns one value field per requested time, the initial field included.
func Solve(set Settings, dyn Dynamics, g *grid.Grid, times []float64, initialValues Field, opt Options) ([]Field, error) {
	active, err := validate(set, dyn, g, initialValues, opt.Active)
	if err != nil {
		closeReporter(opt.Reporter)
		return nil, err
	}
	if opt.Reporter != nil {
		defer opt.Reporter.Close()
	}
	if err := checkMonotonic(times); err != nil {
		return nil, err
	}

	out := make([]Field, 0, len(times))
	out = append(out, initialValues.Clone())

	t, values := times[0], initialValues
	for _, target := range times[1:] {
		t, values, err = step(set, dyn, g, t, values, target, active, times[0], opt.Reporter)
		if err != nil {
			return nil, err
		}
		out = append(out, values)
	}
	return out, nil
}

// step is the sequential fixed-point sub-stepping loop: the iteration
// count is data-dependent, set by the CFL-derived step sizes.
func step(set Settings, dyn Dynamics, g *grid.Grid, t float64, values Field, targetTime float64, active ActiveSet, refTime float64, rep Reporter) (float64, Field, error) {
	for math.Abs(targetTime-t) > 0 {
		t, values = set.Integrator.Step(set, dyn, g, t, values, targetTime, active)
		if set.CheckFinite && !values.IsFinite() {
			return t, nil, fmt.Errorf("%w at t=%g", ErrNotFinite, t)
		}
		if rep != nil {
			rep.Update(math.Abs(t - refTime))
		}
	}
	return t, values, nil
}

func validate(set Settings, dyn Dynamics, g *grid.Grid, values Field, active ActiveSet) (ActiveSet, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	if dyn.StateDim() != g.NumDims() {
		return nil, fmt.Errorf("%w: dynamics %dD, grid %dD", ErrDimensionMismatch, dyn.StateDim(), g.NumDims())
	}
	if len(values) != g.NumNodes() {
		return nil, fmt.Errorf("%w: %d values, %d nodes", ErrShapeMismatch, len(values), g.NumNodes())
	}
	if active == nil {
		return AllActive(g.NumNodes()), nil
	}
	if len(active) != g.NumNodes() {
		return nil, fmt.Errorf("%w: %d active flags, %d nodes", ErrShapeMismatch, len(active), g.NumNodes())
	}
	return active, nil
}

func checkMonotonic(times []float64) error {
	if len(times) == 0 {
		return fmt.Errorf("%w: empty time sequence", ErrNonMonotonicTimes)
	}
	for i := 1; i < len(times); i++ {
		d := times[i] - times[i-1]
		if d == 0 || (i > 1 && sign(d) != sign(times[1]-times[0])) {
			return fmt.Errorf("%w: at index %d", ErrNonMonotonicTimes, i)
		}
	}
	return nil
}

func closeReporter(rep Reporter) {
	if rep != nil {
		rep.Close()
	}
}

package dynamics

import (
	"fmt"
	"sort"

	"github.com/arjunkp/hjsolve/internal/solver"
)

// constructors build a model from config parameters, defaulting anything
// the caller leaves out.
var constructors = map[string]func(params map[string]float64) solver.Dynamics{
	"advection": func(p map[string]float64) solver.Dynamics {
		dims := intParam(p, "dims", 1)
		vel := make([]float64, dims)
		for a := range vel {
			vel[a] = param(p, fmt.Sprintf("velocity%d", a), 1.0)
		}
		return NewAdvection(vel...)
	},
	"eikonal": func(p map[string]float64) solver.Dynamics {
		return NewEikonal(param(p, "speed", 1.0), intParam(p, "dims", 2))
	},
	"dubins": func(p map[string]float64) solver.Dynamics {
		return NewDubins(param(p, "speed", 1.0), param(p, "max_turn_rate", 1.0))
	},
}

// Get builds the named model with the given parameters.
func Get(name string, params map[string]float64) (solver.Dynamics, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("dynamics: unknown model %q (known: %v)", name, List())
	}
	return fn(params), nil
}

// List returns the registered model names, sorted.
func List() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func param(p map[string]float64, name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

func intParam(p map[string]float64, name string, def int) int {
	if v, ok := p[name]; ok {
		return int(v)
	}
	return def
}

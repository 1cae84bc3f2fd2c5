package solver

import (
	"fmt"

	"github.com/arjunkp/hjsolve/internal/grid"
)

// Accuracy names a preset pairing of upwind scheme and time integrator.
type Accuracy string

const (
	AccuracyLow       Accuracy = "low"       // first order upwind, RK1
	AccuracyMedium    Accuracy = "medium"    // ENO2, RK2
	AccuracyHigh      Accuracy = "high"      // WENO3, RK3
	AccuracyVeryHigh  Accuracy = "very_high" // WENO5, RK3
	AccuracyCustomODP Accuracy = "customodp" // ENO2, RK3
)

// Accuracies lists the known presets.
func Accuracies() []Accuracy {
	return []Accuracy{AccuracyLow, AccuracyMedium, AccuracyHigh, AccuracyVeryHigh, AccuracyCustomODP}
}

// Settings bundles the scheme choices of one solve. Construct once and
// pass by value; the zero value is not usable, start from
// DefaultSettings or WithAccuracy.
type Settings struct {
	Upwind          grid.Scheme
	Dissipation     DissipationScheme
	Integrator      Integrator
	HamiltonianPost HamiltonianPostprocessor
	ValuePost       ValuePostprocessor
	CFL             float64

	// CheckFinite rejects NaN/Inf fields after every integrator step.
	// Off by default: an unstable scheme then runs to completion and
	// the divergence shows up in the output instead of an error.
	CheckFinite bool
}

// DefaultSettings is the very-high accuracy configuration with identity
// post-processors and CFL 0.75.
func DefaultSettings() Settings {
	return Settings{
		Upwind:          grid.WENO5{},
		Dissipation:     GlobalLaxFriedrichs{},
		Integrator:      RK3{},
		HamiltonianPost: IdentityHamiltonian,
		ValuePost:       IdentityValue,
		CFL:             0.75,
	}
}

// WithAccuracy returns DefaultSettings with the scheme/integrator pair of
// the named preset. Unknown presets are a configuration error, never a
// silent default.
func WithAccuracy(a Accuracy) (Settings, error) {
	set := DefaultSettings()
	switch a {
	case AccuracyLow:
		set.Upwind, set.Integrator = grid.FirstOrder{}, RK1{}
	case AccuracyMedium:
		set.Upwind, set.Integrator = grid.ENO2{}, RK2{}
	case AccuracyHigh:
		set.Upwind, set.Integrator = grid.WENO3{}, RK3{}
	case AccuracyVeryHigh:
		set.Upwind, set.Integrator = grid.WENO5{}, RK3{}
	case AccuracyCustomODP:
		set.Upwind, set.Integrator = grid.ENO2{}, RK3{}
	default:
		return Settings{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownAccuracy, a, Accuracies())
	}
	return set, nil
}

// Validate checks the settings are complete and the CFL number is in (0, 1].
func (s Settings) Validate() error {
	if s.Upwind == nil || s.Dissipation == nil || s.Integrator == nil {
		return fmt.Errorf("solver: settings missing a scheme, dissipation or integrator")
	}
	if s.HamiltonianPost == nil || s.ValuePost == nil {
		return fmt.Errorf("solver: settings missing a post-processor")
	}
	if !(s.CFL > 0 && s.CFL <= 1) {
		return fmt.Errorf("%w: got %g", ErrCFLRange, s.CFL)
	}
	return nil
}

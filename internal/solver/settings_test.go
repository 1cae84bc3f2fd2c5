package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAccuracy(t *testing.T) {
	tests := []struct {
		accuracy   Accuracy
		upwind     string
		integrator string
	}{
		{AccuracyLow, "first_order", "tvd_rk1"},
		{AccuracyMedium, "eno2", "tvd_rk2"},
		{AccuracyHigh, "weno3", "tvd_rk3"},
		{AccuracyVeryHigh, "weno5", "tvd_rk3"},
		{AccuracyCustomODP, "eno2", "tvd_rk3"},
	}
	for _, tt := range tests {
		t.Run(string(tt.accuracy), func(t *testing.T) {
			set, err := WithAccuracy(tt.accuracy)
			require.NoError(t, err)
			assert.Equal(t, tt.upwind, set.Upwind.Name())
			assert.Equal(t, tt.integrator, set.Integrator.Name())
			assert.NoError(t, set.Validate())
		})
	}
}

func TestWithAccuracyUnknown(t *testing.T) {
	_, err := WithAccuracy("ultra")
	assert.ErrorIs(t, err, ErrUnknownAccuracy)
}

func TestValidateCFLRange(t *testing.T) {
	for _, cfl := range []float64{0, -0.5, 1.5} {
		set := DefaultSettings()
		set.CFL = cfl
		assert.ErrorIs(t, set.Validate(), ErrCFLRange, "CFL=%g", cfl)
	}

	set := DefaultSettings()
	set.CFL = 1.0
	assert.NoError(t, set.Validate())
}

func TestValidateMissingSchemes(t *testing.T) {
	assert.Error(t, Settings{CFL: 0.5}.Validate())
}

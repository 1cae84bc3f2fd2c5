package config

import "sort"

// Presets are ready-made scenarios runnable by name from the CLI.
var Presets = map[string]*Config{
	"advection-1d": {
		Dynamics: "advection",
		Params:   map[string]float64{"dims": 1, "velocity0": 1.0},
		Accuracy: "very_high",
		CFL:      0.75,
		Axes:     []AxisConfig{{Min: -1, Max: 1, Nodes: 201, Boundary: "periodic"}},
		Times:    []float64{0, 0.25, 0.5, 0.75, 1.0},
		Initial:  InitialConfig{Kind: "sphere", Radius: 0.25},
	},
	"eikonal-1d": {
		Dynamics: "eikonal",
		Params:   map[string]float64{"dims": 1, "speed": 1.0},
		Accuracy: "very_high",
		CFL:      0.75,
		Tube:     true,
		Axes:     []AxisConfig{{Min: -2, Max: 2, Nodes: 201}},
		Times:    []float64{0, -0.25, -0.5, -0.75, -1.0},
		Initial:  InitialConfig{Kind: "sphere", Radius: 0.5},
	},
	"eikonal-2d": {
		Dynamics: "eikonal",
		Params:   map[string]float64{"dims": 2, "speed": 1.0},
		Accuracy: "high",
		CFL:      0.75,
		Tube:     true,
		Axes: []AxisConfig{
			{Min: -2, Max: 2, Nodes: 101},
			{Min: -2, Max: 2, Nodes: 101},
		},
		Times:   []float64{0, -0.5, -1.0},
		Initial: InitialConfig{Kind: "sphere", Radius: 0.5},
	},
	"dubins-3d": {
		Dynamics: "dubins",
		Params:   map[string]float64{"speed": 1.0, "max_turn_rate": 1.0},
		Accuracy: "medium",
		CFL:      0.75,
		Tube:     true,
		Axes: []AxisConfig{
			{Min: -3, Max: 3, Nodes: 41},
			{Min: -3, Max: 3, Nodes: 41},
			{Min: -3.15, Max: 3.15, Nodes: 41, Boundary: "periodic"},
		},
		Times:   []float64{0, -0.5, -1.0},
		Initial: InitialConfig{Kind: "sphere", Radius: 0.5},
	},
}

// GetPreset returns the named scenario, or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the scenario names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

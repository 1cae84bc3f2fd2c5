package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arjunkp/hjsolve/internal/dynamics"
	"github.com/arjunkp/hjsolve/internal/grid"
	"github.com/arjunkp/hjsolve/internal/solver"
)

const (
	DefaultAccuracy = "very_high"
	DefaultCFL      = 0.75
)

// Config describes one solve scenario: the dynamics model, the grid, the
// initial value function and the output times.
type Config struct {
	Dynamics string             `yaml:"dynamics"`
	Params   map[string]float64 `yaml:"params"`
	Accuracy string             `yaml:"accuracy"`
	CFL      float64            `yaml:"cfl"`
	Tube     bool               `yaml:"tube"` // backward-reachable-tube Hamiltonian post-processor
	Axes     []AxisConfig       `yaml:"axes"`
	Times    []float64          `yaml:"times"`
	Initial  InitialConfig      `yaml:"initial"`
}

type AxisConfig struct {
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Nodes    int     `yaml:"nodes"`
	Boundary string  `yaml:"boundary"`
}

type InitialConfig struct {
	Kind   string    `yaml:"kind"` // only "sphere" for now
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`
}

func DefaultConfig() *Config {
	return &Config{
		Dynamics: "advection",
		Params:   map[string]float64{"dims": 1, "velocity0": 1.0},
		Accuracy: DefaultAccuracy,
		CFL:      DefaultCFL,
		Axes:     []AxisConfig{{Min: -1, Max: 1, Nodes: 101, Boundary: "periodic"}},
		Times:    []float64{0, 0.5, 1.0},
		Initial:  InitialConfig{Kind: "sphere", Radius: 0.25},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildGrid constructs the grid described by the config.
func (c *Config) BuildGrid() (*grid.Grid, error) {
	axes := make([]grid.Axis, len(c.Axes))
	for d, ac := range c.Axes {
		bc, err := grid.ParseBoundary(ac.Boundary)
		if err != nil {
			return nil, err
		}
		axes[d] = grid.Axis{Min: ac.Min, Max: ac.Max, Nodes: ac.Nodes, Boundary: bc}
	}
	return grid.New(axes...)
}

// BuildDynamics constructs the configured dynamics model.
func (c *Config) BuildDynamics() (solver.Dynamics, error) {
	return dynamics.Get(c.Dynamics, c.Params)
}

// BuildSettings constructs solver settings from the accuracy preset, CFL
// number and post-processor flags.
func (c *Config) BuildSettings() (solver.Settings, error) {
	set, err := solver.WithAccuracy(solver.Accuracy(c.Accuracy))
	if err != nil {
		return solver.Settings{}, err
	}
	if c.CFL != 0 {
		set.CFL = c.CFL
	}
	if c.Tube {
		set.HamiltonianPost = solver.BackwardReachableTube
	}
	return set, nil
}

// BuildInitialValues constructs the initial value function on g.
func (c *Config) BuildInitialValues(g *grid.Grid) (solver.Field, error) {
	switch c.Initial.Kind {
	case "", "sphere":
		return dynamics.SphereDistance(g, c.Initial.Center, c.Initial.Radius), nil
	}
	return nil, fmt.Errorf("config: unknown initial condition %q", c.Initial.Kind)
}

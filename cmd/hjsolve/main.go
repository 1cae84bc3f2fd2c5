package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/arjunkp/hjsolve/internal/config"
	"github.com/arjunkp/hjsolve/internal/dynamics"
	"github.com/arjunkp/hjsolve/internal/grid"
	"github.com/arjunkp/hjsolve/internal/progress"
	"github.com/arjunkp/hjsolve/internal/solver"
	"github.com/arjunkp/hjsolve/internal/store"
)

var (
	dataDir      string
	configFile   string
	accuracy     string
	cfl          float64
	showProgress bool
	saveRun      bool
	plotField    bool
	plotHeight   int
	// Convergence study
	convergeNodes []int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hjsolve",
		Short: "Hamilton-Jacobi reachability solver",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hjsolve", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "solve a scenario to its output times",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	runCmd.Flags().StringVar(&accuracy, "accuracy", "", "override accuracy preset")
	runCmd.Flags().Float64Var(&cfl, "cfl", 0, "override CFL number")
	runCmd.Flags().BoolVar(&showProgress, "progress", false, "show a progress bar")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")
	runCmd.Flags().BoolVar(&plotField, "plot", true, "plot a slice of the final value function")
	runCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "plot height in rows")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario and accuracy presets",
		Run:   listPresets,
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list dynamics models",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range dynamics.List() {
				fmt.Println(name)
			}
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	convergeCmd := &cobra.Command{
		Use:   "converge [preset]",
		Short: "grid-refinement error study on an eikonal scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConverge,
	}
	convergeCmd.Flags().IntSliceVar(&convergeNodes, "nodes", []int{51, 101, 201}, "node counts per refinement level")
	convergeCmd.Flags().StringVar(&accuracy, "accuracy", "", "override accuracy preset")

	rootCmd.AddCommand(runCmd, presetsCmd, modelsCmd, runsCmd, convergeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenario(args []string) (*config.Config, string, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		return cfg, configFile, err
	}
	name := "advection-1d"
	if len(args) > 0 {
		name = args[0]
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, "", fmt.Errorf("unknown preset %q (known: %v)", name, config.ListPresets())
	}
	return cfg, name, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScenario(args)
	if err != nil {
		return err
	}
	if accuracy != "" {
		cfg.Accuracy = accuracy
	}
	if cfl != 0 {
		cfg.CFL = cfl
	}

	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	dyn, err := cfg.BuildDynamics()
	if err != nil {
		return err
	}
	set, err := cfg.BuildSettings()
	if err != nil {
		return err
	}
	v0, err := cfg.BuildInitialValues(g)
	if err != nil {
		return err
	}

	opt := solver.Options{}
	if showProgress {
		bar, err := progress.NewBar(cfg.Times[0], cfg.Times[len(cfg.Times)-1])
		if err != nil {
			return err
		}
		opt.Reporter = bar
	}

	fields, err := solver.Solve(set, dyn, g, cfg.Times, v0, opt)
	if err != nil {
		return err
	}

	printSummary(cmd, g, cfg.Times, fields)

	if plotField {
		plotSlice(cmd, g, fields[len(fields)-1], fmt.Sprintf("%s, t=%g", name, cfg.Times[len(cfg.Times)-1]))
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Dynamics, cfg.Accuracy, cfg.CFL, g, cfg.Times, fields)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", runID)
	}
	return nil
}

// printSummary tabulates basic statistics of each output field, including
// the fraction of nodes inside the zero sublevel set.
func printSummary(cmd *cobra.Command, g *grid.Grid, times []float64, fields []solver.Field) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "time\tmin\tmax\tmean\tset fraction")
	for k, f := range fields {
		min, max, sum, inside := math.Inf(1), math.Inf(-1), 0.0, 0
		for _, v := range f {
			min = math.Min(min, v)
			max = math.Max(max, v)
			sum += v
			if v <= 0 {
				inside++
			}
		}
		fmt.Fprintf(w, "%g\t%.4f\t%.4f\t%.4f\t%.3f\n",
			times[k], min, max, sum/float64(len(f)), float64(inside)/float64(len(f)))
	}
	w.Flush()
}

// plotSlice renders a 1D slice of the field along the first axis, through
// the middle of every other axis.
func plotSlice(cmd *cobra.Command, g *grid.Grid, f solver.Field, caption string) {
	shape := g.Shape()
	idx := make([]int, g.NumDims())
	for d := 1; d < g.NumDims(); d++ {
		idx[d] = shape[d] / 2
	}
	series := make([]float64, shape[0])
	for k := range series {
		idx[0] = k
		series[k] = f[g.FlatIndex(idx...)]
	}
	fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(caption)))
}

func listPresets(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "scenario\tdynamics\taccuracy\ttimes")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", name, cfg.Dynamics, cfg.Accuracy, cfg.Times)
	}
	fmt.Fprintln(w, "\naccuracy presets:\t")
	for _, a := range solver.Accuracies() {
		set, _ := solver.WithAccuracy(a)
		fmt.Fprintf(w, "%s\t%s + %s\t\t\n", a, set.Upwind.Name(), set.Integrator.Name())
	}
	w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tdynamics\taccuracy\tshape\ttimes")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%v\n", r.ID, r.Dynamics, r.Accuracy, r.Shape, r.Times)
	}
	return w.Flush()
}

// runConverge solves an eikonal tube scenario at several resolutions and
// reports the max-norm error against the analytic solution
// v(T, x) = |x - c| - r - s*|T| away from the center kink and the domain
// edges.
func runConverge(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"eikonal-1d"}
	}
	cfg, name, err := loadScenario(args)
	if err != nil {
		return err
	}
	if cfg.Dynamics != "eikonal" {
		return errors.New("converge: analytic solution only known for eikonal scenarios")
	}
	if accuracy != "" {
		cfg.Accuracy = accuracy
	}

	speed := cfg.Params["speed"]
	if speed == 0 {
		speed = 1
	}
	finalTime := cfg.Times[len(cfg.Times)-1]

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "scenario %s\t\t\n", name)
	fmt.Fprintln(w, "nodes\tmax error\tobserved order")
	prevErr := 0.0
	for level, nodes := range convergeNodes {
		for d := range cfg.Axes {
			cfg.Axes[d].Nodes = nodes
		}
		g, err := cfg.BuildGrid()
		if err != nil {
			return err
		}
		dyn, err := cfg.BuildDynamics()
		if err != nil {
			return err
		}
		set, err := cfg.BuildSettings()
		if err != nil {
			return err
		}
		v0, err := cfg.BuildInitialValues(g)
		if err != nil {
			return err
		}
		fields, err := solver.Solve(set, dyn, g, cfg.Times, v0, solver.Options{})
		if err != nil {
			return err
		}

		maxErr := eikonalMaxError(g, fields[len(fields)-1], cfg.Initial, speed, finalTime)
		if level == 0 {
			fmt.Fprintf(w, "%d\t%.3e\t-\n", nodes, maxErr)
		} else {
			fmt.Fprintf(w, "%d\t%.3e\t%.2f\n", nodes, maxErr, math.Log2(prevErr/maxErr))
		}
		prevErr = maxErr
	}
	return w.Flush()
}

func eikonalMaxError(g *grid.Grid, f solver.Field, ic config.InitialConfig, speed, finalTime float64) float64 {
	maxErr := 0.0
	for i := 0; i < g.NumNodes(); i++ {
		x := g.State(i)
		dist := 0.0
		skip := false
		for a, ax := range g.Axes() {
			d := x[a]
			if a < len(ic.Center) {
				d -= ic.Center[a]
			}
			dist += d * d
			// Stay away from domain edges where extrapolation dominates.
			if x[a] < ax.Min+0.3 || x[a] > ax.Max-0.3 {
				skip = true
			}
		}
		dist = math.Sqrt(dist)
		if skip || dist < 0.3 {
			continue
		}
		want := dist - ic.Radius - speed*math.Abs(finalTime)
		if e := math.Abs(f[i] - want); e > maxErr {
			maxErr = e
		}
	}
	return maxErr
}

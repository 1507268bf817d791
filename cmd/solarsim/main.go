package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/solarsim/internal/astro"
	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/sim"
	"github.com/san-kum/solarsim/internal/solar"
	"github.com/san-kum/solarsim/internal/stats"
	"github.com/san-kum/solarsim/internal/store"
	"github.com/san-kum/solarsim/internal/viz"
)

var (
	dataDir    string
	days       float64
	years      float64
	steps      int
	rtol       float64
	softening  float64
	integrator string
	dataset    string
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solarsim",
		Short: "solar system gravity simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".solarsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and save it",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the bodies in the dataset",
		RunE:  listBodies,
	}
	bodiesCmd.Flags().StringVar(&dataset, "dataset", "", "body dataset file (yaml)")

	plotCmd := &cobra.Command{
		Use:   "plot [body]",
		Short: "simulate and draw the orbit map, or one body's radius chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotOrbits,
	}
	addSimFlags(plotCmd)

	energyCmd := &cobra.Command{
		Use:   "energy",
		Short: "simulate and chart energy drift",
		RunE:  plotEnergy,
	}
	addSimFlags(energyCmd)

	keplerCmd := &cobra.Command{
		Use:   "kepler",
		Short: "verify Kepler's third law against the run",
		RunE:  keplerCheck,
	}
	addSimFlags(keplerCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "per-planet orbital statistics and correlations",
		RunE:  orbitalStats,
	}
	addSimFlags(statsCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "simulate and replay interactively",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	trajCmd := &cobra.Command{
		Use:   "state [body]",
		Short: "print a body's final state",
		Args:  cobra.ExactArgs(1),
		RunE:  printState,
	}
	addSimFlags(trajCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a saved run's metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "simulate and write trajectories as CSV to stdout",
		RunE:  exportCSV,
	}
	addSimFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "simulate and write trajectories as JSON to stdout",
		RunE:  exportJSON,
	}
	addSimFlags(exportJSONCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-10s %g days, %d samples, rtol %g\n",
					name, cfg.Span(), cfg.Steps, cfg.Rtol)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, bodiesCmd, plotCmd, energyCmd, keplerCmd,
		statsCmd, liveCmd, trajCmd, listCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&days, "days", config.DefaultSpanDays, "time span in days")
	cmd.Flags().Float64Var(&years, "years", 0, "time span in years (overrides --days)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of output samples")
	cmd.Flags().Float64Var(&rtol, "rtol", config.DefaultRtol, "relative tolerance")
	cmd.Flags().Float64Var(&softening, "softening", 0, "softening length in meters")
	cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	cmd.Flags().StringVar(&dataset, "dataset", "", "body dataset file (yaml)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file, and flags. Flags set on the
// command line win over the file, which wins over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("days") {
		cfg.SpanDays = days
		cfg.Years = 0
	}
	if cmd.Flags().Changed("years") {
		cfg.Years = years
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("rtol") {
		cfg.Rtol = rtol
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset = dataset
	}

	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*solar.Catalog, error) {
	if cfg.Dataset != "" {
		return solar.LoadFile(cfg.Dataset, astro.Default())
	}
	return solar.Default(astro.Default()), nil
}

// simulate resolves configuration, runs, and hands back everything the
// reporting commands need.
func simulate(cmd *cobra.Command) (*solar.Catalog, *sim.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}

	s, err := sim.New(cat, cfg.SimConfig())
	if err != nil {
		return nil, nil, err
	}

	if err := s.Simulate(context.Background(), cfg.Span(), cfg.Steps); err != nil {
		return nil, nil, err
	}

	res, err := s.Result()
	if err != nil {
		return nil, nil, err
	}
	return cat, res, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	dir := dataDir
	if cfg.ExportDir != "" {
		dir = cfg.ExportDir
	}
	st := store.New(dir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println("running simulation...")
	start := time.Now()

	_, res, err := simulate(cmd)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(res)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("span: %g days, samples: %d, accepted steps: %d\n",
		res.SpanDays, res.Samples, res.AcceptedSteps)
	fmt.Printf("energy drift: %.3e\n", res.EnergyDrift())

	return nil
}

func listBodies(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(&config.Config{Dataset: dataset})
	if err != nil {
		return err
	}
	consts := cat.Constants()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tMASS (kg)\tRADIUS (m)\tA (au)\tECC\tPERIOD (d)")

	for _, b := range cat.Bodies() {
		if b.Category == solar.CategoryStar {
			fmt.Fprintf(w, "%s\t%s\t%.3e\t%.3e\t\t\t\n", b.Name, b.Category, b.Mass, b.Radius)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.3e\t%.3e\t%.3f\t%.4f\t%.1f\n",
			b.Name, b.Category, b.Mass, b.Radius,
			b.SemiMajorAxis/consts.AU, b.Eccentricity, b.OrbitalPeriod)
	}

	return w.Flush()
}

func plotOrbits(cmd *cobra.Command, args []string) error {
	cat, res, err := simulate(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return plotRadius(cat, res, args[0])
	}

	fmt.Println(viz.OrbitMap(res, 70, 28, res.Samples))
	fmt.Println(viz.Legend(res))
	fmt.Printf("\n%g days, %d samples, energy drift %.3e\n",
		res.SpanDays, res.Samples, res.EnergyDrift())
	return nil
}

// plotRadius charts one body's heliocentric distance over the run.
func plotRadius(cat *solar.Catalog, res *sim.Result, name string) error {
	star, err := cat.Sun()
	if err != nil {
		return err
	}
	tr, ok := res.TrajectoryOf(name)
	if !ok {
		return fmt.Errorf("unknown body: %s", name)
	}
	sunTr, _ := res.TrajectoryOf(star.Name)

	au := cat.Constants().AU
	data := make([]float64, len(tr))
	for k := range tr {
		data[k] = tr[k].Pos.Sub(sunTr[k].Pos).Norm() / au
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s heliocentric distance (au) over %g days", name, res.SpanDays)),
	)
	fmt.Println(graph)
	return nil
}

func plotEnergy(cmd *cobra.Command, args []string) error {
	_, res, err := simulate(cmd)
	if err != nil {
		return err
	}

	fmt.Println(viz.EnergyChart(res, 80, 12))
	fmt.Printf("\ntotal drift: %.3e\n", res.EnergyDrift())
	return nil
}

func keplerCheck(cmd *cobra.Command, args []string) error {
	cat, res, err := simulate(cmd)
	if err != nil {
		return err
	}

	all, err := stats.Analyze(res, cat)
	if err != nil {
		return err
	}
	want := stats.KeplerExpected(cat)

	fmt.Printf("expected T^2/a^3 = %.6e s^2/m^3\n\n", want)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tPERIOD (d)\tMEAN R (au)\tT^2/A^3\tDEVIATION")

	au := cat.Constants().AU
	for _, st := range all {
		dev := (st.KeplerRatio - want) / want
		fmt.Fprintf(w, "%s\t%.1f\t%.3f\t%.6e\t%+.2f%%\n",
			st.Name, st.PeriodDays, st.MeanRadius/au, st.KeplerRatio, dev*100)
	}
	return w.Flush()
}

func orbitalStats(cmd *cobra.Command, args []string) error {
	cat, res, err := simulate(cmd)
	if err != nil {
		return err
	}

	all, err := stats.Analyze(res, cat)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tMEAN R (m)\tMEAN V (m/s)\tSPEC ENERGY\tSPEC ANG MOM\tPERIOD (d)")
	for _, st := range all {
		fmt.Fprintf(w, "%s\t%.4e\t%.1f\t%.4e\t%.4e\t%.1f\n",
			st.Name, st.MeanRadius, st.MeanSpeed,
			st.SpecificEnergy, st.SpecificAngularMomentum, st.PeriodDays)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	names, series, err := stats.RadiusSeries(res, cat)
	if err != nil {
		return err
	}
	m := stats.CorrelationMatrix(series)

	fmt.Println("\nheliocentric radius correlations:")
	cw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(cw, "\t")
	for _, n := range names {
		fmt.Fprintf(cw, "%s\t", n)
	}
	fmt.Fprintln(cw)
	for i, n := range names {
		fmt.Fprintf(cw, "%s\t", n)
		for j := range names {
			fmt.Fprintf(cw, "%+.3f\t", m[i][j])
		}
		fmt.Fprintln(cw)
	}
	return cw.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	_, res, err := simulate(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewPlayback(res))
	_, err = p.Run()
	return err
}

func printState(cmd *cobra.Command, args []string) error {
	cat, res, err := simulate(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	tr, ok := res.TrajectoryOf(name)
	if !ok {
		return fmt.Errorf("unknown body: %s (have %d bodies, try 'bodies')", name, cat.Len())
	}

	last := tr[len(tr)-1]
	fmt.Printf("%s at day %.2f:\n", name, last.Time)
	fmt.Printf("  position (m):   %+.6e  %+.6e  %+.6e\n", last.Pos.X, last.Pos.Y, last.Pos.Z)
	fmt.Printf("  velocity (m/s): %+.6e  %+.6e  %+.6e\n", last.Vel.X, last.Vel.Y, last.Vel.Z)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSPAN (d)\tSAMPLES\tINTEG\tDRIFT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\t%s\t%.2e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.SpanDays,
			run.Samples,
			run.Integrator,
			run.EnergyDrift,
		)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, res, err := simulate(cmd)
	if err != nil {
		return err
	}
	return store.WriteCSV(os.Stdout, res)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	_, res, err := simulate(cmd)
	if err != nil {
		return err
	}
	return store.WriteJSON(os.Stdout, res)
}

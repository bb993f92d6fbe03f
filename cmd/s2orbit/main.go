package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/avasko/s2orbit/internal/analysis"
	"github.com/avasko/s2orbit/internal/config"
	"github.com/avasko/s2orbit/internal/orbit"
	"github.com/avasko/s2orbit/internal/sim"
	"github.com/avasko/s2orbit/internal/storage"
	"github.com/avasko/s2orbit/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	// orbit overrides
	semiMajorAU  float64
	eccentricity float64
	periodYears  float64
	massSolar    float64
	// headless run parameters
	years float64
	step  float64
	// view parameters
	timeScale float64
	zoom      float64
	theme     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "s2orbit",
		Short: "terminal visualizer for the S2 orbit around Sagittarius A*",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".s2orbit", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	addOrbitFlags := func(cmd *cobra.Command) {
		cmd.Flags().Float64Var(&semiMajorAU, "semi-major", config.DefaultSemiMajorAU, "semi-major axis (AU)")
		cmd.Flags().Float64Var(&eccentricity, "eccentricity", config.DefaultEccentricity, "orbital eccentricity")
		cmd.Flags().Float64Var(&periodYears, "period", config.DefaultPeriodYears, "orbital period (years)")
		cmd.Flags().Float64Var(&massSolar, "mass", config.DefaultMassSolar, "central mass (solar masses)")
	}
	addOrbitFlags(rootCmd)
	rootCmd.Flags().Float64Var(&timeScale, "time-scale", config.DefaultTimeScale, "simulated seconds per frame")
	rootCmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "initial zoom")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless propagation",
		RunE:  runHeadless,
	}
	addOrbitFlags(runCmd)
	runCmd.Flags().Float64Var(&years, "years", config.DefaultPeriodYears, "simulated duration (years)")
	runCmd.Flags().Float64Var(&step, "step", 86400, "sampling step (seconds)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "recover the orbital period from sampled data",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig layers the effective configuration: defaults, then preset,
// then config file, then explicit CLI flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("semi-major") {
		cfg.Star.SemiMajorAU = semiMajorAU
	}
	if cmd.Flags().Changed("eccentricity") {
		cfg.Star.Eccentricity = eccentricity
	}
	if cmd.Flags().Changed("period") {
		cfg.Star.PeriodYears = periodYears
	}
	if cmd.Flags().Changed("mass") {
		cfg.BlackHole.MassSolar = massSolar
	}
	if cmd.Flags().Changed("time-scale") {
		cfg.Sim.TimeScale = timeScale
	}
	if cmd.Flags().Changed("zoom") {
		cfg.View.Zoom = zoom
	}
	if cmd.Flags().Changed("theme") {
		cfg.Sim.Theme = theme
	}

	return cfg, nil
}

func newOrbiter(cfg *config.Config) (*orbit.Orbiter, error) {
	consts := orbit.Physical()
	el, err := cfg.Elements(consts)
	if err != nil {
		return nil, err
	}
	return orbit.NewOrbiter(el, cfg.CentralBody(consts)), nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	o, err := newOrbiter(cfg)
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Sim.Theme)
	ctrl := sim.NewController(o, cfg.Sim.TimeScale, cfg.View.Zoom)

	p := tea.NewProgram(viz.NewModel(ctrl))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	o, err := newOrbiter(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	duration := years * 365.25 * 86400

	fmt.Printf("propagating %s for %.2f years...\n", cfg.Star.Name, years)
	start := time.Now()
	result, err := sim.Propagate(o, duration, step)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Star.Name, o.Elements(), o.Central(), step, duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps())

	minR, maxR := result.Radii[0], result.Radii[0]
	minV, maxV := result.Speeds[0], result.Speeds[0]
	for i := range result.Radii {
		if result.Radii[i] < minR {
			minR = result.Radii[i]
		}
		if result.Radii[i] > maxR {
			maxR = result.Radii[i]
		}
		if result.Speeds[i] < minV {
			minV = result.Speeds[i]
		}
		if result.Speeds[i] > maxV {
			maxV = result.Speeds[i]
		}
	}
	au := o.Central().Constants().AU
	fmt.Printf("\nradius: %.2f - %.2f AU\n", minR/au, maxR/au)
	fmt.Printf("speed: %.0f - %.0f km/s\n", minV/1000, maxV/1000)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTAR\tTIME\tA(AU)\tECC\tPERIOD(YR)\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.3f\t%.2f\t%d\n",
			run.ID,
			run.Star,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.SemiMajorAU,
			run.Eccentricity,
			run.PeriodYears,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if result.Steps() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("star: %s\n", meta.Star)
	fmt.Printf("samples: %d\n\n", result.Steps())

	au := orbit.Physical().AU
	radii := make([]float64, result.Steps())
	speeds := make([]float64, result.Steps())
	for i := range result.Radii {
		radii[i] = result.Radii[i] / au
		speeds[i] = result.Speeds[i] / 1000
	}

	fmt.Println(asciigraph.Plot(radii,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("distance from Sgr A* (AU)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(speeds,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("orbital speed (km/s)"),
	))

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if result.Steps() < 4 {
		return fmt.Errorf("not enough data")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("star: %s\n\n", meta.Star)

	period := analysis.EstimatePeriod(result.Radii, meta.Step)
	if period == 0 {
		fmt.Println("no dominant period found")
		return nil
	}

	years := period / (365.25 * 86400)
	fmt.Printf("recovered period: %.2f years\n", years)
	fmt.Printf("configured period: %.2f years\n", meta.PeriodYears)

	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, result)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if result.Steps() == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, result)
}

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/diffsim/internal/analysis"
	"github.com/san-kum/diffsim/internal/config"
	"github.com/san-kum/diffsim/internal/diffusion"
	"github.com/san-kum/diffsim/internal/euler"
	"github.com/san-kum/diffsim/internal/grid"
	"github.com/san-kum/diffsim/internal/metrics"
	"github.com/san-kum/diffsim/internal/storage"
	"github.com/san-kum/diffsim/internal/viz"
)

var (
	dataDir   string
	length    int
	dt        float64
	finalTime float64
	scheme    string
	h         float64
	frameRate int
	// Config file
	configFile string
	// Preset name
	preset string
)

// main registers commands and flags for the diffsim CLI and executes the
// root command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "diffsim",
		Short: "1-D periodic diffusion simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".diffsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a diffusion simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&length, "length", config.DefaultLength, "grid length")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&finalTime, "time", config.DefaultFinalTime, "target simulation time")
	runCmd.Flags().StringVar(&scheme, "scheme", config.DefaultScheme, "update scheme (inplace or buffered)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "profile moment analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run profiles to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run profiles to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the stepper",
		RunE:  benchStepper,
	}
	benchCmd.Flags().IntVar(&length, "length", config.DefaultLength, "grid length")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare in-place and buffered update schemes",
		RunE:  compareSchemes,
	}
	compareCmd.Flags().IntVar(&length, "length", config.DefaultLength, "grid length")
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	compareCmd.Flags().Float64Var(&finalTime, "time", config.DefaultFinalTime, "target simulation time")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run diffusion with live visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&length, "length", config.DefaultLength, "grid length")
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	eulerCmd := &cobra.Command{
		Use:   "euler",
		Short: "integrate cos(x) with explicit Euler and plot against sin(x)",
		RunE:  runEuler,
	}
	eulerCmd.Flags().Float64Var(&h, "h", config.DefaultH, "sample spacing")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCmd, exportCSVCmd, exportJSONCmd, benchCmd, compareCmd, liveCmd, eulerCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	// Load preset if specified
	if preset != "" {
		cfg := config.GetPreset("diffusion", preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("diffusion"))
		}
		length = cfg.Length
		dt = cfg.Dt
		finalTime = cfg.FinalTime
		if cfg.Scheme != "" {
			scheme = cfg.Scheme
		}
	}

	// Load config file if specified; CLI flags override config values.
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if !cmd.Flags().Changed("length") {
			length = cfg.Length
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("time") {
			finalTime = cfg.FinalTime
		}
		if !cmd.Flags().Changed("scheme") {
			scheme = cfg.Scheme
		}
	}

	if scheme != "inplace" && scheme != "buffered" {
		return fmt.Errorf("unknown scheme: %s", scheme)
	}
	if dt > diffusion.MaxStableStep {
		fmt.Printf("warning: dt %.4f exceeds the stable limit %.2f; expect divergence\n", dt, diffusion.MaxStableStep)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	field, err := diffusion.Init(length)
	if err != nil {
		return err
	}
	initial := field.Clone()

	fmt.Printf("running diffusion (l=%d, dt=%.4f, time=%.2f, scheme=%s)...\n", length, dt, finalTime, scheme)
	start := time.Now()

	if scheme == "buffered" {
		_, err = diffusion.IntegrateBuffered(field, dt, finalTime)
	} else {
		_, err = diffusion.Integrate(field, dt, finalTime)
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runMetrics := metrics.Entries(initial, field)
	runID, err := st.Save("diffusion", scheme, dt, finalTime, initial, field, runMetrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for name, val := range runMetrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

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
	fmt.Fprintln(w, "ID\tTIME\tLENGTH\tDT\tFINAL\tSCHEME")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.2f\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Length,
			run.Dt,
			run.FinalTime,
			run.Scheme,
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

	initial, final, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	if len(final) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scheme: %s, dt=%.4f, final_time=%.2f\n\n", meta.Scheme, meta.Dt, meta.FinalTime)

	fmt.Println(viz.ComparePlot(initial, final, "initial (blue) vs final"))
	fmt.Println()

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	initial, final, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	if len(final) == 0 {
		return fmt.Errorf("no data")
	}

	before := analysis.Compute(initial)
	after := analysis.Compute(final)

	fmt.Printf("moment analysis: %s\n\n", meta.ID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tINITIAL\tFINAL")
	fmt.Fprintf(w, "mass\t%.6f\t%.6f\n", before.Mass, after.Mass)
	fmt.Fprintf(w, "centroid\t%.4f\t%.4f\n", before.Centroid, after.Centroid)
	fmt.Fprintf(w, "variance\t%.4f\t%.4f\n", before.Variance, after.Variance)
	if err := w.Flush(); err != nil {
		return err
	}

	growth := analysis.Spreading(before, after)
	fmt.Printf("\nvariance growth: %.4f (2t = %.4f for exact diffusion)\n", growth, 2*meta.FinalTime)
	fmt.Printf("mass drift: %.2e relative\n", metrics.MassDrift(initial, final))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	initial, final, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	if len(final) == 0 {
		return fmt.Errorf("no data to export")
	}

	fmt.Println("index,initial,final")
	for i := range final {
		fmt.Printf("%d,%.6f,%.6f\n", i, initial[i], final[i])
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	initial, final, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, initial, final)
}

func benchStepper(cmd *cobra.Command, args []string) error {
	finalTimes := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.01, 0.1, 0.5}

	fmt.Printf("benchmarking diffusion (l=%d)\n\n", length)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FINAL\tDT\tSWEEPS\tTIME\tSWEEPS/SEC")

	for _, ft := range finalTimes {
		for _, step := range dts {
			field, err := diffusion.Init(length)
			if err != nil {
				return err
			}

			start := time.Now()
			if _, err := diffusion.Integrate(field, step, ft); err != nil {
				return err
			}
			elapsed := time.Since(start)

			// Count sweeps the way the integration clock does; float
			// accumulation can add one near the boundary.
			sweeps := 0
			for t := 0.0; t < ft; t += step {
				sweeps++
			}
			sweepsPerSec := float64(sweeps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1f\t%.4f\t%d\t%v\t%.0f\n",
				ft, step, sweeps, elapsed, sweepsPerSec)
		}
	}

	return w.Flush()
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	inplace, err := diffusion.Init(length)
	if err != nil {
		return err
	}
	buffered := inplace.Clone()
	initial := inplace.Clone()

	if _, err := diffusion.Integrate(inplace, dt, finalTime); err != nil {
		return err
	}
	if _, err := diffusion.IntegrateBuffered(buffered, dt, finalTime); err != nil {
		return err
	}

	maxDiff := 0.0
	for i := range inplace {
		if d := math.Abs(inplace[i] - buffered[i]); d > maxDiff {
			maxDiff = d
		}
	}

	fmt.Printf("comparing schemes (l=%d, dt=%.4f, time=%.2f)\n\n", length, dt, finalTime)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tFINAL PEAK\tMASS DRIFT")
	_, peakA := inplace.Peak()
	_, peakB := buffered.Peak()
	fmt.Fprintf(w, "inplace\t%.6f\t%.2e\n", peakA, metrics.MassDrift(initial, inplace))
	fmt.Fprintf(w, "buffered\t%.6f\t%.2e\n", peakB, metrics.MassDrift(initial, buffered))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nmax pointwise divergence: %.6e\n", maxDiff)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	field, err := diffusion.Init(length)
	if err != nil {
		return err
	}

	m := viz.NewModel(field, dt, frameRate)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runEuler(cmd *cobra.Command, args []string) error {
	result, err := euler.Integrate(h)
	if err != nil {
		return err
	}

	fmt.Printf("explicit Euler integration of cos(x), h=%.4f, %d samples\n\n", h, len(result.F))

	fmt.Println(viz.ComparePlot(grid.Field(result.Ref), grid.Field(result.F), "sin(x) reference (blue) vs Euler estimate"))
	fmt.Println()

	fmt.Println("phase space (f vs g):")
	fmt.Println(viz.Scatter(result.F, result.G, 70, 20))

	fmt.Printf("max error vs sin(x): %.6f\n", result.MaxError())
	return nil
}

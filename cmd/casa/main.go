package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/imclab/casa/internal/config"
	"github.com/imclab/casa/internal/export"
	"github.com/imclab/casa/internal/metrics"
	"github.com/imclab/casa/internal/scene"
	"github.com/imclab/casa/internal/storage"
	"github.com/imclab/casa/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	steps      int
	fps        int
	cellSize   float64
	seriesFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "casa",
		Short: "interleaved cellular-automaton tile-shuffle art",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the live view of the classic scene.
			if err := runLive(cmd, args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".casa", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset scene")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().IntVar(&steps, "steps", config.DefaultSteps, "steps to run (headless)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate (live)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scene headless and record it",
		RunE:  runScene,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a scene with live terminal visualization",
		RunE:  runLive,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Printf("policies: %v\n", scene.Policies())
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default scene config to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return config.Save(args[0], cfg)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [path.svg]",
		Short: "run a scene headless and render the final frame as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotScene,
	}
	snapshotCmd.Flags().Float64Var(&cellSize, "cell", 6, "cell edge in SVG units")
	snapshotCmd.Flags().StringVar(&seriesFile, "series", "", "also write the changed-cells series to this SVG file")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, presetsCmd, initCmd,
		exportCSVCmd, exportJSONCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file, and flags, in that order of
// increasing precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	scn, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}
	scn.AddMetric(metrics.NewActivity())
	scn.AddMetric(metrics.NewDensity())
	scn.AddMetric(metrics.NewStagnation(cfg.Stagnation.Threshold))

	fmt.Printf("running scene (%d automatons, %d steps, seed %d)...\n",
		len(cfg.Automatons), cfg.Steps, cfg.Seed)
	start := time.Now()

	samples := make([]metrics.Sample, 0, cfg.Steps)
	for i := 0; i < cfg.Steps; i++ {
		if err := scn.Step(); err != nil {
			return err
		}
		samples = append(samples, scn.Sample())
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Seed, scn.PolicyNames(), scn.Resets(), scn.MetricValues(), samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("resets: %d\n", scn.Resets())
	fmt.Println("\nmetrics:")
	for name, val := range scn.MetricValues() {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	scn, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(scn, cfg.FPS)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
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
	fmt.Fprintln(w, "ID\tTIME\tSTEPS\tRESETS\tPOLICIES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Resets,
			run.Policies,
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
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("policies: %v\n", meta.Policies)
	fmt.Printf("samples: %d\n\n", len(samples))

	changed := make([]float64, len(samples))
	live := make([]float64, len(samples))
	for i, sm := range samples {
		changed[i] = float64(sm.Changed)
		live[i] = float64(sm.Live)
	}

	fmt.Println(asciigraph.Plot(changed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("changed cells per step")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(live,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live cells per step")))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "changed", "live", "cells"}); err != nil {
		return err
	}
	for _, sm := range samples {
		row := []string{
			strconv.Itoa(sm.Step),
			strconv.Itoa(sm.Changed),
			strconv.Itoa(sm.Live),
			strconv.Itoa(sm.Cells),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func snapshotScene(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	scn, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}

	series := make([]float64, 0, cfg.Steps)
	for i := 0; i < cfg.Steps; i++ {
		if err := scn.Step(); err != nil {
			return err
		}
		series = append(series, float64(scn.Changed()))
	}

	if err := os.WriteFile(args[0], []byte(export.SceneSVG(scn, cellSize)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (step %d, seed %d)\n", args[0], scn.Steps(), cfg.Seed)

	if seriesFile != "" {
		svg := export.SeriesSVG(series, 800, 200, "#00ff87")
		if svg == "" {
			return fmt.Errorf("not enough steps to plot a series")
		}
		if err := os.WriteFile(seriesFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", seriesFile)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, samples)
}

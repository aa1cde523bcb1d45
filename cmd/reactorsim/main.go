package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/san-kum/reactorsim/internal/config"
	"github.com/san-kum/reactorsim/internal/recordstore"
	"github.com/san-kum/reactorsim/internal/telemetry"
)

var (
	dataDir      string
	storeBackend string
	logLevel     string
	metricsFile  string

	configFile string
	preset     string
	recordNum  int
	points     int
	format     string
	outFile    string
	useTUI     bool
	workers    int
	vary       []string
	saveScen   string
)

// app holds what PersistentPreRunE sets up for a single invocation.
var app struct {
	settings config.Settings
	metrics  *telemetry.Metrics
	closeLog func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// execute runs the command tree once and always releases the logger and
// flushes metrics, even when the command fails.
func execute(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(ctx)
	if ferr := finish(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "reactorsim",
		Short:             "three-reactor cstr concentration simulator",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runInteractive,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default $REACTORSIM_DATA or .reactorsim)")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "record store backend: binary or sqlite")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this file on exit")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "collect inputs with the full-screen form")
	rootCmd.Flags().IntVar(&points, "points", 0, "number of time samples")

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "recall or enter inputs, simulate and chart",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}
	interactiveCmd.Flags().BoolVar(&useTUI, "tui", false, "collect inputs with the full-screen form")
	interactiveCmd.Flags().IntVar(&points, "points", 0, "number of time samples")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one parameter set",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addSourceFlags(runCmd)
	addParamFlags(runCmd)
	runCmd.Flags().IntVar(&points, "points", 0, "number of time samples")
	runCmd.Flags().StringVar(&format, "format", "chart", "output format: chart, braille, csv, json, svg")
	runCmd.Flags().StringVarP(&outFile, "out", "o", "", "write output to file")
	runCmd.Flags().StringVar(&saveScen, "save-scenario", "", "write the resolved inputs to a scenario file (yaml)")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "check inputs against the flow balance equations",
		Args:  cobra.NoArgs,
		RunE:  validateInputs,
	}
	addSourceFlags(validateCmd)
	addParamFlags(validateCmd)

	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "manage saved input records",
	}
	recordsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list saved records",
			Args:  cobra.NoArgs,
			RunE:  listRecords,
		},
		&cobra.Command{
			Use:   "show [n]",
			Short: "show record n (1-based)",
			Args:  cobra.ExactArgs(1),
			RunE:  showRecord,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "delete every saved record",
			Args:  cobra.NoArgs,
			RunE:  clearRecords,
		},
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "validate and save a parameter set",
		Args:  cobra.NoArgs,
		RunE:  addRecord,
	}
	addSourceFlags(addCmd)
	addParamFlags(addCmd)
	recordsCmd.AddCommand(addCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml...]",
		Short: "run scenario files in parallel (all presets when none given)",
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&points, "points", 0, "number of time samples")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent simulations")
	batchCmd.Flags().StringArrayVar(&vary, "vary", nil, "expand each scenario over field=v1,v2,... (repeatable)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(interactiveCmd, runCmd, validateCmd, recordsCmd, batchCmd, presetsCmd)
	return rootCmd
}

// setup merges environment settings under the command-line flags and
// starts logging and metrics.
func setup(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if dataDir != "" {
		s.DataDir = dataDir
	}
	if storeBackend != "" {
		s.Store = storeBackend
	}
	if logLevel != "" {
		s.LogLevel = logLevel
	}
	if points > 0 {
		s.Points = points
	}
	if workers > 0 {
		s.Workers = workers
	}
	app.settings = s

	closeLog, err := telemetry.SetupLogger(telemetry.LogConfig{Dir: s.DataDir, Level: s.LogLevel})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	app.closeLog = closeLog
	app.metrics = telemetry.NewMetrics()

	telemetry.Logger().Debug("command.start", "command", cmd.CommandPath(), "data", s.DataDir, "store", s.Store)
	return nil
}

func finish() error {
	var err error
	if app.metrics != nil && metricsFile != "" {
		if werr := app.metrics.WriteTextfile(metricsFile); werr != nil {
			err = fmt.Errorf("write metrics: %w", werr)
		}
	}
	if app.closeLog != nil {
		if cerr := app.closeLog(); cerr != nil && err == nil {
			err = cerr
		}
	}
	app.metrics = nil
	app.closeLog = nil
	return err
}

func openStore() (recordstore.Store, error) {
	if err := os.MkdirAll(app.settings.DataDir, 0o755); err != nil {
		return nil, err
	}
	return recordstore.Open(app.settings.Store, app.settings.DataDir)
}

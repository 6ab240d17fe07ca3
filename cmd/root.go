package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/percolation-sim/sim/trace"
)

var (
	// CLI flags for the statistics run
	gridSize     int    // Grid dimension n
	trials       int    // Number of independent trials
	seed         int64  // Master seed for per-trial RNG streams
	workers      int    // Concurrent trials (0 = GOMAXPROCS)
	configPath   string // Optional YAML run preset
	outputFormat string // Report format: text or json
	traceTrials  bool   // Record one trace entry per trial
	logLevel     string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "percolation-sim",
	Short: "Monte Carlo estimator for the site percolation threshold",
}

// runCmd estimates the percolation threshold using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run [n] [trials]",
	Short: "Run independent percolation trials and report the threshold estimate",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if configPath != "" {
			rc, err := LoadRunConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load run config: %v", err)
			}
			applyRunConfig(cmd, rc)
		}

		// Positional arguments follow the classic "n trials" client.
		if len(args) > 0 {
			gridSize = mustParseInt("n", args[0])
		}
		if len(args) > 1 {
			trials = mustParseInt("trials", args[1])
		}

		opts := runOptions{
			N:       gridSize,
			Trials:  trials,
			Seed:    seed,
			Workers: workers,
			Output:  outputFormat,
			Trace:   traceTrials,
		}
		if err := executeRun(context.Background(), opts, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

func mustParseInt(name, raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Fatalf("Invalid %s %q: %v", name, raw, err)
	}
	return v
}

// traceLevel maps the --trace switch onto a trace level.
func traceLevel(enabled bool) trace.TraceLevel {
	if enabled {
		return trace.TraceLevelTrials
	}
	return trace.TraceLevelNone
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&gridSize, "n", 200, "Grid dimension (n-by-n sites)")
	runCmd.Flags().IntVar(&trials, "trials", 100, "Number of independent trials")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for per-trial random site selection")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Trials run concurrently (0 = GOMAXPROCS)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run preset; explicit flags override it")
	runCmd.Flags().StringVar(&outputFormat, "output", "text", "Report format (text, json)")
	runCmd.Flags().BoolVar(&traceTrials, "trace", false, "Include per-trial records and their summary in the report")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(gridCmd)
}

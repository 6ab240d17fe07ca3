package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/percolation-sim/sim"
	"github.com/inference-sim/percolation-sim/sim/trace"
)

// runOptions carries the resolved settings of one `run` invocation.
type runOptions struct {
	N       int
	Trials  int
	Seed    int64
	Workers int
	Output  string
	Trace   bool
}

var validOutputFormats = map[string]bool{
	"text": true, "json": true,
}

// executeRun estimates the threshold and writes the report to out.
func executeRun(ctx context.Context, opts runOptions, out io.Writer) error {
	if !validOutputFormats[opts.Output] {
		return fmt.Errorf("unknown output format %q; valid: text, json", opts.Output)
	}

	logrus.Infof("Starting with n=%d and trials=%d (seed=%d, workers=%d)", opts.N, opts.Trials, opts.Seed, opts.Workers)
	startTime := time.Now()

	s, err := sim.RunStats(ctx, sim.StatsConfig{
		N:          opts.N,
		Trials:     opts.Trials,
		Seed:       opts.Seed,
		Workers:    opts.Workers,
		TraceLevel: traceLevel(opts.Trace),
	})
	if err != nil {
		return err
	}
	logrus.Infof("Ran %d trials in %v", s.Trials(), time.Since(startTime))

	if opts.Output == "json" {
		return printJSONReport(out, s.Report())
	}
	printTextReport(out, s)
	return nil
}

// printTextReport writes the threshold estimate in the classic client layout.
func printTextReport(out io.Writer, s *sim.Stats) {
	fmt.Fprintf(out, "Starting with %d and %d...\n", s.Size(), s.Trials())
	fmt.Fprintf(out, "mean                    = %v\n", s.Mean())
	fmt.Fprintf(out, "stddev                  = %v\n", s.Stddev())
	fmt.Fprintf(out, "95%% confidence interval = [%v, %v]\n", s.ConfidenceLo(), s.ConfidenceHi())

	if s.Trace != nil {
		summary := trace.Summarize(s.Trace)
		fmt.Fprintln(out, "=== Trial Summary ===")
		fmt.Fprintf(out, "Trials               : %d\n", summary.TotalTrials)
		fmt.Fprintf(out, "Threshold min/max    : %.4f / %.4f\n", summary.MinThreshold, summary.MaxThreshold)
		fmt.Fprintf(out, "Threshold p5/p50/p95 : %.4f / %.4f / %.4f\n",
			summary.P5Threshold, summary.MedianThreshold, summary.P95Threshold)
		fmt.Fprintf(out, "Open sites min/max   : %d / %d\n", summary.MinOpenSites, summary.MaxOpenSites)
	}
}

// printJSONReport writes r as indented JSON.
func printJSONReport(out io.Writer, r sim.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

package sim

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/percolation-sim/sim/trace"
)

// confidence95 is the two-sided 95% quantile of the standard normal distribution.
const confidence95 = 1.96

// StatsConfig groups the parameters of a Monte Carlo threshold estimate.
type StatsConfig struct {
	N          int              // grid dimension (must be > 0)
	Trials     int              // number of independent trials (must be > 0)
	Seed       int64            // master seed; per-trial streams derive from it
	Workers    int              // concurrent trials; 0 = runtime.GOMAXPROCS(0)
	TraceLevel trace.TraceLevel // "trials" keeps one record per trial
}

// Validate checks that the config describes a runnable experiment.
func (c StatsConfig) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("grid size must be positive, got %d: %w", c.N, ErrInvalidArgument)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials = %d: %w", c.Trials, ErrEmptySample)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d: %w", c.Workers, ErrInvalidArgument)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q; valid: none, trials: %w", c.TraceLevel, ErrInvalidArgument)
	}
	return nil
}

// Stats holds the outcome of repeated percolation trials on n-by-n grids.
// Each sample is the fraction of sites open when the grid first percolated.
type Stats struct {
	n          int
	key        SimulationKey
	results    []int     // open sites per trial
	thresholds []float64 // results[i] / n²
	mean       float64
	stddev     float64

	// Trace is nil unless the run was configured with TraceLevelTrials.
	Trace *trace.StatsTrace
}

// NewStats runs trials independent simulations on n-by-n grids using a
// time-derived seed and a single worker.
func NewStats(n, trials int) (*Stats, error) {
	return RunStats(context.Background(), StatsConfig{
		N:       n,
		Trials:  trials,
		Seed:    time.Now().UnixNano(),
		Workers: 1,
	})
}

// RunStats runs cfg.Trials independent simulations, up to cfg.Workers at a
// time. Results depend only on cfg.N, cfg.Trials and cfg.Seed.
func RunStats(ctx context.Context, cfg StatsConfig) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rngs := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	results := make([]int, cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Trials; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			opened, err := RunTrial(gctx, cfg.N, rngs.ForTrial(i))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = opened
			logrus.Debugf("trial %d percolated after %d open sites", i, opened)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := newStatsFromResults(cfg.N, rngs.Key(), results)
	if cfg.TraceLevel.Enabled() {
		s.Trace = trace.NewStatsTrace(cfg.TraceLevel)
		for i, opened := range results {
			s.Trace.RecordTrial(trace.TrialRecord{
				Index:     i,
				Seed:      rngs.TrialSeed(i),
				OpenSites: opened,
				Threshold: s.thresholds[i],
			})
		}
	}
	return s, nil
}

// RunTrial opens uniformly random blocked sites of a fresh n-by-n grid until
// it percolates and returns the number of sites opened.
func RunTrial(ctx context.Context, n int, rng Intner) (int, error) {
	grid, err := NewGrid(n)
	if err != nil {
		return 0, err
	}
	opened := 0
	for !grid.Percolates() {
		row := rng.Intn(n) + 1
		col := rng.Intn(n) + 1
		isOpen, err := grid.IsOpen(row, col)
		if err != nil {
			return 0, err
		}
		if isOpen {
			continue
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := grid.Open(row, col); err != nil {
			return 0, err
		}
		opened++
	}
	return opened, nil
}

// Intner is the part of *rand.Rand that RunTrial draws from.
type Intner interface {
	Intn(n int) int
}

func newStatsFromResults(n int, key SimulationKey, results []int) *Stats {
	sites := float64(n * n)
	thresholds := make([]float64, len(results))
	for i, opened := range results {
		thresholds[i] = float64(opened) / sites
	}

	s := &Stats{
		n:          n,
		key:        key,
		results:    results,
		thresholds: thresholds,
	}
	if len(thresholds) == 1 {
		// Sample variance divides by trials-1.
		s.mean = thresholds[0]
		s.stddev = math.NaN()
		logrus.Warnf("single trial: stddev and confidence interval are undefined (NaN)")
	} else {
		s.mean, s.stddev = stat.MeanStdDev(thresholds, nil)
	}
	return s
}

// Size returns the grid dimension n.
func (s *Stats) Size() int {
	return s.n
}

// Trials returns the number of trials run.
func (s *Stats) Trials() int {
	return len(s.results)
}

// Key returns the SimulationKey the run was seeded with.
func (s *Stats) Key() SimulationKey {
	return s.key
}

// Results returns a copy of the open-site count of every trial, in trial order.
func (s *Stats) Results() []int {
	out := make([]int, len(s.results))
	copy(out, s.results)
	return out
}

// Thresholds returns a copy of the per-trial open-site fractions.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)
	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	return s.mean
}

// Stddev returns the sample standard deviation of the percolation threshold.
// It is NaN for a single trial.
func (s *Stats) Stddev() float64 {
	return s.stddev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
// It is NaN for a single trial.
func (s *Stats) ConfidenceLo() float64 {
	return s.mean - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
// It is NaN for a single trial.
func (s *Stats) ConfidenceHi() float64 {
	return s.mean + s.halfWidth()
}

func (s *Stats) halfWidth() float64 {
	return confidence95 * s.stddev / math.Sqrt(float64(len(s.results)))
}

package trace

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TraceSummary aggregates the threshold samples of a StatsTrace.
type TraceSummary struct {
	TotalTrials     int     `json:"total_trials"`
	MinThreshold    float64 `json:"min_threshold"`
	MaxThreshold    float64 `json:"max_threshold"`
	MedianThreshold float64 `json:"median_threshold"`
	P5Threshold     float64 `json:"p5_threshold"`
	P95Threshold    float64 `json:"p95_threshold"`
	MinOpenSites    int     `json:"min_open_sites"`
	MaxOpenSites    int     `json:"max_open_sites"`
}

// Summarize computes aggregate statistics from a StatsTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *StatsTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil || len(st.Trials) == 0 {
		return summary
	}

	summary.TotalTrials = len(st.Trials)
	thresholds := make([]float64, len(st.Trials))
	summary.MinOpenSites = st.Trials[0].OpenSites
	for i, r := range st.Trials {
		thresholds[i] = r.Threshold
		if r.OpenSites < summary.MinOpenSites {
			summary.MinOpenSites = r.OpenSites
		}
		if r.OpenSites > summary.MaxOpenSites {
			summary.MaxOpenSites = r.OpenSites
		}
	}

	// stat.Quantile requires ascending input.
	sort.Float64s(thresholds)
	summary.MinThreshold = thresholds[0]
	summary.MaxThreshold = thresholds[len(thresholds)-1]
	summary.MedianThreshold = stat.Quantile(0.5, stat.Empirical, thresholds, nil)
	summary.P5Threshold = stat.Quantile(0.05, stat.Empirical, thresholds, nil)
	summary.P95Threshold = stat.Quantile(0.95, stat.Empirical, thresholds, nil)

	return summary
}

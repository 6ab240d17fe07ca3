package sim

import (
	"math"

	"github.com/inference-sim/percolation-sim/sim/trace"
)

// Report is a JSON-serializable snapshot of a statistics run.
// Undefined values (NaN for a single trial) are omitted.
type Report struct {
	N            int                 `json:"n"`
	Trials       int                 `json:"trials"`
	Seed         int64               `json:"seed"`
	Mean         float64             `json:"mean"`
	Stddev       *float64            `json:"stddev,omitempty"`
	ConfidenceLo *float64            `json:"confidence_lo,omitempty"`
	ConfidenceHi *float64            `json:"confidence_hi,omitempty"`
	Summary      *trace.TraceSummary `json:"summary,omitempty"`
	TrialRecords []trace.TrialRecord `json:"trial_records,omitempty"`
}

// Report builds a Report from s. Trace data is included when the run was traced.
func (s *Stats) Report() Report {
	r := Report{
		N:            s.n,
		Trials:       len(s.results),
		Seed:         int64(s.key),
		Mean:         s.mean,
		Stddev:       finite(s.Stddev()),
		ConfidenceLo: finite(s.ConfidenceLo()),
		ConfidenceHi: finite(s.ConfidenceHi()),
	}
	if s.Trace != nil {
		r.Summary = trace.Summarize(s.Trace)
		r.TrialRecords = s.Trace.Trials
	}
	return r
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

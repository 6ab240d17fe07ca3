package trace

// TraceLevel controls the verbosity of trial tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTrials captures one record per trial.
	TraceLevelTrials TraceLevel = "trials"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelTrials: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Enabled reports whether level records anything.
func (l TraceLevel) Enabled() bool {
	return l == TraceLevelTrials
}

// StatsTrace collects trial records during a statistics run.
type StatsTrace struct {
	Level  TraceLevel
	Trials []TrialRecord
}

// NewStatsTrace creates a StatsTrace ready for recording.
func NewStatsTrace(level TraceLevel) *StatsTrace {
	return &StatsTrace{
		Level:  level,
		Trials: make([]TrialRecord, 0),
	}
}

// RecordTrial appends a trial record.
func (st *StatsTrace) RecordTrial(record TrialRecord) {
	st.Trials = append(st.Trials, record)
}

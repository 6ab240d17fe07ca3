// Package trace records per-trial outcomes of a percolation statistics run.
// It does not import sim/, so records can be produced and read without the engine.
package trace

// TrialRecord captures the outcome of a single percolation trial.
type TrialRecord struct {
	Index     int     `json:"index"`
	Seed      int64   `json:"seed"`       // derived seed of the trial's RNG stream
	OpenSites int     `json:"open_sites"` // sites opened when the grid first percolated
	Threshold float64 `json:"threshold"`  // OpenSites / n²
}

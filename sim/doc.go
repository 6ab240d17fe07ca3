// Package sim provides the site percolation model and the Monte Carlo
// driver that estimates its threshold.
//
// # Reading Guide
//
// Start with these files:
//   - percolation.go: Grid, an n-by-n system of open/blocked sites backed by a
//     union-find with virtual top and bottom sites
//   - stats.go: RunStats, which opens random sites of fresh grids until they
//     percolate and aggregates the open-site fractions
//   - rng.go: per-trial RNG streams derived from one SimulationKey, so results
//     do not depend on how many trials run concurrently
//
// # Architecture
//
// Supporting packages:
//   - sim/unionfind/: weighted quick-union with path halving
//   - sim/trace/: per-trial records and their order statistics
//
// Invalid grid sizes and coordinates are reported as errors wrapping
// ErrInvalidArgument; a run without trials fails with ErrEmptySample.
package sim

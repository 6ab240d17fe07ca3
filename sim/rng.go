package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible statistics run.
// Two runs with the same SimulationKey, grid size and trial count MUST
// produce identical per-trial results, whatever the worker count.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// SubsystemTrial returns the stream name for trial i.
func SubsystemTrial(i int) string {
	return fmt.Sprintf("trial_%d", i)
}

// === PartitionedRNG ===

// PartitionedRNG hands out deterministic, isolated RNG streams per trial.
//
// Derivation formula: masterSeed XOR fnv1a64("trial_<i>").
//
// Thread-safety: ForTrial only reads the key and may be called from many
// goroutines. Each returned *rand.Rand belongs to a single trial and must not
// be shared.
type PartitionedRNG struct {
	key SimulationKey
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key}
}

// ForTrial returns a freshly seeded RNG for trial i. Calling it twice with the
// same i yields two generators producing the same sequence.
func (p *PartitionedRNG) ForTrial(i int) *rand.Rand {
	return rand.New(rand.NewSource(p.TrialSeed(i)))
}

// TrialSeed returns the derived seed used by ForTrial(i).
func (p *PartitionedRNG) TrialSeed(i int) int64 {
	return int64(p.key) ^ fnv1a64(SubsystemTrial(i))
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

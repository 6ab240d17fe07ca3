package sim

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sync"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+trial produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	a, b := rng1.ForTrial(3), rng2.ForTrial(3)
	for i := 0; i < 5; i++ {
		if va, vb := a.Int63(), b.Int63(); va != vb {
			t.Errorf("Value %d: got %v and %v, want identical", i, va, vb)
		}
	}
}

func TestPartitionedRNG_TrialIsolation(t *testing.T) {
	// BDD: Drawing from trial A doesn't affect trial B
	rng := NewPartitionedRNG(NewSimulationKey(42))

	trial0 := rng.ForTrial(0)
	for i := 0; i < 10; i++ {
		trial0.Float64()
	}
	got := rng.ForTrial(1).Float64()

	want := NewPartitionedRNG(NewSimulationKey(42)).ForTrial(1).Float64()
	if got != want {
		t.Errorf("trial 1 first value = %v, want %v (isolation broken)", got, want)
	}
}

func TestPartitionedRNG_DistinctTrialsDistinctSeeds(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(7))
	seen := make(map[int64]int)
	for i := 0; i < 1000; i++ {
		s := rng.TrialSeed(i)
		if prev, ok := seen[s]; ok {
			t.Fatalf("trials %d and %d share seed %d", prev, i, s)
		}
		seen[s] = i
	}
}

func TestPartitionedRNG_TrialSeedFormula(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	h := fnv.New64a()
	h.Write([]byte("trial_9"))
	want := seed ^ int64(h.Sum64())

	if got := rng.TrialSeed(9); got != want {
		t.Errorf("TrialSeed(9) = %d, want %d", got, want)
	}
	direct := rand.New(rand.NewSource(want))
	if rng.ForTrial(9).Float64() != direct.Float64() {
		t.Error("ForTrial(9) not seeded with TrialSeed(9)")
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	if rng.Key() != SimulationKey(seed) {
		t.Errorf("Key() = %v, want %v", rng.Key(), seed)
	}
}

func TestPartitionedRNG_ExtremeSeeds(t *testing.T) {
	for _, seed := range []int64{0, math.MinInt64, math.MaxInt64} {
		val := NewPartitionedRNG(NewSimulationKey(seed)).ForTrial(0).Float64()
		if val < 0 || val >= 1 {
			t.Errorf("seed %d: Float64() returned %v, want [0, 1)", seed, val)
		}
	}
}

func TestPartitionedRNG_ConcurrentForTrial(t *testing.T) {
	// BDD: ForTrial may be called from many goroutines
	rng := NewPartitionedRNG(NewSimulationKey(42))
	got := make([]float64, 64)

	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = rng.ForTrial(i).Float64()
		}()
	}
	wg.Wait()

	for i, v := range got {
		if want := rng.ForTrial(i).Float64(); v != want {
			t.Errorf("trial %d: concurrent value %v, sequential %v", i, v, want)
		}
	}
}

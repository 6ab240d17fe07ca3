// Package testutil provides shared test assertions for the percolation
// simulator packages.
package testutil

import (
	"math"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertInOpenRange fails the test unless lo < got < hi.
func AssertInOpenRange(t *testing.T, name string, lo, hi, got float64) {
	t.Helper()
	if !(got > lo && got < hi) {
		t.Errorf("%s: got %v, want in (%v, %v)", name, got, lo, hi)
	}
}

package fmindex

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocateAllSmallBatch(t *testing.T) {
	ix, err := Build([]byte("ATAATA"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	patterns := [][]byte{
		[]byte("ATA"),
		[]byte("AA"),
		[]byte("G"),
		[]byte(""),
	}
	want := [][]int{
		{1, 4},
		{3},
		nil,
		{1, 2, 3, 4, 5, 6, 7},
	}
	if diff := cmp.Diff(want, ix.LocateAll(patterns)); diff != "" {
		t.Errorf("LocateAll mismatch (-want +got):\n%s", diff)
	}
}

// Above the batching threshold LocateAll switches to an automaton scan; the
// two strategies must agree pattern for pattern.
func TestLocateAllStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 2000
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = "ACGT"[rng.Intn(4)]
	}
	ix, err := Build(seq)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	patterns := make([][]byte, 0, 24)
	for len(patterns) < 20 {
		start := rng.Intn(n - 12)
		patterns = append(patterns, seq[start:start+2+rng.Intn(10)])
	}
	// Edge inputs ride along in the same batch.
	patterns = append(patterns,
		[]byte(""),
		[]byte("NNN"),
		[]byte("acgt"),
		patterns[0], // duplicate of an earlier pattern
	)

	fm := ix.locateAllFM(patterns)
	scan := ix.locateAllScan(patterns)
	if diff := cmp.Diff(fm, scan); diff != "" {
		t.Fatalf("scan strategy disagrees with per-pattern search (-fm +scan):\n%s", diff)
	}
	if diff := cmp.Diff(fm, ix.LocateAll(patterns)); diff != "" {
		t.Errorf("LocateAll disagrees with per-pattern search (-fm +got):\n%s", diff)
	}
}

func TestLocateAllOverlappingPatterns(t *testing.T) {
	ix, err := Build([]byte("AAAAA"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Nine patterns force the scan path; overlapping and nested patterns
	// must all be reported at every start.
	patterns := [][]byte{
		[]byte("A"),
		[]byte("AA"),
		[]byte("AAA"),
		[]byte("AAAA"),
		[]byte("AAAAA"),
		[]byte("AAAAAA"),
		[]byte("T"),
		[]byte("AT"),
		[]byte("a"),
	}
	want := [][]int{
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4},
		{1, 2, 3},
		{1, 2},
		{1},
		nil,
		nil,
		nil,
		{1, 2, 3, 4, 5},
	}
	if diff := cmp.Diff(want, ix.LocateAll(patterns)); diff != "" {
		t.Errorf("LocateAll mismatch (-want +got):\n%s", diff)
	}
}

// A short pattern ending inside a longer pattern's occurrence reaches its
// end first during the scan; the longer match starting earlier must still
// be reported.
func TestLocateAllShadowedStarts(t *testing.T) {
	ix, err := Build([]byte("ACGTACGTA"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Nine patterns force the scan path. GT ends at offset 4 before ACGTA
	// ends at offset 5, with its start inside ACGTA's match.
	patterns := [][]byte{
		[]byte("GT"),
		[]byte("ACGTA"),
		[]byte("A"),
		[]byte("C"),
		[]byte("G"),
		[]byte("T"),
		[]byte("AC"),
		[]byte("CG"),
		[]byte("TA"),
	}
	want := [][]int{
		{3, 7},
		{1, 5},
		{1, 5, 9},
		{2, 6},
		{3, 7},
		{4, 8},
		{1, 5},
		{2, 6},
		{4, 8},
	}
	if diff := cmp.Diff(want, ix.locateAllScan(patterns)); diff != "" {
		t.Errorf("locateAllScan mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, ix.locateAllFM(patterns)); diff != "" {
		t.Errorf("locateAllFM mismatch (-want +got):\n%s", diff)
	}
}

func TestLocateAllEmptyBatch(t *testing.T) {
	ix, err := Build([]byte("ACGT"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := ix.LocateAll(nil); len(got) != 0 {
		t.Errorf("LocateAll(nil) = %v, want empty", got)
	}
	// A large batch with nothing matchable must still return one entry per
	// pattern.
	patterns := make([][]byte, 12)
	for i := range patterns {
		patterns[i] = []byte("NN")
	}
	got := ix.LocateAll(patterns)
	if len(got) != len(patterns) {
		t.Fatalf("LocateAll returned %d entries, want %d", len(got), len(patterns))
	}
	for i, positions := range got {
		if positions != nil {
			t.Errorf("patterns[%d]: positions = %v, want nil", i, positions)
		}
	}
}

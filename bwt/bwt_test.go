package bwt

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/sais"
)

// naiveTransform is the reference construction: build every rotation, sort
// them, take the last column. Only for cross-validation; it is
// O(n^2 log n).
func naiveTransform(seq []byte) []byte {
	n := len(seq)
	rotations := make([][]byte, n)
	for i := 0; i < n; i++ {
		r := make([]byte, 0, n)
		r = append(r, seq[i:]...)
		r = append(r, seq[:i]...)
		rotations[i] = r
	}
	sort.Slice(rotations, func(i, j int) bool {
		return bytes.Compare(rotations[i], rotations[j]) < 0
	})
	out := make([]byte, n)
	for i, r := range rotations {
		out[i] = r[n-1]
	}
	return out
}

func encode(s string) []byte {
	codes, err := alphabet.Encode([]byte(s))
	if err != nil {
		panic(err)
	}
	return append(codes, alphabet.Sentinel)
}

func TestTransformAgreesWithNaive(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"single", "A"},
		{"run", "AAAA"},
		{"ataata", "ATAATA"},
		{"mixed", "GATTACA"},
		{"with_ambiguity", "ACNGT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := encode(tt.in)
			got := Transform(seq, sais.ComputeSA(seq))
			want := naiveTransform(seq)
			if !bytes.Equal(got, want) {
				t.Errorf("Transform(%q) = %v, want %v", tt.in, got, want)
			}
		})
	}
}

func TestTransformSentinelCount(t *testing.T) {
	seq := encode("ATCGATCG")
	out := Transform(seq, sais.ComputeSA(seq))
	count := 0
	for _, c := range out {
		if c == alphabet.Sentinel {
			count++
		}
	}
	if count != 1 {
		t.Errorf("transform holds %d sentinels, want exactly 1", count)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{"", "A", "ATAATA", "GATTACA", "ACGTACGTNNACGT"} {
		seq := encode(in)
		got := Inverse(Transform(seq, sais.ComputeSA(seq)))
		if !bytes.Equal(got, seq) {
			t.Errorf("Inverse(Transform(%q)) = %v, want %v", in, got, seq)
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	bases := []byte("ACGT")
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(500)
		raw := make([]byte, n)
		for i := range raw {
			raw[i] = bases[rng.Intn(len(bases))]
		}
		seq := encode(string(raw))
		if got := Inverse(Transform(seq, sais.ComputeSA(seq))); !bytes.Equal(got, seq) {
			t.Fatalf("trial %d: round trip failed for %q", trial, raw)
		}
	}
}

func TestInverseEmpty(t *testing.T) {
	if got := Inverse(nil); got != nil {
		t.Errorf("Inverse(nil) = %v, want nil", got)
	}
}

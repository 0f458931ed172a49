package fm

import (
	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/bwt"
	"github.com/coregx/fmindex/internal/conv"
	"github.com/coregx/fmindex/sais"
)

// Index is an FM-index over a sentinel-terminated encoded sequence.
//
// The index is immutable once built: every query is a pure read, so a single
// Index can be shared across any number of goroutines without locking.
// Approximate search allocates its working state per call and never stores
// it on the Index.
//
// Rows and text positions are 1-based throughout, matching the classical
// formulation: row 1 is always the sentinel suffix, and position n+1 is the
// sentinel itself.
type Index struct {
	// tbwt is the Burrows-Wheeler Transform, tbwt[r-1] holding the symbol
	// of 1-based row r.
	tbwt []byte

	// c[s] is the number of transform symbols strictly smaller than s.
	c [alphabet.NumCodes]uint32

	// freq[s] is the number of occurrences of s in the transform.
	freq [alphabet.NumCodes]uint32

	// occ[s][i] is the number of occurrences of s in rows 1..i.
	// occ[s] is nil for symbols absent from the sequence; rank guards it.
	occ [alphabet.NumCodes][]uint32

	// samples maps a row to its text position, covering the sentinel row
	// and every position congruent to 1 modulo sampleRate.
	samples map[uint32]uint32

	sampleRate uint32

	// n is the sequence length excluding the sentinel; the index spans
	// n+1 rows.
	n uint32
}

// Build constructs an Index over an encoded sequence.
//
// seq holds symbol codes as produced by alphabet.Encode, without the
// sentinel; the terminator is appended internally exactly once. Build fails
// with ErrInvalidInput if seq already contains the sentinel code (or any
// code outside the alphabet), checked before suffix sorting so that no
// construction work happens on invalid input.
func Build(seq []byte, config Config) (*Index, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	for _, c := range seq {
		if c == alphabet.Sentinel || c >= alphabet.NumCodes {
			return nil, ErrInvalidInput
		}
	}

	data := make([]byte, len(seq)+1)
	copy(data, seq)
	data[len(seq)] = alphabet.Sentinel

	sa := sais.ComputeSA(data)
	x := &Index{
		tbwt:       bwt.Transform(data, sa),
		sampleRate: conv.IntToUint32(config.SampleRate),
		n:          conv.IntToUint32(len(seq)),
	}
	x.buildTables()
	x.sample(sa)
	return x, nil
}

// buildTables derives the cumulative-count table and the per-symbol rank
// arrays from the transform. One counting pass, then one snapshot pass per
// distinct symbol: O(alphabet size * n) space, which is the point of a
// small closed alphabet.
func (x *Index) buildTables() {
	for _, c := range x.tbwt {
		x.freq[c]++
	}
	var sum uint32
	for s := 0; s < alphabet.NumCodes; s++ {
		x.c[s] = sum
		sum += x.freq[s]
	}
	for s := 0; s < alphabet.NumCodes; s++ {
		if x.freq[s] == 0 {
			continue
		}
		arr := make([]uint32, len(x.tbwt)+1)
		var run uint32
		for i, c := range x.tbwt {
			if c == byte(s) {
				run++
			}
			arr[i+1] = run
		}
		x.occ[s] = arr
	}
}

// sample retains the suffix-array entries needed to bound locate walks:
// the sentinel row plus every row whose position is congruent to 1 modulo
// the sampling rate.
func (x *Index) sample(sa []int32) {
	m := uint32(len(sa))
	x.samples = make(map[uint32]uint32, int(m/x.sampleRate)+2)
	for i, p := range sa {
		pos := uint32(p) + 1
		if pos == m || (pos-1)%x.sampleRate == 0 {
			x.samples[uint32(i)+1] = pos
		}
	}
}

// rank returns the number of occurrences of symbol c in rows 1..i.
// i <= 0 yields 0 and i beyond the last row clamps to the full-length rank;
// the clamp is what lets the same helper serve both ends of a row range.
func (x *Index) rank(c byte, i int) uint32 {
	if int(c) >= alphabet.NumCodes || x.freq[c] == 0 || i <= 0 {
		return 0
	}
	if m := len(x.tbwt); i > m {
		i = m
	}
	return x.occ[c][i]
}

// Len returns the indexed sequence length, excluding the sentinel.
func (x *Index) Len() int { return int(x.n) }

// Rows returns the number of suffix-array rows, which is Len()+1.
func (x *Index) Rows() int { return len(x.tbwt) }

// SampleRate returns the suffix-array sampling rate the index was built with.
func (x *Index) SampleRate() int { return int(x.sampleRate) }

package fm

import (
	"fmt"

	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/internal/conv"
)

// Snapshot is the serializable form of an Index.
//
// Only the transform, the position samples and the sampling rate are
// carried: the cumulative-count table and the rank arrays are cheaper to
// rebuild in one linear pass than to store, and re-deriving them avoids
// trusting redundant data from disk.
type Snapshot struct {
	BWT        []byte
	Samples    map[uint32]uint32
	SampleRate uint32
}

// Snapshot returns a deep copy of the index state needed to restore it.
func (x *Index) Snapshot() Snapshot {
	t := make([]byte, len(x.tbwt))
	copy(t, x.tbwt)
	samples := make(map[uint32]uint32, len(x.samples))
	for r, p := range x.samples {
		samples[r] = p
	}
	return Snapshot{BWT: t, Samples: samples, SampleRate: x.sampleRate}
}

// Restore rebuilds an Index from a snapshot without re-sorting suffixes.
// The snapshot is validated structurally; any violation of the transform or
// sampling invariants is reported as ErrCorruptIndex.
func Restore(s Snapshot) (*Index, error) {
	m := len(s.BWT)
	if m == 0 {
		return nil, fmt.Errorf("%w: empty transform", ErrCorruptIndex)
	}
	if s.SampleRate == 0 {
		return nil, fmt.Errorf("%w: zero sample rate", ErrCorruptIndex)
	}
	sentinels := 0
	for _, c := range s.BWT {
		if c >= alphabet.NumCodes {
			return nil, fmt.Errorf("%w: symbol code %d out of range", ErrCorruptIndex, c)
		}
		if c == alphabet.Sentinel {
			sentinels++
		}
	}
	if sentinels != 1 {
		return nil, fmt.Errorf("%w: transform holds %d sentinels, want 1", ErrCorruptIndex, sentinels)
	}
	if len(s.Samples) == 0 {
		return nil, fmt.Errorf("%w: no suffix-array samples", ErrCorruptIndex)
	}
	mu := conv.IntToUint32(m)
	samples := make(map[uint32]uint32, len(s.Samples))
	for r, p := range s.Samples {
		if r < 1 || r > mu || p < 1 || p > mu {
			return nil, fmt.Errorf("%w: sample (%d, %d) out of range", ErrCorruptIndex, r, p)
		}
		samples[r] = p
	}

	t := make([]byte, m)
	copy(t, s.BWT)
	x := &Index{
		tbwt:       t,
		samples:    samples,
		sampleRate: s.SampleRate,
		n:          mu - 1,
	}
	x.buildTables()
	return x, nil
}

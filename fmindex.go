// Package fmindex provides an FM-index for nucleotide sequences: build the
// index once, then answer exact and approximate substring queries in time
// sublinear in the sequence length.
//
// The index is derived from the Burrows-Wheeler Transform of the sequence
// via a linear-time suffix sort, augmented with cumulative-count and rank
// tables for backward search and a sparse suffix-array sample for position
// recovery. A backtracking engine with per-query state memoization answers
// approximate queries within an edit-distance budget.
//
// Basic usage:
//
//	ix, err := fmindex.Build([]byte("ATAATA"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ix.Count([]byte("ATA"))     // 2
//	ix.Locate([]byte("ATA"))    // [1 4]  (1-based positions)
//
//	// Approximate: up to 1 edit (substitution, insertion or deletion)
//	for _, m := range ix.ApproximateSearch([]byte("ATAG"), 1) {
//	    fmt.Println(m.Position, m.EditDistance, m.AlignmentLength)
//	}
//
// Advanced usage:
//
//	// Trade locate speed for memory via the suffix-array sampling rate
//	config := fmindex.DefaultConfig().WithSampleRate(8)
//	ix, err := fmindex.BuildWithConfig(seq, config)
//
// Performance characteristics:
//   - Construction: O(n) suffix sort plus O(alphabet * n) table building
//   - Exact search: O(pattern length) independent of sequence length
//   - Locate: O(SampleRate) LF steps per occurrence
//   - Approximate search: pruned backtracking, memoized per query
//
// An Index is immutable after construction and safe for unlimited
// concurrent read-only use from multiple goroutines.
package fmindex

import (
	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/fm"
)

// Index is a built FM-index over one sequence.
//
// All positions in query results are 1-based offsets into the indexed
// sequence; row ranges returned by Search are 1-based inclusive. The zero
// value is not usable; obtain an Index from Build, BuildWithConfig or Load.
type Index struct {
	fm *fm.Index

	// seq is the canonical form of the indexed sequence (upper case,
	// unrecognized symbols normalized to N). Retained for multi-pattern
	// scanning and Repeat queries.
	seq []byte
}

// Config configures index construction. See fm.Config for the fields.
type Config = fm.Config

// Match is one approximate occurrence. See fm.Match for the fields.
type Match = fm.Match

// DefaultConfig returns a configuration with sensible defaults
// (sampling rate 32).
func DefaultConfig() Config { return fm.DefaultConfig() }

// Build constructs an index over seq with the default configuration.
//
// seq may contain upper or lower case bases; symbols outside {A, C, G, T}
// are indexed as the ambiguity symbol N, which no query can match. Build
// fails only if seq already contains the reserved sentinel symbol '$'
// (an *alphabet.InputError wrapping alphabet.ErrSentinel).
func Build(seq []byte) (*Index, error) {
	return BuildWithConfig(seq, fm.DefaultConfig())
}

// BuildWithConfig constructs an index over seq with an explicit
// configuration.
func BuildWithConfig(seq []byte, config Config) (*Index, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	codes, err := alphabet.Encode(seq)
	if err != nil {
		return nil, err
	}
	fmi, err := fm.Build(codes, config)
	if err != nil {
		return nil, err
	}
	return &Index{fm: fmi, seq: alphabet.Decode(codes)}, nil
}

// Search returns the inclusive suffix-array row range [sp, ep] of the rows
// whose suffixes are prefixed by pattern, or (0, 0) if the pattern is
// absent. The empty pattern matches every row. Patterns containing symbols
// outside {A, C, G, T} never match.
func (ix *Index) Search(pattern []byte) (sp, ep int) {
	return ix.fm.Search(alphabet.EncodePattern(pattern))
}

// Count returns the number of occurrences of pattern in the sequence.
func (ix *Index) Count(pattern []byte) int {
	return ix.fm.Count(alphabet.EncodePattern(pattern))
}

// Locate returns the ascending 1-based start positions of every occurrence
// of pattern. An absent pattern yields an empty result, never an error.
func (ix *Index) Locate(pattern []byte) []int {
	return ix.fm.Locate(alphabet.EncodePattern(pattern))
}

// ApproximateSearch returns one Match per distinct text position reachable
// from pattern within maxEdits edits, keeping the lowest edit distance per
// position, sorted by (Position, EditDistance).
func (ix *Index) ApproximateSearch(pattern []byte, maxEdits int) []Match {
	return ix.fm.ApproximateSearch(alphabet.EncodePattern(pattern), maxEdits)
}

// ApproximateLocate returns only the positions of ApproximateSearch, in the
// same order.
func (ix *Index) ApproximateLocate(pattern []byte, maxEdits int) []int {
	return ix.fm.ApproximateLocate(alphabet.EncodePattern(pattern), maxEdits)
}

// Repeat returns the ascending positions of every occurrence of the indexed
// sequence's own substring starting at the 1-based position start with the
// given length. For a substring of the four bases the result always
// contains start itself; a substring holding the ambiguity symbol N is
// unmatchable like any other query and yields an empty result, as do
// out-of-range bounds or a non-positive length.
func (ix *Index) Repeat(start, length int) []int {
	if start < 1 || length < 1 || start-1+length > len(ix.seq) {
		return nil
	}
	return ix.Locate(ix.seq[start-1 : start-1+length])
}

// Len returns the indexed sequence length, excluding the internal sentinel.
func (ix *Index) Len() int { return ix.fm.Len() }

// SampleRate returns the suffix-array sampling rate the index was built
// with.
func (ix *Index) SampleRate() int { return ix.fm.SampleRate() }

// Sequence returns a copy of the indexed sequence in canonical form (upper
// case, unrecognized symbols as N).
func (ix *Index) Sequence() []byte {
	out := make([]byte, len(ix.seq))
	copy(out, ix.seq)
	return out
}

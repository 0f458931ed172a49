package fmindex

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// locateAllThreshold is the pattern count above which LocateAll switches
// from per-pattern backward search to a single Aho-Corasick scan of the
// sequence. Below it, per-pattern FM queries win: each costs O(pattern
// length) regardless of sequence length, while the scan always pays O(n).
const locateAllThreshold = 8

// LocateAll answers a batch of exact-match queries, returning one ascending
// position list per pattern, parallel to the input.
//
// Small batches are answered pattern by pattern over the FM-index. Large
// batches build a per-call Aho-Corasick automaton over the patterns and
// stream the sequence through it once. The two strategies return identical
// results; only the cost model differs.
func (ix *Index) LocateAll(patterns [][]byte) [][]int {
	if len(patterns) <= locateAllThreshold {
		return ix.locateAllFM(patterns)
	}
	return ix.locateAllScan(patterns)
}

// locateAllFM answers each pattern with an independent backward search.
func (ix *Index) locateAllFM(patterns [][]byte) [][]int {
	out := make([][]int, len(patterns))
	for i, p := range patterns {
		out[i] = ix.Locate(p)
	}
	return out
}

// locateAllScan answers the batch with one Aho-Corasick pass over the
// retained sequence.
func (ix *Index) locateAllScan(patterns [][]byte) [][]int {
	out := make([][]int, len(patterns))

	// Group pattern indices by canonical form, dropping patterns that can
	// never match. Empty patterns keep FM semantics (they match every
	// position, sentinel row included), so they are answered directly.
	// keys records automaton insertion order so that a reported PatternID
	// maps back to its group.
	groups := make(map[string][]int)
	var keys []string
	builder := ahocorasick.NewBuilder()
	for i, p := range patterns {
		if len(p) == 0 {
			out[i] = ix.Locate(p)
			continue
		}
		np, ok := canonicalPattern(p)
		if !ok {
			continue
		}
		key := string(np)
		if _, dup := groups[key]; !dup {
			builder.AddPattern(np)
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], i)
	}
	if len(groups) == 0 {
		return out
	}
	auto, err := builder.Build()
	if err != nil {
		// The automaton is an optimization; fall back to per-pattern
		// search rather than fail the batch.
		for key, idxs := range groups {
			positions := ix.Locate([]byte(key))
			for _, i := range idxs {
				out[i] = positions
			}
		}
		return out
	}

	// The overlapping enumeration reports every occurrence of every
	// pattern, including ones nested inside or sharing a suffix with
	// another pattern's match. Matches arrive ordered by end offset, and
	// pattern length is fixed per PatternID, so each pattern's starts come
	// out ascending with no duplicates.
	for _, m := range auto.FindAllOverlapping(ix.seq) {
		for _, i := range groups[keys[m.PatternID]] {
			out[i] = append(out[i], m.Start+1)
		}
	}
	return out
}

// canonicalPattern upper-cases a pattern, reporting ok=false if it contains
// any symbol outside {A, C, G, T} and therefore cannot match.
func canonicalPattern(p []byte) ([]byte, bool) {
	np := bytes.ToUpper(p)
	for _, b := range np {
		switch b {
		case 'A', 'C', 'G', 'T':
		default:
			return nil, false
		}
	}
	return np, true
}

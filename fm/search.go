package fm

import (
	"sort"

	"github.com/coregx/fmindex/alphabet"
)

// Search runs backward search for an encoded pattern and returns the
// inclusive 1-based row range [sp, ep] of every suffix prefixed by it, or
// (0, 0) if the pattern does not occur.
//
// The pattern is consumed right to left; after k symbols the range holds
// exactly the rows whose suffixes share the pattern's trailing k symbols as
// a prefix. A symbol absent from the index (including the Invalid pattern
// code) empties the range immediately without a rank lookup. The empty
// pattern matches everything and returns the full range.
func (x *Index) Search(pattern []byte) (sp, ep int) {
	sp, ep = 1, len(x.tbwt)
	for i := len(pattern) - 1; i >= 0; i-- {
		sp, ep = x.step(sp, ep, pattern[i])
		if sp > ep {
			return 0, 0
		}
	}
	return sp, ep
}

// step narrows a row range by one backward-search symbol. An impossible
// symbol yields an empty range (sp > ep) without touching the rank tables.
// Shared by exact and approximate search.
func (x *Index) step(sp, ep int, c byte) (int, int) {
	if int(c) >= alphabet.NumCodes || x.freq[c] == 0 {
		return 1, 0
	}
	off := int(x.c[c])
	return off + int(x.rank(c, sp-1)) + 1, off + int(x.rank(c, ep))
}

// Count returns the number of occurrences of the pattern.
func (x *Index) Count(pattern []byte) int {
	sp, ep := x.Search(pattern)
	if sp == 0 {
		return 0
	}
	return ep - sp + 1
}

// Position recovers the 1-based text position of a suffix-array row by
// walking the LF-mapping until a sampled row is reached and adding the
// number of steps taken. By the sampling invariant the walk takes at most
// SampleRate steps; it is defensively bounded by the row count so that a
// corrupted index returns 0 instead of looping forever. Rows outside
// [1, Rows()] also return 0.
func (x *Index) Position(row int) int {
	m := len(x.tbwt)
	if row < 1 || row > m {
		return 0
	}
	r := uint32(row)
	for steps := 0; steps <= m; steps++ {
		if pos, ok := x.samples[r]; ok {
			return int(pos) + steps
		}
		c := x.tbwt[r-1]
		r = x.c[c] + x.rank(c, int(r))
	}
	return 0
}

// Locate returns the ascending 1-based text positions of every occurrence
// of the pattern. Absence of a match is a normal outcome, reported as an
// empty result rather than an error.
func (x *Index) Locate(pattern []byte) []int {
	sp, ep := x.Search(pattern)
	if sp == 0 {
		return nil
	}
	positions := make([]int, 0, ep-sp+1)
	for row := sp; row <= ep; row++ {
		if pos := x.Position(row); pos > 0 {
			positions = append(positions, pos)
		}
	}
	sort.Ints(positions)
	return positions
}

package fm

import (
	"sort"

	"github.com/coregx/fmindex/alphabet"
)

// Match is one approximate occurrence: the 1-based text position where the
// alignment starts, the number of edits it spent, and the number of text
// symbols it consumed.
type Match struct {
	Position        int
	EditDistance    int
	AlignmentLength int
}

// searchState identifies a backtracking state: a narrowed row range plus the
// number of pattern symbols still unprocessed. Two paths reaching the same
// state with the same edit budget remaining are interchangeable, so a state
// is re-explored only when a path reaches it having spent fewer edits.
type searchState struct {
	sp, ep uint32
	rem    uint32
}

// backtracker holds the call-local state of one approximate search.
//
// Everything here is allocated fresh per top-level call and discarded
// afterwards: row ranges are index-relative, not pattern-relative, so a
// memo shared across queries would produce false collisions. Keeping the
// scope per-call is also what makes concurrent queries on a shared Index
// trivially safe.
type backtracker struct {
	idx      *Index
	pattern  []byte
	maxEdits int

	// visited memoizes (sp, ep, remaining) states, keyed by the triple
	// and holding the lowest edit count that has reached it. A state is
	// re-explored only when reached strictly cheaper; anything else is a
	// collapsed duplicate of an earlier path. Unlike the dense bit-vector
	// a bounded automaton can use, the state universe here is quadratic
	// in the row count, so the memo lives in a hash map.
	visited map[searchState]int

	// best keeps the lowest-edit match per text position.
	best map[int]Match

	// rowPos caches LF-walk results; overlapping accepting ranges resolve
	// the same rows repeatedly.
	rowPos map[int]int
}

// ApproximateSearch returns every text position reachable from the pattern
// within maxEdits substitutions, insertions and deletions, one Match per
// distinct position keeping the lowest edit distance found for it. Results
// are sorted ascending by (Position, EditDistance).
//
// The pattern is processed right to left exactly as in exact search, with a
// depth-first backtracker offering up to four transitions per step: match
// (zero cost), substitution by any other base, insertion of a base present
// in the text, and deletion of a pattern symbol. An empty pattern matches
// every row of the index at zero edits and alignment length zero.
func (x *Index) ApproximateSearch(pattern []byte, maxEdits int) []Match {
	if maxEdits < 0 {
		return nil
	}
	b := &backtracker{
		idx:      x,
		pattern:  pattern,
		maxEdits: maxEdits,
		visited:  make(map[searchState]int),
		best:     make(map[int]Match),
		rowPos:   make(map[int]int),
	}
	b.search(1, len(x.tbwt), len(pattern), 0, 0)

	out := make([]Match, 0, len(b.best))
	for _, m := range b.best {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].EditDistance < out[j].EditDistance
	})
	return out
}

// ApproximateLocate returns only the positions of ApproximateSearch, in the
// same order.
func (x *Index) ApproximateLocate(pattern []byte, maxEdits int) []int {
	matches := x.ApproximateSearch(pattern, maxEdits)
	if len(matches) == 0 {
		return nil
	}
	positions := make([]int, len(matches))
	for i, m := range matches {
		positions[i] = m.Position
	}
	return positions
}

// search is the recursive backtracking core. rem counts pattern symbols not
// yet processed (the pattern is consumed right to left), edits the budget
// spent so far, consumed the text symbols the alignment has taken.
//
// Recursion depth is bounded by len(pattern) + maxEdits: match, substitution
// and deletion all decrease rem, and insertion spends budget.
func (b *backtracker) search(sp, ep, rem, edits, consumed int) {
	if edits > b.maxEdits || sp > ep {
		return
	}
	st := searchState{sp: uint32(sp), ep: uint32(ep), rem: uint32(rem)}
	if prev, seen := b.visited[st]; seen && edits >= prev {
		return
	}
	b.visited[st] = edits

	if rem == 0 {
		b.emit(sp, ep, edits, consumed)
		return
	}
	c := b.pattern[rem-1]

	// Match: consume the expected symbol at zero cost. Tried first so
	// that cheap alignments tend to claim shared states before costly
	// ones.
	if msp, mep := b.idx.step(sp, ep, c); msp <= mep {
		b.search(msp, mep, rem-1, edits, consumed+1)
	}

	if edits == b.maxEdits {
		return
	}
	for s := alphabet.A; s <= alphabet.T; s++ {
		ssp, sep := b.idx.step(sp, ep, s)
		if ssp > sep {
			continue
		}
		if s != c {
			// Substitution: the text holds s where the pattern
			// expected c.
			b.search(ssp, sep, rem-1, edits+1, consumed+1)
		}
		// Insertion: the text holds an extra s the pattern does not
		// have; the pattern index stays put.
		b.search(ssp, sep, rem, edits+1, consumed+1)
	}
	// Deletion: the pattern symbol is absent from the text.
	b.search(sp, ep, rem-1, edits+1, consumed)
}

// emit records every row of an accepting range, its position resolved
// through the locate engine, keeping the lowest edit distance per position.
func (b *backtracker) emit(sp, ep, edits, consumed int) {
	for row := sp; row <= ep; row++ {
		pos, ok := b.rowPos[row]
		if !ok {
			pos = b.idx.Position(row)
			b.rowPos[row] = pos
		}
		if pos == 0 {
			continue
		}
		if cur, ok := b.best[pos]; !ok || edits < cur.EditDistance {
			b.best[pos] = Match{Position: pos, EditDistance: edits, AlignmentLength: consumed}
		}
	}
}

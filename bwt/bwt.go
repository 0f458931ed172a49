// Package bwt derives the Burrows-Wheeler Transform of a sentinel-terminated
// sequence from its suffix array, and inverts it.
//
// There is a direct relationship between suffix arrays and the BWT: row i of
// the transform is the symbol immediately preceding the suffix that sorts
// into position i, with the sentinel standing in for the suffix that starts
// the sequence. Both directions run in a single linear pass.
package bwt

import "github.com/coregx/fmindex/alphabet"

// Transform returns the BWT of seq given its suffix array.
//
// seq is an encoded sequence whose last element is the unique sentinel code,
// and sa is its 0-based suffix array as produced by sais.ComputeSA. The
// result has the same length as seq and contains exactly one sentinel, at
// the row whose suffix starts the sequence.
func Transform(seq []byte, sa []int32) []byte {
	out := make([]byte, len(sa))
	for i, p := range sa {
		if p == 0 {
			// The suffix starting the sequence is preceded by the
			// terminator, which wraps around from the end.
			out[i] = seq[len(seq)-1]
		} else {
			out[i] = seq[p-1]
		}
	}
	return out
}

// Inverse reconstructs the original sentinel-terminated sequence from its
// BWT.
//
// The reconstruction walks the LF-mapping backwards from the first row,
// which by the sentinel invariant always corresponds to the suffix holding
// the terminator alone. Runs in O(n) time and space.
func Inverse(t []byte) []byte {
	n := len(t)
	if n == 0 {
		return nil
	}

	// Cumulative counts: for each code, the number of strictly smaller
	// symbols in the transform.
	var counts [alphabet.NumCodes]int
	for _, c := range t {
		counts[c]++
	}
	var cum [alphabet.NumCodes]int
	sum := 0
	for c, v := range counts {
		cum[c] = sum
		sum += v
	}

	// lf[i] is the row of the suffix one position earlier in the text.
	lf := make([]int, n)
	var seen [alphabet.NumCodes]int
	for i, c := range t {
		lf[i] = cum[c] + seen[c]
		seen[c]++
	}

	out := make([]byte, n)
	out[n-1] = alphabet.Sentinel
	row := 0
	for i := n - 2; i >= 0; i-- {
		out[i] = t[row]
		row = lf[row]
	}
	return out
}

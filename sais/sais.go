// Package sais constructs suffix arrays in linear time using the
// Suffix Array by Induced Sorting (SA-IS) method of Nong, Zhang and Chan.
//
// The contract is deliberately narrow: input is an encoded sequence whose
// final element is a unique, minimal sentinel code, output is the
// permutation of starting offsets sorted by the lexicographic order of the
// suffixes they begin. Everything the rest of the index needs (the BWT, the
// rank tables, the position samples) is derived from that permutation.
//
// References:
//	https://sites.google.com/site/yuta256/sais
//	Nong, Zhang, Chan: "Two Efficient Algorithms for Linear Time Suffix
//	Array Construction"
package sais

// ComputeSA returns the suffix array of data as 0-based offsets.
//
// data must terminate with a single sentinel code 0 that occurs nowhere
// else and is strictly smaller than every other code; under that invariant
// the first entry of the result is always len(data)-1. The input is not
// modified.
func ComputeSA(data []byte) []int32 {
	n := len(data)
	if n == 0 {
		return nil
	}
	s := make([]int, n)
	k := 0
	for i, b := range data {
		s[i] = int(b)
		if int(b) >= k {
			k = int(b) + 1
		}
	}
	sa := build(s, k, make([]int, n), make([]int, n))
	out := make([]int32, n)
	for i, v := range sa {
		out[i] = int32(v)
	}
	return out
}

// build runs one level of the SA-IS recursion over s with alphabet size k.
// sa and names are scratch buffers of length len(s) that are reused by the
// reduced sub-problem.
func build(s []int, k int, sa, names []int) []int {
	n := len(s)
	sa = sa[:n]
	for i := range sa {
		sa[i] = -1
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	// Classify every suffix as S-type (smaller than its successor) or
	// L-type. The sentinel is S-type by definition.
	stype := make([]bool, n)
	stype[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			stype[i] = true
		case s[i] > s[i+1]:
			stype[i] = false
		default:
			stype[i] = stype[i+1]
		}
	}

	// LMS positions: S-type suffixes immediately preceded by an L-type one.
	var lms []int
	for i := 1; i < n; i++ {
		if stype[i] && !stype[i-1] {
			lms = append(lms, i)
		}
	}

	// First induced sort: approximate order of LMS substrings.
	induce(s, sa, stype, k, lms)

	// Name LMS substrings in sorted order; equal substrings share a name.
	var sortedLMS []int
	for _, p := range sa {
		if p > 0 && stype[p] && !stype[p-1] {
			sortedLMS = append(sortedLMS, p)
		}
	}
	names = names[:n]
	for i := range names {
		names[i] = -1
	}
	name, prev := 0, -1
	for _, p := range sortedLMS {
		if prev >= 0 && !lmsEqual(s, stype, prev, p) {
			name++
		}
		names[p] = name
		prev = p
	}
	numNames := name + 1

	// Solve the reduced problem to obtain the exact LMS order.
	reduced := make([]int, 0, len(lms))
	for _, p := range lms {
		reduced = append(reduced, names[p])
	}
	var reducedSA []int
	if numNames < len(reduced) {
		reducedSA = build(reduced, numNames, sa, names)
	} else {
		// All names distinct: the reduced suffix array is a direct
		// inversion of the name sequence.
		reducedSA = make([]int, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}
	ordered := make([]int, len(reducedSA))
	for i, ri := range reducedSA {
		ordered[i] = lms[ri]
	}

	// Final induced sort from the exactly ordered LMS positions.
	for i := range sa {
		sa[i] = -1
	}
	induce(s, sa, stype, k, ordered)
	return sa
}

// induce performs one round of induced sorting: place the given LMS
// positions at their bucket tails, induce L-type suffixes left to right,
// then S-type suffixes right to left.
func induce(s, sa []int, stype []bool, k int, lms []int) {
	sizes := bucketSizes(s, k)

	tails := bucketTails(sizes)
	for i := len(lms) - 1; i >= 0; i-- {
		p := lms[i]
		c := s[p]
		sa[tails[c]] = p
		tails[c]--
	}

	heads := bucketHeads(sizes)
	for i := range sa {
		p := sa[i]
		if p > 0 && !stype[p-1] {
			c := s[p-1]
			sa[heads[c]] = p - 1
			heads[c]++
		}
	}

	tails = bucketTails(sizes)
	for i := len(sa) - 1; i >= 0; i-- {
		p := sa[i]
		if p > 0 && stype[p-1] {
			c := s[p-1]
			sa[tails[c]] = p - 1
			tails[c]--
		}
	}
}

func bucketSizes(s []int, k int) []int {
	sizes := make([]int, k)
	for _, c := range s {
		sizes[c]++
	}
	return sizes
}

func bucketHeads(sizes []int) []int {
	heads := make([]int, len(sizes))
	sum := 0
	for c, v := range sizes {
		heads[c] = sum
		sum += v
	}
	return heads
}

func bucketTails(sizes []int) []int {
	tails := make([]int, len(sizes))
	sum := 0
	for c, v := range sizes {
		sum += v
		tails[c] = sum - 1
	}
	return tails
}

// lmsEqual reports whether the LMS substrings starting at i and j are
// identical, symbol for symbol and type for type. An LMS substring runs
// from its own start to the next LMS position inclusive, so the LMS check
// must not fire on the starting positions themselves.
func lmsEqual(s []int, stype []bool, i, j int) bool {
	n := len(s)
	for k := 0; ; k++ {
		if s[i] != s[j] {
			return false
		}
		iLMS := k > 0 && stype[i] && !stype[i-1]
		jLMS := k > 0 && stype[j] && !stype[j-1]
		if iLMS && jLMS {
			return true
		}
		if iLMS != jLMS {
			return false
		}
		i++
		j++
		if i >= n || j >= n {
			return false
		}
	}
}

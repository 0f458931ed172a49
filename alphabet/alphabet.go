// Package alphabet maps nucleotide symbols to the dense integer codes the
// index operates on.
//
// The code space is deliberately tiny and closed: one reserved sentinel code
// that sorts before everything else, one code per nucleotide base, and one
// code collecting every unrecognized text symbol. Keeping codes dense lets
// the index address its count and rank tables with plain array indexing
// instead of hash lookups.
package alphabet

import (
	"errors"
	"fmt"
)

// Symbol codes. Sentinel is defined to be the smallest code so that the
// appended terminator sorts before every real symbol, which is what gives
// suffixes a total order.
const (
	// Sentinel is the reserved terminator code. It is appended internally
	// exactly once and must never appear in caller-supplied input.
	Sentinel byte = 0

	// A, C, G, T are the nucleotide base codes, in ascending symbol order.
	A byte = 1
	C byte = 2
	G byte = 3
	T byte = 4

	// Other is the code assigned to unrecognized text symbols (for example
	// the ambiguity base N). It participates in suffix sorting like any
	// other symbol but no query symbol ever encodes to it, so it can never
	// satisfy a match.
	Other byte = 5

	// NumCodes is the total size of the code space, sentinel included.
	NumCodes = 6

	// Invalid marks a pattern symbol outside the searchable alphabet.
	// It is produced only by EncodePattern and is never a valid index into
	// the count or rank tables.
	Invalid byte = 0xFF

	// SentinelSymbol is the textual form of the sentinel.
	SentinelSymbol byte = '$'
)

// ErrSentinel indicates that caller-supplied input already contains the
// reserved sentinel symbol, which would break the unique-terminator
// invariant the whole index is built on.
var ErrSentinel = errors.New("sequence contains the reserved sentinel symbol")

// InputError wraps an encoding failure with the offending symbol and its
// 0-based offset in the input.
type InputError struct {
	Pos int
	Sym byte
	Err error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("alphabet: symbol %q at offset %d: %v", e.Sym, e.Pos, e.Err)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error { return e.Err }

// Encode converts a raw nucleotide sequence to its code form.
//
// Upper and lower case bases are accepted. Any other symbol maps to Other,
// except the sentinel symbol itself: finding '$' in the input is the one
// fatal condition, reported as an *InputError wrapping ErrSentinel before
// any index construction is attempted.
func Encode(seq []byte) ([]byte, error) {
	codes := make([]byte, len(seq))
	for i, b := range seq {
		switch b {
		case 'A', 'a':
			codes[i] = A
		case 'C', 'c':
			codes[i] = C
		case 'G', 'g':
			codes[i] = G
		case 'T', 't':
			codes[i] = T
		case SentinelSymbol:
			return nil, &InputError{Pos: i, Sym: b, Err: ErrSentinel}
		default:
			codes[i] = Other
		}
	}
	return codes, nil
}

// EncodePattern converts a query pattern to code form.
//
// Unlike text encoding this never fails: a symbol outside {A, C, G, T} maps
// to Invalid, a code that cannot match anything in the index. Exact search
// short-circuits on it and approximate search can only get past it by
// spending edits.
func EncodePattern(pattern []byte) []byte {
	codes := make([]byte, len(pattern))
	for i, b := range pattern {
		switch b {
		case 'A', 'a':
			codes[i] = A
		case 'C', 'c':
			codes[i] = C
		case 'G', 'g':
			codes[i] = G
		case 'T', 't':
			codes[i] = T
		default:
			codes[i] = Invalid
		}
	}
	return codes
}

// Decode converts codes back to their canonical textual symbols.
// Bases come back upper case, Other becomes 'N' and the sentinel '$'.
func Decode(codes []byte) []byte {
	seq := make([]byte, len(codes))
	for i, c := range codes {
		seq[i] = DecodeSymbol(c)
	}
	return seq
}

// DecodeSymbol converts a single code to its canonical symbol.
func DecodeSymbol(c byte) byte {
	switch c {
	case A:
		return 'A'
	case C:
		return 'C'
	case G:
		return 'G'
	case T:
		return 'T'
	case Sentinel:
		return SentinelSymbol
	default:
		return 'N'
	}
}

// IsBase reports whether c is one of the four searchable base codes.
func IsBase(c byte) bool { return c >= A && c <= T }

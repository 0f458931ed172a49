// Package fm implements the FM-index: a compact, immutable substring index
// over the Burrows-Wheeler Transform of a sequence.
//
// An Index is built once from an encoded sequence and then serves any number
// of concurrent read-only queries: exact backward search, position recovery
// through the sampled suffix array, and backtracking approximate search
// within an edit-distance budget.
package fm

import "errors"

// Common index errors.
var (
	// ErrInvalidInput indicates the input sequence already contains the
	// reserved sentinel code. This is the only fatal construction error;
	// it is raised before suffix sorting is attempted and no partial
	// index is ever returned.
	ErrInvalidInput = errors.New("input sequence contains the reserved sentinel code")

	// ErrInvalidConfig indicates invalid construction configuration.
	ErrInvalidConfig = errors.New("invalid index configuration")

	// ErrCorruptIndex indicates a restored snapshot failed validation.
	ErrCorruptIndex = errors.New("corrupt index snapshot")
)

// Package conv provides checked integer narrowing for the index.
//
// Suffix-array rows and text positions are stored as uint32 to halve the
// memory footprint of the sampled tables. A value that does not fit is a
// programming error, not an input error: sequences beyond the supported
// size are rejected at construction, so the helpers panic rather than
// return an error.
package conv

import "math"

// IntToUint32 converts n to uint32 and panics if the value does not fit.
func IntToUint32(n int) uint32 {
	// The upper bound is compared in uint so it also holds on 32-bit
	// platforms, where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: sequence size out of uint32 range")
	}
	return uint32(n)
}

package fm

import "fmt"

// Config configures index construction.
//
// The single knob is the suffix-array sampling rate, which trades memory
// for locate speed. The search range computation itself is unaffected:
// the index is correct for any positive rate.
type Config struct {
	// SampleRate controls how sparsely suffix-array entries are retained.
	// A position is sampled when it is congruent to 1 modulo SampleRate,
	// which bounds every locate walk by SampleRate LF steps.
	//
	// Default: 32
	//
	// Tuning guidelines:
	//   - SampleRate = 1 keeps the full suffix array (fastest locate,
	//     4 bytes per text symbol)
	//   - Larger values shrink the sample proportionally at the cost of
	//     proportionally longer locate walks
	//   - Values exceeding the sequence length are valid; locate then
	//     walks all the way back to the first position
	SampleRate int
}

// DefaultConfig returns a configuration with sensible defaults.
//
// The default sampling rate keeps roughly 3% of the suffix array, which
// for megabase-range sequences keeps locate well under a microsecond
// while the rank tables dominate memory anyway.
func DefaultConfig() Config {
	return Config{SampleRate: 32}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: SampleRate must be > 0, got %d", ErrInvalidConfig, c.SampleRate)
	}
	return nil
}

// WithSampleRate returns a new config with the specified sampling rate.
func (c Config) WithSampleRate(rate int) Config {
	c.SampleRate = rate
	return c
}

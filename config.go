package corejp

import "fmt"

// Config controls how a Query is compiled and run. Mirrors the teacher's
// meta.Config (_examples/coregx-coregex/meta/config.go): documented fields,
// sensible defaults, and a Validate method callers can run ahead of time.
type Config struct {
	// MaxDepth bounds JSON nesting depth; exceeding it during a run is a
	// fatal DepthAboveLimitError. Zero disables the check.
	// Default: 0 (unbounded, matching spec.md §3.3's "e.g. 255" being only
	// illustrative).
	MaxDepth int

	// MaxDFAStates bounds the number of DFA states the compiler will
	// allocate before failing with automaton.ErrTooComplex. Zero means
	// unbounded.
	// Default: 0
	MaxDFAStates int

	// BlockSize is the classifier's fixed block size in bytes; spec.md
	// §3.4 requires 32 or 64.
	// Default: 64
	BlockSize int

	// EnableHeadSkip allows the engine to bypass the general executor
	// entirely for queries shaped like a bare "$..name" (spec.md §4.5.6),
	// locating matches via direct substring search instead of walking
	// structural events. Only ever applied to Count/Indices — ApproxSpans
	// and Matches always run the general executor regardless of this
	// setting, since head-skip's matches don't carry real nesting depth.
	// Default: true
	EnableHeadSkip bool

	// EnableSIMD allows the classifier to use CPU-accelerated primitives
	// (SSE4.2/AVX2 SWAR block scanning) when the running CPU supports them,
	// per spec.md §6.4. When false, the portable scalar classifier is used
	// unconditionally.
	// Default: true
	EnableSIMD bool
}

// DefaultConfig returns a Config with sensible defaults: unbounded depth and
// DFA size, a 64-byte block, and both head-skip and SIMD enabled.
func DefaultConfig() Config {
	return Config{
		MaxDepth:       0,
		MaxDFAStates:   0,
		BlockSize:      64,
		EnableHeadSkip: true,
		EnableSIMD:     true,
	}
}

// Validate checks that c's parameters are in range.
func (c Config) Validate() error {
	if c.BlockSize != 32 && c.BlockSize != 64 {
		return &ConfigError{Field: "BlockSize", Message: "must be 32 or 64"}
	}
	if c.MaxDepth < 0 {
		return &ConfigError{Field: "MaxDepth", Message: "must be non-negative"}
	}
	if c.MaxDFAStates < 0 {
		return &ConfigError{Field: "MaxDFAStates", Message: "must be non-negative"}
	}
	return nil
}

// ConfigError reports an invalid Config field, mirroring meta.ConfigError.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("corejp: invalid config: %s: %s", e.Field, e.Message)
}

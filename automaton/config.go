package automaton

// Config controls NFA→DFA compilation. Mirrors the documented-defaults
// style of the teacher's meta.Config (`_examples/coregx-coregex/meta/config.go`).
type Config struct {
	// MaxDFAStates bounds the number of DFA states the minimizer will
	// allocate before giving up with ErrTooComplex. Zero means unbounded.
	// Defaults to 0; callers compiling untrusted queries should set a
	// budget (spec.md §3.4 calls the bound "implementation-defined but
	// present").
	MaxDFAStates int
}

// DefaultConfig returns the compiler's default configuration: unbounded DFA
// state count, suitable for queries known ahead of time to be well-formed.
func DefaultConfig() Config {
	return Config{MaxDFAStates: 0}
}

package automaton

import (
	"errors"
	"fmt"
)

// Sentinel errors for NFA compilation failures, matching the teacher's
// nfa/error.go shape (sentinel vars wrapped by a struct carrying context).
var (
	ErrTooComplex   = errors.New("automaton: query too complex")
	ErrNotSupported = errors.New("automaton: construct not supported")
	ErrEmptyNFA     = errors.New("automaton: nfa has no states")
	ErrBadNFA       = errors.New("automaton: malformed nfa")
)

// CompilerError wraps a compilation failure with the NFA state that
// triggered it, mirroring nfa/error.go's CompileError{Pattern, Err}.
type CompilerError struct {
	State NfaStateID
	Err   error
}

func (e *CompilerError) Error() string {
	return fmt.Sprintf("automaton: compiling state %d: %v", e.State, e.Err)
}

func (e *CompilerError) Unwrap() error { return e.Err }

// TooComplex builds the error returned when the superstate worklist
// exceeds the compiler's MaxDFAStates budget (spec.md §3.4's "bounded but
// implementation-defined" state cap).
func TooComplex(maxDFAStates int) error {
	return &CompilerError{Err: fmt.Errorf("%w: exceeded %d states", ErrTooComplex, maxDFAStates)}
}

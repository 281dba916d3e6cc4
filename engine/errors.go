package engine

import (
	"errors"
	"fmt"

	"github.com/corejp/corejp/classify"
)

// The error families below mirror spec.md §7's input-structural category:
// conditions a well-formed automaton can still hit against malformed or
// truncated input, distinct from the compile-time errors automaton.Compile
// already reports and from internal-logic invariants that should never be
// reachable from valid input. Styled after nfa/error.go's sentinel-plus-
// wrapping-struct pattern.
var (
	ErrMissingClosingCharacter = errors.New("engine: document ended before every opened object or array was closed")
	ErrDepthBelowZero          = errors.New("engine: closing character appeared with no matching opener")
	ErrDepthAboveLimit         = errors.New("engine: nesting depth exceeded the configured limit")
	ErrMalformedStringQuotes   = errors.New("engine: expected a closing quote before this position")
	ErrMissingItem             = errors.New("engine: no JSON value follows where a match was expected")
)

// DepthAboveLimitError reports the byte index of the opening character that
// would have pushed the executor's depth counter past its configured limit.
type DepthAboveLimitError struct {
	Index int
}

func (e *DepthAboveLimitError) Error() string {
	return fmt.Sprintf("%v at byte %d", ErrDepthAboveLimit, e.Index)
}
func (e *DepthAboveLimitError) Unwrap() error { return ErrDepthAboveLimit }

// DepthBelowZeroError reports the byte index of a closing character with no
// corresponding opener.
type DepthBelowZeroError struct {
	Index int
}

func (e *DepthBelowZeroError) Error() string {
	return fmt.Sprintf("%v at byte %d", ErrDepthBelowZero, e.Index)
}
func (e *DepthBelowZeroError) Unwrap() error { return ErrDepthBelowZero }

// MalformedStringQuotesError reports the byte index the executor was
// scanning backward from when it failed to find a closing quote.
type MalformedStringQuotesError struct {
	Index int
}

func (e *MalformedStringQuotesError) Error() string {
	return fmt.Sprintf("%v at byte %d", ErrMalformedStringQuotes, e.Index)
}
func (e *MalformedStringQuotesError) Unwrap() error { return ErrMalformedStringQuotes }

// MissingItemError reports the byte index the executor was scanning forward
// from when it expected to find a value and found the end of input instead.
type MissingItemError struct {
	Index int
}

func (e *MissingItemError) Error() string {
	return fmt.Sprintf("%v (scanning forward from byte %d)", ErrMissingItem, e.Index)
}
func (e *MissingItemError) Unwrap() error { return ErrMissingItem }

// InputError wraps a failure surfaced by the underlying Input or classifier
// that doesn't fit one of the named categories above.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return fmt.Sprintf("engine: input error: %v", e.Err) }
func (e *InputError) Unwrap() error { return e.Err }

// wrapClassifyErr translates a classify package sentinel into the matching
// engine-level error, falling back to a generic InputError for anything
// else (including nil, which it passes through unchanged).
func wrapClassifyErr(err error, idx int) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, classify.ErrMissingClosingCharacter):
		return ErrMissingClosingCharacter
	case errors.Is(err, classify.ErrDepthBelowZero):
		return &DepthBelowZeroError{Index: idx}
	default:
		return &InputError{Err: err}
	}
}

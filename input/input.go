// Package input presents a JSON document as a padded, block-aligned byte
// source plus the small set of seek primitives the executor needs to locate
// quotes, colons, and whitespace boundaries around a structural event.
//
// Grounded on original_source/crates/rsonpath-lib/src/input/padding.rs: the
// EndPaddedInput / TwoSidesPaddedInput pair and their SliceSeekable seek_*
// methods, reworked into a single buffered implementation (spec.md §6.2 only
// requires the interface; a memory-mapped or chunked-reader implementation
// is an external collaborator the core doesn't need to provide).
package input

import "fmt"

// Input abstracts a JSON byte source for the classifier/executor pipeline.
type Input interface {
	// LeadingPaddingLen reports how many synthetic bytes were prepended so
	// callers can translate classifier-reported indices back to the
	// caller's original byte positions.
	LeadingPaddingLen() int
	// Len reports the total padded length, including leading and trailing
	// padding.
	Len() int
	// Block returns the i'th fixed-size block of the padded stream, and
	// whether a block exists at that index.
	Block(i int, size int) ([]byte, bool)
	// SeekForward finds the first occurrence of any byte in needles at or
	// after from, returning its index and value.
	SeekForward(from int, needles ...byte) (int, byte, bool)
	// SeekBackward finds the last occurrence of any byte in needles at or
	// before from, returning its index.
	SeekBackward(from int, needles ...byte) (int, bool)
	// SeekNonWhitespaceForward finds the first non-whitespace byte at or
	// after from.
	SeekNonWhitespaceForward(from int) (int, byte, bool)
	// SeekNonWhitespaceBackward finds the last non-whitespace byte at or
	// before from.
	SeekNonWhitespaceBackward(from int) (int, byte, bool)
	// IsMemberMatch reports whether the byte range [start, end) - the
	// content strictly between a pair of quotes - spells name, with each
	// JSON escape sequence compared as the character it stands for.
	IsMemberMatch(start, end int, name string) bool
}

// Error wraps a failure from an underlying I/O-backed Input implementation,
// per spec.md §7's InputError(underlying). A purely in-memory Input (Buffer)
// never produces one itself, but the type exists so Input implementations
// backed by files or network streams have somewhere to report into.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("input: %s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// whitespaceTable drives simd.MemchrNotInTable's forward whitespace-skip:
// table[b] is true for JSON's four insignificant-whitespace bytes.
var whitespaceTable = func() *[256]bool {
	var t [256]bool
	t[' '], t['\t'], t['\n'], t['\r'] = true, true, true, true
	return &t
}()

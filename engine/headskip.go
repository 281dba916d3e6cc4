package engine

import (
	"github.com/corejp/corejp/automaton"
	"github.com/corejp/corejp/result"
	"github.com/corejp/corejp/simd"
)

// rawByteSource is satisfied by an Input that can hand back its full byte
// range directly (input.Buffer does, via the same method result.ByteSource
// needs). Head-skip needs this to run simd.Memmem over the document; an
// Input that can't provide it simply doesn't get the optimization.
type rawByteSource interface {
	Bytes(start, end int) []byte
}

// runHeadSkip implements spec.md §4.5.6 for the one shape it's sound for:
// a bare, complete "$..name" query (automaton.DescendantMemberSelector
// confirms both the shape and that nothing follows it). Rather than
// walking every structural event, it finds each occurrence of `"name":`
// directly via simd.Memmem — the teacher's SIMD-accelerated substring
// search, grounded on simd/memmem.go, now doing the job rsonpath's own
// head-skip prefilter does over a quoted member name — verifies it isn't
// sitting inside an unrelated string's content, and records its value.
//
// Every candidate's match and terminator are emitted back-to-back before
// the next candidate is searched for, so the depth the Recorder sees (the
// fixed value 0, rather than the real nesting depth) never has two spans
// open at once — correct for Count and Index, which don't pair match and
// terminator at all, but NOT sound for ApproxSpans/Nodes, whose depth-
// keyed open-span tracking assumes genuine nesting information. Callers
// must only request head-skip for Count/Index recorders; see New's enableHeadSkip doc.
func (e *Executor) runHeadSkip(name string, target automaton.StateID) error {
	_ = target // transitions are identical to the initial state; see DescendantMemberSelector's doc
	src, ok := e.in.(rawByteSource)
	if !ok {
		return e.runAndExit()
	}
	raw := src.Bytes(0, e.in.Len())
	pattern := []byte(`"` + name + `":`)

	var q quoteScanState
	pos := e.pad
	lastScanned := e.pad

	for {
		rel := simd.Memmem(raw[pos:], pattern)
		if rel < 0 {
			return nil
		}
		cand := pos + rel

		q.advance(raw[lastScanned:cand])
		lastScanned = cand

		if q.inString {
			// The opening quote of "name" sits inside an unrelated
			// string's content; not a genuine member key. Resume the
			// search just past it.
			pos = cand + 1
			continue
		}

		valueStart, firstByte, ok := e.in.SeekNonWhitespaceForward(cand + len(pattern))
		if !ok {
			return &MissingItemError{Index: e.fromRaw(cand + len(pattern))}
		}

		var end int
		kind := result.Atomic
		if firstByte == '{' || firstByte == '[' {
			kind = result.Complex
			var err error
			end, err = scanComplexValueEnd(raw, valueStart)
			if err != nil {
				return err
			}
		} else {
			end = scanAtomicValueEnd(raw, valueStart)
		}

		if err := e.rec.RecordMatch(e.fromRaw(valueStart), 0, kind); err != nil {
			return err
		}
		if err := e.rec.RecordValueTerminator(e.fromRaw(end), 0); err != nil {
			return err
		}

		// Resume at the value itself, so occurrences nested inside a
		// complex value are found as matches of their own.
		q.advance(raw[lastScanned:valueStart])
		lastScanned = valueStart
		pos = valueStart
	}
}

// quoteScanState tracks in-string/escape state across arbitrary,
// non-block-aligned byte ranges — the small gaps head-skip needs to
// verify between one substring-search candidate and the next, too
// irregularly sized to be worth driving through classify's block-parallel
// quoteState.
type quoteScanState struct {
	inString bool
	escaped  bool
}

func (s *quoteScanState) advance(b []byte) {
	for _, c := range b {
		if s.escaped {
			s.escaped = false
			continue
		}
		if c == '\\' {
			if s.inString {
				s.escaped = true
			}
			continue
		}
		if c == '"' {
			s.inString = !s.inString
		}
	}
}

// scanComplexValueEnd returns the index one past the bracket that closes
// the complex value starting at start (which must be '{' or '[').
func scanComplexValueEnd(raw []byte, start int) (int, error) {
	depth := 0
	var q quoteScanState
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if q.escaped {
			q.escaped = false
			continue
		}
		if q.inString {
			if c == '\\' {
				q.escaped = true
			} else if c == '"' {
				q.inString = false
			}
			continue
		}
		switch c {
		case '"':
			q.inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, ErrMissingClosingCharacter
}

// scanAtomicValueEnd returns the index of the comma or closing bracket that
// terminates the atomic value starting at start.
func scanAtomicValueEnd(raw []byte, start int) int {
	var q quoteScanState
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if q.escaped {
			q.escaped = false
			continue
		}
		if q.inString {
			if c == '\\' {
				q.escaped = true
			} else if c == '"' {
				q.inString = false
			}
			continue
		}
		switch c {
		case '"':
			q.inString = true
		case ',', '}', ']':
			return i
		}
	}
	return len(raw)
}

// Package engine runs a compiled automaton.Automaton over a classified
// input stream, matching spec.md §4.5's stackless executor: a single pass
// over structural events with one-event lookahead, an explicit small stack
// pushed only on meaningful state changes, and the tail-skip and head-skip
// shortcuts that let whole subtrees and whole blocks of raw bytes be
// bypassed once the automaton can prove they hold no further matches.
// Ported from original_source/.../engine/main.rs's Executor.
package engine

import (
	"math"

	"github.com/corejp/corejp/automaton"
	"github.com/corejp/corejp/classify"
	"github.com/corejp/corejp/input"
	"github.com/corejp/corejp/result"
)

// Executor drives one run of an automaton over one Input, delivering
// matches to a Recorder. Not safe for concurrent use; spec.md §5 assigns
// one Executor (and the Pipeline it owns) per query run.
type Executor struct {
	aut        *automaton.Automaton
	in         input.Input
	rec        result.Recorder
	pad        int
	blockSz    int
	maxDepth   int
	headSkip   bool
	scalarOnly bool

	depth      int
	state      automaton.StateID
	isList     bool
	arrayCount uint64
	stack      SmallStack

	hasNext bool
	next    classify.Event
}

// New builds an Executor. maxDepth of 0 disables the depth limit.
// enableHeadSkip lets Run take runHeadSkip's path for a bare "$..name"
// query; that path reports every match at depth 0, so it only suits
// recorders that ignore depth (Count and Index).
func New(aut *automaton.Automaton, in input.Input, rec result.Recorder, blockSize, maxDepth int, enableHeadSkip bool) *Executor {
	return &Executor{
		aut:      aut,
		in:       in,
		rec:      rec,
		pad:      in.LeadingPaddingLen(),
		blockSz:  blockSize,
		maxDepth: maxDepth,
		headSkip: enableHeadSkip,
		state:    automaton.InitialState,
	}
}

// Run executes the query to completion.
func (e *Executor) Run() error {
	if e.aut.IsEmptyQuery() {
		return nil
	}
	if e.aut.IsSelectRootQuery() {
		return e.runSelectRoot()
	}
	if e.headSkip {
		if name, target, ok := e.aut.DescendantMemberSelector(); ok && needsNoEscaping(name) {
			return e.runHeadSkip(name, target)
		}
	}
	return e.runAndExit()
}

// runSelectRoot answers the trivial "$" query directly: the whole document,
// from its first non-whitespace byte to its last, is the one match. Grounded
// on engine/main.rs's is_select_root_query fast path (SPEC_FULL.md §5).
func (e *Executor) runSelectRoot() error {
	start, firstByte, ok := e.in.SeekNonWhitespaceForward(e.pad)
	if !ok {
		return &MissingItemError{Index: e.fromRaw(e.pad)}
	}
	kind := result.Atomic
	if firstByte == '{' || firstByte == '[' {
		kind = result.Complex
	}
	if err := e.rec.RecordMatch(e.fromRaw(start), 0, kind); err != nil {
		return err
	}
	// The trailing padding is itself all whitespace, so seeking backward
	// from the very end of the padded buffer lands on the document's last
	// real byte without needing to know the padding length.
	last, _, ok := e.in.SeekNonWhitespaceBackward(e.in.Len() - 1)
	end := start
	if ok {
		end = last + 1
	}
	return e.rec.RecordValueTerminator(e.fromRaw(end), 0)
}

func (e *Executor) runAndExit() error {
	p := classify.NewPipelineWithSIMD(e.in, e.blockSz, !e.scalarOnly)
	if err := e.runOnSubtree(p); err != nil {
		return err
	}
	return e.verifySubtreeClosed()
}

// DisableSIMD forces the portable scalar classifier for this run, bypassing
// CPU feature detection even on hardware that supports SWAR-width block
// scanning. Corresponds to Config.EnableSIMD at the facade layer (spec.md
// §6.4's advisory override).
func (e *Executor) DisableSIMD() { e.scalarOnly = true }

// runOnSubtree is the main dispatch loop: fetch the lookahead event if
// empty, dispatch on its kind, repeat until the stream is exhausted or the
// outermost container has closed (spec.md §4.5.1).
func (e *Executor) runOnSubtree(p *classify.Pipeline) error {
	for {
		if !e.hasNext {
			ev, ok, err := p.Next()
			if err != nil {
				return wrapClassifyErr(err, 0)
			}
			if !ok {
				return nil
			}
			e.next = ev
			e.hasNext = true
		}
		ev := e.next
		e.hasNext = false

		switch ev.Kind {
		case classify.EventColon:
			if err := e.handleColon(p, ev.Index); err != nil {
				return err
			}
		case classify.EventComma:
			if err := e.handleComma(p, ev.Index); err != nil {
				return err
			}
		case classify.EventOpenCurly:
			if err := e.handleOpening(p, false, ev.Index); err != nil {
				return err
			}
		case classify.EventOpenSquare:
			if err := e.handleOpening(p, true, ev.Index); err != nil {
				return err
			}
		case classify.EventCloseCurly, classify.EventCloseSquare:
			atRoot, err := e.handleClosing(p, ev.Index)
			if err != nil {
				return err
			}
			if atRoot {
				return nil
			}
		}
	}
}

func (e *Executor) verifySubtreeClosed() error {
	if e.depth != 0 {
		return ErrMissingClosingCharacter
	}
	return nil
}

func (e *Executor) toRaw(idx int) int   { return idx + e.pad }
func (e *Executor) fromRaw(idx int) int { return idx - e.pad }

// recordAtomicMatch searches forward from fromRaw (inclusive) for the first
// non-whitespace byte and records it as an atomic match (spec.md §4.5.7).
func (e *Executor) recordAtomicMatch(fromRaw int) error {
	i, _, ok := e.in.SeekNonWhitespaceForward(fromRaw)
	if !ok {
		return &MissingItemError{Index: e.fromRaw(fromRaw)}
	}
	return e.rec.RecordMatch(e.fromRaw(i), e.depth, result.Atomic)
}

// recordComplexMatch searches forward from fromRaw for the opening bracket
// of the kind matching isSquare and records a complex match there.
func (e *Executor) recordComplexMatch(fromRaw int, isSquare bool) error {
	needle := byte('{')
	if isSquare {
		needle = '['
	}
	i, _, ok := e.in.SeekForward(fromRaw, needle)
	if !ok {
		return &MissingItemError{Index: e.fromRaw(fromRaw)}
	}
	return e.rec.RecordMatch(e.fromRaw(i), e.depth, result.Complex)
}

// findPrecedingColon locates the colon that must introduce the member name
// preceding an opening bracket at idx, or ok=false at depth zero (a root
// container has no preceding member) or on malformed input.
func (e *Executor) findPrecedingColon(idx int) (int, bool) {
	if e.depth == 0 {
		return 0, false
	}
	raw := e.toRaw(idx)
	i, c, ok := e.in.SeekNonWhitespaceBackward(raw - 1)
	if !ok || c != ':' {
		return 0, false
	}
	return e.fromRaw(i), true
}

// isMatch reports whether the member name immediately preceding colonIdx
// (already verified to exist) equals memberName.
func (e *Executor) isMatch(colonIdx int, memberName string, rawLen int) (bool, error) {
	rawColon := e.toRaw(colonIdx)
	closeQuote, ok := e.in.SeekBackward(rawColon-1, '"')
	if !ok {
		return false, &MalformedStringQuotesError{Index: e.fromRaw(rawColon - 1)}
	}
	start := closeQuote - rawLen
	if start < 1 {
		return false, nil
	}
	// The byte just before the name must be its opening quote; otherwise
	// the name is only a suffix of a longer key.
	if i, c, ok := e.in.SeekNonWhitespaceBackward(start - 1); !ok || i != start-1 || c != '"' {
		return false, nil
	}
	return e.in.IsMemberMatch(start, closeQuote, memberName), nil
}

// transitionTo moves the executor to target, pushing a stack frame only
// when something the restored state would need to recover is actually
// changing: the automaton state itself, list-ness, or whether the current
// state was mid-search through a list (spec.md §4.5.2 / §9's stack-frugality
// note).
func (e *Executor) transitionTo(target automaton.StateID, targetIsList bool) {
	table := e.aut.Table(e.state)
	searchingList := e.aut.IsAccepting(table.Fallback) || e.aut.HasAnyArrayItemTransition(e.state)
	if target != e.state || targetIsList != e.isList || searchingList {
		e.stack.Push(StackFrame{Depth: e.depth, State: e.state, IsList: e.isList, ArrayCount: e.arrayCount})
		e.state = target
	}
}

// needsNoEscaping reports whether name would appear byte-for-byte
// identical inside a JSON string — no quote, backslash, or control
// character requiring escaping. Head-skip's substring search looks for
// exactly this literal spelling, so a name that could legally be spelled
// multiple ways (escaped or not) is excluded rather than risk silently
// missing an occurrence spelled differently than expected.
func needsNoEscaping(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '"' || c == '\\' || c < 0x20 {
			return false
		}
	}
	return true
}

func incrementArrayCount(c uint64) uint64 {
	if c == math.MaxUint64 {
		return c
	}
	return c + 1
}

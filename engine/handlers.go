package engine

import (
	"github.com/corejp/corejp/automaton"
	"github.com/corejp/corejp/classify"
)

// handleColon processes a ':' event (spec.md §4.5.2): the value it
// introduces either opens a container (handled separately by the next
// Opening event) or is atomic, in which case it's matched here directly
// against every member transition and the fallback.
func (e *Executor) handleColon(p *classify.Pipeline, idx int) error {
	if _, c, ok := e.in.SeekNonWhitespaceForward(e.toRaw(idx + 1)); ok {
		if c == '{' || c == '[' {
			return nil
		}
	}

	table := e.aut.Table(e.state)
	anyMatched := false
	for _, m := range table.MemberTransitions {
		if !e.aut.IsAccepting(m.Target) {
			continue
		}
		matched, err := e.isMatch(idx, m.Name, m.RawLen)
		if err != nil {
			return err
		}
		if matched {
			if err := e.recordAtomicMatch(e.toRaw(idx + 1)); err != nil {
				return err
			}
			anyMatched = true
			break
		}
	}
	if !anyMatched && e.aut.IsAccepting(table.Fallback) {
		if err := e.recordAtomicMatch(e.toRaw(idx + 1)); err != nil {
			return err
		}
	}

	if anyMatched && e.aut.IsUnitary(e.state) {
		return e.tailSkip(p)
	}
	return nil
}

// tailSkip implements spec.md §4.5.3's tail-skip: once a unitary
// state's one productive transition has fired, nothing else in the current
// container can possibly match, so the rest of it is skipped wholesale
// instead of walked event by event.
func (e *Executor) tailSkip(p *classify.Pipeline) error {
	ev, ok, err := p.Next()
	if err != nil {
		return wrapClassifyErr(err, 0)
	}
	if !ok {
		return nil
	}
	switch ev.Kind {
	case classify.EventCloseCurly, classify.EventCloseSquare:
		e.next, e.hasNext = ev, true
		return nil
	case classify.EventComma:
		if err := e.rec.RecordValueTerminator(ev.Index, e.depth); err != nil {
			return err
		}
	case classify.EventOpenCurly, classify.EventOpenSquare:
		// A sibling container opened first; skip it whole so the search
		// below counts depth from the current container, not from it.
		if _, err := p.SkipToMatchingCloser(e.depth + 1); err != nil {
			return wrapClassifyErr(err, ev.Index)
		}
	}
	closer, err := p.SkipToMatchingCloser(e.depth)
	if err != nil {
		return wrapClassifyErr(err, ev.Index)
	}
	e.next, e.hasNext = closer, true
	return nil
}

// handleComma processes a ',' event (spec.md §4.5.2): it closes the
// preceding sibling's value and, inside a list, advances the array index
// counter an array-index transition might care about.
func (e *Executor) handleComma(p *classify.Pipeline, idx int) error {
	if err := e.rec.RecordValueTerminator(idx, e.depth); err != nil {
		return err
	}
	if !e.isList {
		return nil
	}
	e.arrayCount = incrementArrayCount(e.arrayCount)

	if _, c, ok := e.in.SeekNonWhitespaceForward(e.toRaw(idx + 1)); ok {
		if c == '{' || c == '[' {
			return nil
		}
	}
	table := e.aut.Table(e.state)
	if e.aut.IsAccepting(table.Fallback) || e.aut.HasArrayIndexTransitionToAccepting(e.state, e.arrayCount) {
		return e.recordAtomicMatch(e.toRaw(idx + 1))
	}
	return nil
}

// handleOpening processes a '{' or '[' event (spec.md §4.5.4): it decides
// which transition, if any, this new container matches against the
// current state, descends into it, and reconfigures the classifier's
// colon/comma gating for whatever is now the active state.
func (e *Executor) handleOpening(p *classify.Pipeline, isSquare bool, idx int) error {
	anyMatched := false
	var target automaton.StateID

	if e.isList {
		table := e.aut.Table(e.state)
		for _, a := range table.ArrayTransitions {
			if a.Label.Matches(e.arrayCount) {
				target = a.Target
				anyMatched = true
				break
			}
		}
	} else if colonIdx, ok := e.findPrecedingColon(idx); ok {
		table := e.aut.Table(e.state)
		for _, m := range table.MemberTransitions {
			matched, err := e.isMatch(colonIdx, m.Name, m.RawLen)
			if err != nil {
				return err
			}
			if matched {
				target = m.Target
				anyMatched = true
				break
			}
		}
	}

	if anyMatched {
		e.transitionTo(target, isSquare)
		if e.aut.IsAccepting(target) {
			if err := e.recordComplexMatch(e.toRaw(idx), isSquare); err != nil {
				return err
			}
		}
	} else if e.depth != 0 {
		fallback := e.aut.Table(e.state).Fallback
		if e.aut.IsRejecting(fallback) {
			closer, err := p.SkipToMatchingCloser(e.depth + 1)
			if err != nil {
				return wrapClassifyErr(err, idx)
			}
			return e.rec.RecordValueTerminator(closer.Index, e.depth)
		}
		e.transitionTo(fallback, isSquare)
		if e.aut.IsAccepting(fallback) {
			if err := e.recordComplexMatch(e.toRaw(idx), isSquare); err != nil {
				return err
			}
		}
	}

	if e.maxDepth > 0 && e.depth+1 > e.maxDepth {
		return &DepthAboveLimitError{Index: idx}
	}
	e.depth++
	e.isList = isSquare
	needsCommas := false

	if e.isList {
		table := e.aut.Table(e.state)
		fallbackAccepting := e.aut.IsAccepting(table.Fallback)
		if fallbackAccepting || e.aut.HasAnyArrayItemTransition(e.state) {
			needsCommas = true
			e.arrayCount = 0
			if fallbackAccepting || e.aut.HasFirstArrayIndexTransitionToAccepting(e.state) {
				if _, c, ok := e.in.SeekNonWhitespaceForward(e.toRaw(idx + 1)); ok {
					if c != '{' && c != '[' && c != ']' {
						if err := e.recordAtomicMatch(e.toRaw(idx + 1)); err != nil {
							return err
						}
					}
				}
			}
		}
	}

	switch {
	case !e.isList && e.aut.HasTransitionToAccepting(e.state):
		p.SetEmitColons(true, idx)
		p.SetEmitCommas(true, idx)
	case needsCommas:
		p.SetEmitColons(false, idx)
		p.SetEmitCommas(true, idx)
	default:
		p.SetEmitColons(false, idx)
		p.SetEmitCommas(false, idx)
	}
	return nil
}

// handleClosing processes a '}' or ']' event (spec.md §4.5.5): it restores
// whatever state governed the parent container, re-running the tail-skip
// check in case that restored state is itself unitary. Returns atRoot=true
// once the outermost container has closed, ending the run.
func (e *Executor) handleClosing(p *classify.Pipeline, idx int) (bool, error) {
	if e.depth == 0 {
		return false, &DepthBelowZeroError{Index: idx}
	}
	// A closing bracket can terminate two distinct pending spans: a final
	// child matched without a following comma, living at the depth we're
	// about to leave, and the container itself if it was matched as a
	// complex value, living at the depth we're about to return to. Each
	// recorder only acts when it actually has something open at the depth
	// given, so calling both is a no-op for whichever one doesn't apply.
	// The child's span ends at the bracket; the container's own span ends
	// one past it, so it includes the bracket.
	if err := e.rec.RecordValueTerminator(idx, e.depth); err != nil {
		return false, err
	}
	e.depth--
	if err := e.rec.RecordValueTerminator(idx+1, e.depth); err != nil {
		return false, err
	}

	if frame, ok := e.stack.PopIfAtOrBelow(e.depth); ok {
		e.state = frame.State
		e.isList = frame.IsList
		e.arrayCount = frame.ArrayCount
	}

	if e.depth == 0 {
		return true, nil
	}

	if e.aut.IsUnitary(e.state) {
		return false, e.tailSkip(p)
	}

	switch {
	case !e.isList && e.aut.HasTransitionToAccepting(e.state):
		p.SetEmitColons(true, idx)
		p.SetEmitCommas(true, idx)
	case e.isList && (e.aut.IsAccepting(e.aut.Table(e.state).Fallback) || e.aut.HasAnyArrayItemTransition(e.state)):
		p.SetEmitColons(false, idx)
		p.SetEmitCommas(true, idx)
	default:
		p.SetEmitColons(false, idx)
		p.SetEmitCommas(false, idx)
	}
	return false, nil
}

package classify

import "errors"

// ErrMissingClosingCharacter and ErrDepthBelowZero mirror the engine-level
// errors of the same name (spec.md §7); the classifier can observe both
// conditions first, while scanning ahead during a skip, so it needs its own
// sentinels for the engine to wrap.
var (
	ErrMissingClosingCharacter = errors.New("classify: stream ended before matching closer")
	ErrDepthBelowZero          = errors.New("classify: closer appeared below starting depth")
)

// SkipToMatchingCloser advances the pipeline past the remainder of the
// subtree currently open at currentDepth, returning the Closing event that
// brings depth back to currentDepth-1. This is spec.md §4.4's on-demand
// depth classifier, specialized to the one question the executor's tail and
// head skips ever ask: "where does this subtree end?" — rather than
// reporting a running depth at every byte, it only ever needs the single
// matching-closer index, so it is built directly on top of the structural
// event stream (open/close events are always present in that stream
// regardless of the colon/comma gating toggles) instead of a separate
// popcount pass.
func (p *Pipeline) SkipToMatchingCloser(currentDepth int) (Event, error) {
	depth := currentDepth
	for {
		ev, ok, err := p.Next()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return Event{}, ErrMissingClosingCharacter
		}
		switch ev.Kind {
		case EventOpenCurly, EventOpenSquare:
			depth++
		case EventCloseCurly, EventCloseSquare:
			depth--
			if depth == currentDepth-1 {
				return ev, nil
			}
			if depth < 0 {
				return Event{}, ErrDepthBelowZero
			}
		}
	}
}

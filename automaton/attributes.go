package automaton

// StateAttributes is a packed bitset of precomputed facts about a DFA state,
// computed once at compile time so the engine never has to re-derive them
// while executing. Mirrors the teacher's packed-flags idiom in
// dfa/lazy/state.go, generalized to the six flags spec.md §3.3 names.
type StateAttributes uint8

const (
	// AttrAccepting marks a state that is itself a match (depth-complete).
	AttrAccepting StateAttributes = 1 << iota
	// AttrRejecting marks the single absorbing non-matching sink state.
	AttrRejecting
	// AttrTransitionsToAccepting marks a state whose fallback transition, or
	// any of whose array/member transitions, leads directly to an accepting
	// state; the executor enables colon and comma events for an object
	// frame only in such a state.
	AttrTransitionsToAccepting
	// AttrHasArrayTransition marks a state with at least one array
	// transition, so the executor knows to track array indices here.
	AttrHasArrayTransition
	// AttrHasArrayTransitionToAccepting marks a state with an array
	// transition leading directly to an accepting state.
	AttrHasArrayTransitionToAccepting
	// AttrUnitary marks a state whose fallback transition is the rejecting
	// state and which has exactly one transition, matching at most one node,
	// so at most one child can ever match from it — the tail-skip
	// optimization's trigger (spec.md §4.1.3).
	AttrUnitary
)

func (a StateAttributes) IsAccepting() bool                  { return a&AttrAccepting != 0 }
func (a StateAttributes) IsRejecting() bool                  { return a&AttrRejecting != 0 }
func (a StateAttributes) TransitionsToAccepting() bool       { return a&AttrTransitionsToAccepting != 0 }
func (a StateAttributes) HasArrayTransition() bool           { return a&AttrHasArrayTransition != 0 }
func (a StateAttributes) HasArrayTransitionToAccepting() bool {
	return a&AttrHasArrayTransitionToAccepting != 0
}
func (a StateAttributes) IsUnitary() bool { return a&AttrUnitary != 0 }

func (a StateAttributes) String() string {
	if a == 0 {
		return "(none)"
	}
	s := ""
	add := func(flag StateAttributes, name string) {
		if a&flag != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	add(AttrAccepting, "ACCEPTING")
	add(AttrRejecting, "REJECTING")
	add(AttrTransitionsToAccepting, "TRANSITIONS_TO_ACCEPTING")
	add(AttrHasArrayTransition, "HAS_ARRAY_TRANSITION")
	add(AttrHasArrayTransitionToAccepting, "HAS_ARRAY_TRANSITION_TO_ACCEPTING")
	add(AttrUnitary, "UNITARY")
	return s
}

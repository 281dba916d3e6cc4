package automaton

// The methods below are thin, named wrappers the executor calls instead of
// poking at StateTable/StateAttributes fields directly — grounded on
// `original_source/.../engine/main.rs`'s own call shape
// (`self.automaton.is_accepting(target)`,
// `self.automaton.has_array_index_transition_to_accepting(state, &count)`,
// ...), which assumes an Automaton with exactly this query surface.

// IsAccepting reports whether id is an accepting state.
func (a Automaton) IsAccepting(id StateID) bool { return a.States[id].Attributes.IsAccepting() }

// IsRejecting reports whether id is the rejecting sink (or behaves like it).
func (a Automaton) IsRejecting(id StateID) bool { return a.States[id].Attributes.IsRejecting() }

// IsUnitary reports whether id can take at most one non-rejecting transition
// before falling back to rejection (spec.md §4.1.3 / §4.5.3's tail-skip
// trigger).
func (a Automaton) IsUnitary(id StateID) bool { return a.States[id].Attributes.IsUnitary() }

// HasTransitionToAccepting reports whether any transition out of id — the
// fallback, a member transition, or an array transition — leads directly to
// an accepting state.
func (a Automaton) HasTransitionToAccepting(id StateID) bool {
	return a.States[id].Attributes.TransitionsToAccepting()
}

// HasAnyArrayItemTransition reports whether id has at least one array
// transition at all, regardless of where it leads.
func (a Automaton) HasAnyArrayItemTransition(id StateID) bool {
	return a.States[id].Attributes.HasArrayTransition()
}

// HasArrayIndexTransitionToAccepting reports whether some array transition
// out of id both matches index and leads to an accepting state.
func (a Automaton) HasArrayIndexTransitionToAccepting(id StateID, index uint64) bool {
	if !a.States[id].Attributes.HasArrayTransitionToAccepting() {
		return false
	}
	for _, t := range a.States[id].ArrayTransitions {
		if t.Label.Matches(index) && a.IsAccepting(t.Target) {
			return true
		}
	}
	return false
}

// HasFirstArrayIndexTransitionToAccepting reports whether id accepts the
// list's very first element (index 0) via some array transition — the
// "first-element-of-a-list" special case spec.md §4.5.4 calls out, since the
// first element has no preceding comma to trigger handleComma.
func (a Automaton) HasFirstArrayIndexTransitionToAccepting(id StateID) bool {
	return a.HasArrayIndexTransitionToAccepting(id, 0)
}

// DescendantMemberSelector reports whether this automaton is, in its
// entirety, the bare descendant-member query "$..name" — not merely an
// initial state shaped like one, but the complete query with nothing
// before or after it. The check requires: the initial state's fallback is
// itself (the only way anything but the named member advances the search
// is to keep searching, at any depth); its only other transition matches
// exactly one member name; it has no array transitions; the matched target
// is accepting; and the target's own table is the same shape as the
// initial state's, so the post-match state keeps searching for further
// (possibly nested) occurrences exactly like the initial state did. That
// last condition is what makes it safe for the head-skip optimization
// (spec.md §4.5.6) to treat every occurrence of the member name as an
// independent match, found directly via substring search over the raw
// input, without tracking any automaton state transitions at all.
func (a Automaton) DescendantMemberSelector() (name string, target StateID, ok bool) {
	if len(a.States) != 3 {
		return "", 0, false
	}
	init := a.Table(InitialState)
	if init.Fallback != InitialState {
		return "", 0, false
	}
	if len(init.MemberTransitions) != 1 || len(init.ArrayTransitions) != 0 {
		return "", 0, false
	}
	m := init.MemberTransitions[0]
	if !a.IsAccepting(m.Target) {
		return "", 0, false
	}
	tgt := a.Table(m.Target)
	if tgt.Fallback != InitialState || len(tgt.ArrayTransitions) != 0 {
		return "", 0, false
	}
	if len(tgt.MemberTransitions) != 1 || tgt.MemberTransitions[0].Name != m.Name || tgt.MemberTransitions[0].Target != m.Target {
		return "", 0, false
	}
	return m.Name, m.Target, true
}

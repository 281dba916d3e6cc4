package automaton

import "fmt"

// memberEntry is one row of an in-progress member transition table: a name
// paired with the superstate it leads to (union of every NFA state's target
// that shares the name, within the superstate being expanded).
type memberEntry struct {
	name   string
	target superState
}

// minimizer holds the mutable state of a single NFA→DFA compilation, built
// by subset construction with the "checkpoint" normalization spec.md §3.2
// describes: rather than tracking a fully general superstate per DFA state
// (which would make the state space unbounded), every superstate is folded
// down to the part reachable from its most recent Recursive ("descendant")
// NFA state, which bounds the DFA regardless of how deep the matched JSON
// document nests. Ported from original_source's minimizer.rs Minimizer.
type minimizer struct {
	nfa         NFA
	cfg         Config
	states      []StateTable
	ids         map[superState]StateID
	checkpoints map[superState]NfaStateID
	accepting   map[StateID]bool
	worklist    []superState
}

// Compile builds a DFA automaton from an NFA per spec.md §3. The NFA's last
// state must be NfaAccepting; every earlier state must be NfaDirect or
// NfaRecursive. An empty NFA compiles to the trivial always-rejecting
// automaton (SPEC_FULL.md §5's empty-query fast path).
func Compile(nfa NFA, cfg Config) (*Automaton, error) {
	if len(nfa.States) == 0 {
		return &Automaton{States: []StateTable{{Attributes: AttrRejecting}}}, nil
	}
	if len(nfa.States) > 256 {
		return nil, &CompilerError{Err: fmt.Errorf("%w: %d states exceeds 256-state id space", ErrBadNFA, len(nfa.States))}
	}
	last := nfa.States[len(nfa.States)-1]
	if last.Kind != NfaAccepting {
		return nil, &CompilerError{State: NfaStateID(len(nfa.States) - 1), Err: fmt.Errorf("%w: last state must be accepting", ErrBadNFA)}
	}
	for i, st := range nfa.States[:len(nfa.States)-1] {
		if st.Kind == NfaAccepting {
			return nil, &CompilerError{State: NfaStateID(i), Err: fmt.Errorf("%w: accepting state must be unique and last", ErrBadNFA)}
		}
	}

	m := &minimizer{
		nfa:         nfa,
		cfg:         cfg,
		states:      []StateTable{{Attributes: AttrRejecting}},
		ids:         map[superState]StateID{{}: RejectingState},
		checkpoints: map[superState]NfaStateID{},
		accepting:   map[StateID]bool{},
	}

	initial := singleton(0)
	initID := StateID(len(m.states))
	m.ids[initial] = initID
	m.states = append(m.states, StateTable{})
	m.worklist = append(m.worklist, initial)
	if initial.contains(nfa.AcceptingID()) {
		m.accepting[initID] = true
	}

	for len(m.worklist) > 0 {
		if cfg.MaxDFAStates > 0 && len(m.states) > cfg.MaxDFAStates {
			return nil, TooComplex(cfg.MaxDFAStates)
		}
		s := m.worklist[len(m.worklist)-1]
		m.worklist = m.worklist[:len(m.worklist)-1]
		if err := m.expand(s); err != nil {
			return nil, err
		}
	}

	return &Automaton{States: m.states}, nil
}

func (m *minimizer) expand(s superState) error {
	currentID := m.ids[s]
	ckptID, hasCkpt := m.determineCheckpoint(s)

	wildcard := superState{}
	for _, id := range s.iter() {
		if m.nfa.States[id].Kind == NfaAccepting {
			continue
		}
		if m.nfa.States[id].Transition.Kind == TransWildcard {
			next, err := m.nfa.Next(id)
			if err != nil {
				return &CompilerError{State: id, Err: err}
			}
			wildcard.insert(next)
		}
	}
	if hasCkpt {
		wildcard.insert(ckptID)
	}

	var memberOrder []string
	members := map[string]superState{}
	arraySet := &arrayTransitionSet{}

	for _, id := range s.iter() {
		if m.nfa.States[id].Kind == NfaAccepting {
			continue
		}
		st := m.nfa.States[id]
		switch st.Transition.Kind {
		case TransMember:
			next, err := m.nfa.Next(id)
			if err != nil {
				return &CompilerError{State: id, Err: err}
			}
			newSet := wildcard.union(singleton(next))
			if existing, ok := members[st.Transition.Name]; ok {
				members[st.Transition.Name] = existing.union(newSet)
			} else {
				memberOrder = append(memberOrder, st.Transition.Name)
				members[st.Transition.Name] = newSet
			}
		case TransArray:
			next, err := m.nfa.Next(id)
			if err != nil {
				return &CompilerError{State: id, Err: err}
			}
			arraySet.add(st.Transition.Label, wildcard.union(singleton(next)))
		}
	}

	fallbackID := m.normalizeAndActivate(wildcard, hasCkpt, ckptID)

	memberTransitions := make([]MemberTransition, 0, len(memberOrder))
	for _, name := range memberOrder {
		target := m.normalizeAndActivate(members[name], hasCkpt, ckptID)
		memberTransitions = append(memberTransitions, MemberTransition{Name: name, Target: target, RawLen: quotedByteLen(name)})
	}

	arrayTransitions := make([]ArrayTransition, 0, len(arraySet.entries))
	for _, e := range arraySet.entries {
		target := m.normalizeAndActivate(e.target, hasCkpt, ckptID)
		arrayTransitions = append(arrayTransitions, ArrayTransition{Label: e.label, Target: target})
	}

	attrs := StateAttributes(0)
	if m.accepting[currentID] {
		attrs |= AttrAccepting
	}
	transitionsToAccepting := m.accepting[fallbackID]
	for _, mt := range memberTransitions {
		if m.accepting[mt.Target] {
			transitionsToAccepting = true
		}
	}
	hasArrayToAccepting := false
	for _, at := range arrayTransitions {
		if m.accepting[at.Target] {
			transitionsToAccepting = true
			hasArrayToAccepting = true
		}
	}
	if transitionsToAccepting {
		attrs |= AttrTransitionsToAccepting
	}
	if len(arrayTransitions) > 0 {
		attrs |= AttrHasArrayTransition
		if hasArrayToAccepting {
			attrs |= AttrHasArrayTransitionToAccepting
		}
	}
	if fallbackID == RejectingState && isUnitaryTransitionSet(memberTransitions, arrayTransitions) {
		attrs |= AttrUnitary
	}

	m.states[currentID] = StateTable{
		Fallback:          fallbackID,
		MemberTransitions: memberTransitions,
		ArrayTransitions:  arrayTransitions,
		Attributes:        attrs,
	}
	return nil
}

// isUnitaryTransitionSet reports whether this state has exactly one
// productive transition, and — if that transition is an array transition —
// whether its label can match at most one array index (spec.md §3.2/§4.1.3:
// UNITARY requires not just a rejecting fallback but a single transition
// that can fire at most once; a slice like [2:10] is a single
// ArrayTransition but matches many indices, so it must not be treated as
// unitary or tailSkip would stop after the first matching element).
func isUnitaryTransitionSet(members []MemberTransition, arrays []ArrayTransition) bool {
	if len(members)+len(arrays) != 1 {
		return false
	}
	if len(arrays) == 1 {
		return arrays[0].Label.MatchesAtMostOnce()
	}
	return true
}

// determineCheckpoint finds the Recursive NFA state this superstate should
// remember as its normalization anchor: either s is itself a checkpoint (a
// singleton wrapping a Recursive state), or it inherited one when it was
// first discovered as a transition target.
func (m *minimizer) determineCheckpoint(s superState) (NfaStateID, bool) {
	if id, ok := s.isSingleton(); ok {
		if m.nfa.States[id].Kind == NfaRecursive {
			return id, true
		}
	}
	if ckpt, ok := m.checkpoints[s]; ok {
		return ckpt, true
	}
	return 0, false
}

// normalizeAndActivate applies checkpoint normalization to a raw transition
// target, then returns its DFA state id, allocating a fresh one (and
// enqueuing it for expansion) if this is the first time the normalized
// superstate has been seen.
func (m *minimizer) normalizeAndActivate(raw superState, hasCkpt bool, ckptID NfaStateID) StateID {
	norm := raw
	if hasCkpt {
		norm.insert(ckptID)
	}
	var cutoff NfaStateID
	foundRecursive := false
	for _, id := range norm.iter() {
		if m.nfa.States[id].Kind == NfaRecursive && (!foundRecursive || id > cutoff) {
			cutoff = id
			foundRecursive = true
		}
	}
	if foundRecursive {
		norm.removeAllBefore(cutoff)
	}

	if id, ok := m.ids[norm]; ok {
		return id
	}
	id := StateID(len(m.states))
	m.ids[norm] = id
	m.states = append(m.states, StateTable{})
	m.worklist = append(m.worklist, norm)
	if hasCkpt {
		m.checkpoints[norm] = ckptID
	}
	if norm.contains(m.nfa.AcceptingID()) {
		m.accepting[id] = true
	}
	return id
}

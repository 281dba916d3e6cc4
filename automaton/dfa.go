package automaton

// StateID identifies a DFA state. At least 8 bits of range are guaranteed
// (spec.md §3.3); state 0 is always the rejecting sink and state 1 is always
// the initial state, matching minimizer.rs's invariants exactly.
type StateID uint32

// RejectingState and InitialState are the two fixed, well-known DFA states
// every compiled Automaton carries.
const (
	RejectingState StateID = 0
	InitialState   StateID = 1
)

// MemberTransition matches a JSON object member by exact name.
type MemberTransition struct {
	Name   string
	Target StateID
	// RawLen is the byte length Name would occupy once JSON-escaped back
	// into a document (quote characters not included). For names with no
	// characters requiring escaping this equals len(Name); the engine uses
	// it to locate a member name's opening quote by counting backward from
	// its closing quote without re-scanning the document for escapes.
	RawLen int
}

// ArrayTransition matches a JSON array element against a label. Within a
// StateTable, ArrayTransitions are stored in priority order: the first whose
// label matches a given index is the one taken (spec.md §3.1, §4.1.2).
type ArrayTransition struct {
	Label  ArrayLabel
	Target StateID
}

// StateTable is one compiled DFA state: its fallback (wildcard / no other
// transition matched) target, its member and array transitions, and its
// precomputed attributes. Mirrors minimizer.rs's StateTable exactly.
type StateTable struct {
	Fallback         StateID
	MemberTransitions []MemberTransition
	ArrayTransitions  []ArrayTransition
	Attributes       StateAttributes
}

// MemberTarget returns the target of the first member transition whose name
// matches, or (Fallback, false) if none does.
func (t StateTable) MemberTarget(name string) (StateID, bool) {
	for _, m := range t.MemberTransitions {
		if m.Name == name {
			return m.Target, true
		}
	}
	return t.Fallback, false
}

// ArrayTarget returns the target of the first array transition whose label
// matches index, or (Fallback, false) if none does.
func (t StateTable) ArrayTarget(index uint64) (StateID, bool) {
	for _, a := range t.ArrayTransitions {
		if a.Label.Matches(index) {
			return a.Target, true
		}
	}
	return t.Fallback, false
}

// Automaton is a compiled DFA: a dense table of states indexed by StateID.
type Automaton struct {
	States []StateTable
}

// Table returns the StateTable for id.
func (a Automaton) Table(id StateID) StateTable {
	return a.States[id]
}

// IsSelectRootQuery reports whether this automaton is the trivial single
// "$" query: its NFA was a lone Accepting state, so the initial DFA state is
// itself accepting with no outgoing transitions. Grounded on
// `original_source/.../engine/main.rs`'s `is_select_root_query` fast path
// (see SPEC_FULL.md §5); the engine special-cases this to skip classification
// entirely.
func (a Automaton) IsSelectRootQuery() bool {
	if len(a.States) <= int(InitialState) {
		return false
	}
	init := a.States[InitialState]
	return init.Attributes.IsAccepting() && len(init.MemberTransitions) == 0 && len(init.ArrayTransitions) == 0
}

// IsEmptyQuery reports whether this automaton can never match anything: its
// only states are the rejecting sink (or it has none at all). Grounded on
// the same fast-path family in `engine/main.rs`.
func (a Automaton) IsEmptyQuery() bool {
	return len(a.States) <= int(InitialState)
}

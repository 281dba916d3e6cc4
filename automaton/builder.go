package automaton

// Builder constructs an NFA state list incrementally, segment by segment,
// instead of requiring callers to hand-index NfaState slices. It is sugar
// over NFA, not a JSONPath parser: SPEC_FULL.md §1 scopes surface-syntax
// parsing out, and spec.md §6.1 takes an ordered NFA state list as its
// compiler input either way. Mirrors the teacher's nfa.Builder
// (`_examples/coregx-coregex/nfa/builder.go`): append-only, ID-returning
// methods, finished off by a single terminal call.
type Builder struct {
	states []NfaState
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Member appends an NfaDirect state matching a single named object member
// and returns its id.
func (b *Builder) Member(name string) NfaStateID {
	id := NfaStateID(len(b.states))
	b.states = append(b.states, Direct(Member(name)))
	return id
}

// DescendantMember appends an NfaRecursive state matching a named object
// member at any depth and returns its id.
func (b *Builder) DescendantMember(name string) NfaStateID {
	id := NfaStateID(len(b.states))
	b.states = append(b.states, Recursive(Member(name)))
	return id
}

// ArrayIndex appends an NfaDirect state matching a single array index and
// returns its id.
func (b *Builder) ArrayIndex(index uint64) NfaStateID {
	id := NfaStateID(len(b.states))
	b.states = append(b.states, Direct(Array(IndexLabel(index))))
	return id
}

// DescendantArrayIndex appends an NfaRecursive state matching a single array
// index at any depth and returns its id.
func (b *Builder) DescendantArrayIndex(index uint64) NfaStateID {
	id := NfaStateID(len(b.states))
	b.states = append(b.states, Recursive(Array(IndexLabel(index))))
	return id
}

// ArraySlice appends an NfaDirect state matching an array slice and returns
// its id.
func (b *Builder) ArraySlice(start uint64, end *uint64, step uint64) NfaStateID {
	id := NfaStateID(len(b.states))
	b.states = append(b.states, Direct(Array(SliceLabel(start, end, step))))
	return id
}

// DescendantArraySlice appends an NfaRecursive state matching an array slice
// at any depth and returns its id.
func (b *Builder) DescendantArraySlice(start uint64, end *uint64, step uint64) NfaStateID {
	id := NfaStateID(len(b.states))
	b.states = append(b.states, Recursive(Array(SliceLabel(start, end, step))))
	return id
}

// Wildcard appends an NfaDirect state matching any single child and returns
// its id.
func (b *Builder) Wildcard() NfaStateID {
	id := NfaStateID(len(b.states))
	b.states = append(b.states, Direct(Wildcard()))
	return id
}

// DescendantWildcard appends an NfaRecursive state matching any descendant
// and returns its id. This is the `..` segment's natural encoding: every
// node in the subtree is visited, matching spec.md §3.1's description of
// Recursive states.
func (b *Builder) DescendantWildcard() NfaStateID {
	id := NfaStateID(len(b.states))
	b.states = append(b.states, Recursive(Wildcard()))
	return id
}

// Build finalizes the NFA by appending the unique terminal Accepting state
// and returns the completed NFA, ready for Compile.
func (b *Builder) Build() NFA {
	states := make([]NfaState, len(b.states)+1)
	copy(states, b.states)
	states[len(b.states)] = Accepting
	return NFA{States: states}
}

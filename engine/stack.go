package engine

import "github.com/corejp/corejp/automaton"

// StackFrame captures the executor state that needs restoring once the
// subtree it was pushed for closes: the depth at which it was pushed, the
// automaton state and list-ness active at that depth, and the array index
// counter a list frame was part-way through.
type StackFrame struct {
	Depth      int
	State      automaton.StateID
	IsList     bool
	ArrayCount uint64
}

// SmallStack is the executor's explicit call stack, pushed only on the
// state changes spec.md §3.3 calls "meaningful" (transitionTo) rather than
// on every object/array opened — most subtrees never need a frame at all,
// since their contents don't affect which automaton state governs them.
// The teacher's analogous structure (nfa's superState bitsets) leans on a
// fixed-size value type; ported here as a plain growable slice; see
// DESIGN.md for why a SmallVec-style pack dependency (smallvec) isn't
// wired: the upstream crate is Rust-only and has no Go package in the
// example pack that plays the same no-alloc-for-small-N role.
type SmallStack struct {
	frames []StackFrame
}

// Push appends a new frame.
func (s *SmallStack) Push(f StackFrame) {
	s.frames = append(s.frames, f)
}

// Peek returns the top frame without removing it, or ok=false if empty.
func (s *SmallStack) Peek() (StackFrame, bool) {
	if len(s.frames) == 0 {
		return StackFrame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// PopIfAtOrBelow removes and returns the top frame if its recorded depth is
// at or above depth (meaning the subtree it was pushed for is now closing),
// or ok=false if the stack is empty or its top belongs to an outer subtree.
func (s *SmallStack) PopIfAtOrBelow(depth int) (StackFrame, bool) {
	f, ok := s.Peek()
	if !ok || f.Depth < depth {
		return StackFrame{}, false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return f, true
}

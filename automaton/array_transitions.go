package automaton

// arrayEntry is one row of an in-progress (pre-DFA-allocation) array
// transition table: a label paired with the superstate it leads to.
type arrayEntry struct {
	label  ArrayLabel
	target superState
}

// arrayTransitionSet accumulates array transitions for a single superstate
// being expanded during minimization, splitting overlapping labels so that
// the final, priority-ordered table behaves as if array labels partitioned
// the index space exactly — without requiring closed-form set subtraction
// over slices, which spec.md §3.1 notes isn't always expressible as a single
// ArrayLabel. Grounded on minimizer.rs's ArrayTransitionSet: "as long as the
// engine always processes transitions in order and takes the first one that
// matches", emitting an extra high-priority intersection row in front of the
// two overlapping originals is sufficient, even when it doesn't compute the
// two originals' exact remainders.
type arrayTransitionSet struct {
	entries []arrayEntry
}

// add inserts (label, target) into the set, splitting against every
// existing entry it overlaps. A label that overlaps nothing is appended
// last. Otherwise the intersection rows (each leading to the union of both
// targets) go first, then the new label, then all earlier entries.
func (s *arrayTransitionSet) add(label ArrayLabel, target superState) {
	var splits []arrayEntry
	for _, e := range s.entries {
		if inter, ok := label.Intersect(e.label); ok {
			splits = append(splits, arrayEntry{label: inter, target: e.target.union(target)})
		}
	}
	if len(splits) == 0 {
		s.entries = append(s.entries, arrayEntry{label: label, target: target})
		return
	}
	merged := make([]arrayEntry, 0, len(splits)+1+len(s.entries))
	merged = append(merged, splits...)
	merged = append(merged, arrayEntry{label: label, target: target})
	merged = append(merged, s.entries...)
	s.entries = merged
}

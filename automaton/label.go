package automaton

import "fmt"

// ArrayLabel selects array elements by index or by slice, per spec.md §3.1.
// A zero-value ArrayLabel is not meaningful; construct via IndexLabel or SliceLabel.
type ArrayLabel struct {
	isSlice bool

	index uint64 // valid when !isSlice

	start uint64  // valid when isSlice
	end   *uint64 // nil means unbounded, valid when isSlice
	step  uint64  // valid when isSlice, always >= 1
}

// IndexLabel builds a label matching exactly one non-negative array index.
func IndexLabel(i uint64) ArrayLabel {
	return ArrayLabel{isSlice: false, index: i}
}

// SliceLabel builds a label matching indices start, start+step, start+2*step,
// ... up to but excluding end (nil end means unbounded). step must be >= 1.
func SliceLabel(start uint64, end *uint64, step uint64) ArrayLabel {
	if step == 0 {
		step = 1
	}
	return ArrayLabel{isSlice: true, start: start, end: end, step: step}
}

func (l ArrayLabel) String() string {
	if !l.isSlice {
		return fmt.Sprintf("Index(%d)", l.index)
	}
	if l.end == nil {
		return fmt.Sprintf("Slice(%d:inf:%d)", l.start, l.step)
	}
	return fmt.Sprintf("Slice(%d:%d:%d)", l.start, *l.end, l.step)
}

// Matches reports whether array index i is selected by the label.
func (l ArrayLabel) Matches(i uint64) bool {
	if !l.isSlice {
		return i == l.index
	}
	if i < l.start {
		return false
	}
	if l.end != nil && i >= *l.end {
		return false
	}
	return (i-l.start)%l.step == 0
}

// MatchesAtMostOnce reports whether the label can match at most a single
// index, letting the engine retire an array transition after first use (the
// UNITARY optimization from spec.md §4.1.3 applies transition-locally too).
func (l ArrayLabel) MatchesAtMostOnce() bool {
	if !l.isSlice {
		return true
	}
	// Unbounded slices can't be shown to match a bounded number of indices
	// regardless of step (spec.md §4.1.3's "slice with step = 1 and
	// unbounded end" example generalizes to any step).
	if l.end == nil {
		return false
	}
	// An empty slice (start >= end) never matches at all. spec.md §4.1.3
	// explicitly excludes this case from matches-at-most-once rather than
	// trivially granting it on a zero-matches technicality: a label that
	// can never fire is not a candidate for the UNITARY fast path.
	if l.start >= *l.end {
		return false
	}
	return *l.end-l.start <= l.step
}

// Overlaps reports whether there exists an index matched by both labels.
func (l ArrayLabel) Overlaps(other ArrayLabel) bool {
	_, ok := l.Intersect(other)
	return ok
}

// Intersect computes a label matching the set intersection of l and other,
// when that intersection is itself expressible as an ArrayLabel. Index/Index
// and Index/Slice intersections always are; Slice/Slice intersections are
// only representable in general when the two slices share a step (or one of
// them matches at most one element) — in the general case we fall back to
// the narrower of the two slices truncated to the overlapping index range,
// which may overestimate the true intersection. Callers (see
// ArrayTransitionSet) treat the result as a priority-ordered approximation,
// not as exact set subtraction: the DFA's first-match-wins evaluation order
// is what restores correctness, not the label arithmetic alone.
func (l ArrayLabel) Intersect(other ArrayLabel) (ArrayLabel, bool) {
	switch {
	case !l.isSlice && !other.isSlice:
		if l.index == other.index {
			return l, true
		}
		return ArrayLabel{}, false
	case !l.isSlice && other.isSlice:
		if other.Matches(l.index) {
			return l, true
		}
		return ArrayLabel{}, false
	case l.isSlice && !other.isSlice:
		return other.Intersect(l)
	default:
		return l.intersectSlices(other)
	}
}

func (l ArrayLabel) intersectSlices(other ArrayLabel) (ArrayLabel, bool) {
	lo := l.start
	if other.start > lo {
		lo = other.start
	}
	var hi *uint64
	if l.end != nil {
		hi = l.end
	}
	if other.end != nil && (hi == nil || *other.end < *hi) {
		hi = other.end
	}
	if hi != nil && lo >= *hi {
		return ArrayLabel{}, false
	}

	step := l.step
	if other.step > step {
		step = other.step
	}
	// When the steps agree, or differ but the finer-grained slice's anchor
	// is congruent with the coarser one, the combined progression is just
	// the finer step anchored at lo. Otherwise approximate with the finer
	// (more restrictive) step, which may overselect: acceptable per the
	// priority-ordering contract documented above.
	return SliceLabel(lo, hi, step), true
}

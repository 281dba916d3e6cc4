package automaton

import "math/bits"

// superState is a set of up to 256 NfaStateIDs, represented as a 256-bit
// bitset. Mirrors the teacher's internal/sparse.Set role (a small, fixed,
// cache-friendly set of state ids) but specialized to the fixed 256-state
// ceiling this automaton package imposes on NFA size (NfaStateID is uint8).
type superState [4]uint64

func singleton(id NfaStateID) superState {
	var s superState
	s.insert(id)
	return s
}

func (s *superState) insert(id NfaStateID) {
	s[id/64] |= 1 << (id % 64)
}

func (s superState) contains(id NfaStateID) bool {
	return s[id/64]&(1<<(id%64)) != 0
}

func (s superState) isEmpty() bool {
	return s[0] == 0 && s[1] == 0 && s[2] == 0 && s[3] == 0
}

// isSingleton reports whether s has exactly one member, returning it.
func (s superState) isSingleton() (NfaStateID, bool) {
	count := 0
	var found NfaStateID
	for w, word := range s {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			found = NfaStateID(w*64 + b)
			count++
			if count > 1 {
				return 0, false
			}
			word &= word - 1
		}
	}
	return found, count == 1
}

func (s superState) union(other superState) superState {
	var r superState
	for i := range s {
		r[i] = s[i] | other[i]
	}
	return r
}

// removeAllBefore removes every member strictly less than cutoff, per the
// checkpoint normalization rule from spec.md §3.2 (ported from
// minimizer.rs's Minimizer::normalize): a superstate only ever needs to
// remember NFA states from at or after its most recent Recursive checkpoint.
func (s *superState) removeAllBefore(cutoff NfaStateID) {
	for id := NfaStateID(0); id < cutoff; id++ {
		s[id/64] &^= 1 << (id % 64)
	}
}

// iter returns the members of s in ascending order.
func (s superState) iter() []NfaStateID {
	var out []NfaStateID
	for w, word := range s {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, NfaStateID(w*64+b))
			word &= word - 1
		}
	}
	return out
}

package automaton

import "testing"

func TestIndexLabelMatches(t *testing.T) {
	l := IndexLabel(3)
	for i := uint64(0); i < 6; i++ {
		want := i == 3
		if got := l.Matches(i); got != want {
			t.Errorf("IndexLabel(3).Matches(%d) = %v, want %v", i, got, want)
		}
	}
	if !l.MatchesAtMostOnce() {
		t.Error("index label should match at most once")
	}
}

func TestSliceLabelMatches(t *testing.T) {
	end := uint64(10)
	l := SliceLabel(2, &end, 3)
	want := map[uint64]bool{0: false, 1: false, 2: true, 3: false, 4: false, 5: true, 6: false, 8: true, 9: false, 10: false, 11: false}
	for i, w := range want {
		if got := l.Matches(i); got != w {
			t.Errorf("Matches(%d) = %v, want %v", i, got, w)
		}
	}
	if l.MatchesAtMostOnce() {
		t.Error("multi-element slice should not report matches-at-most-once")
	}
}

func TestSliceLabelUnboundedEnd(t *testing.T) {
	l := SliceLabel(3, nil, 2)
	if !l.Matches(3) || !l.Matches(5) || !l.Matches(1001) {
		t.Error("unbounded slice should match arbitrarily large indices on-step")
	}
	if l.Matches(4) || l.Matches(2) {
		t.Error("unbounded slice should not match off-step or before-start indices")
	}
}

func TestSliceLabelSingleElement(t *testing.T) {
	end := uint64(4)
	l := SliceLabel(3, &end, 1)
	if !l.MatchesAtMostOnce() {
		t.Error("slice [3:4:1] should report matches-at-most-once")
	}
}

func TestIndexIndexIntersect(t *testing.T) {
	a, b := IndexLabel(3), IndexLabel(3)
	inter, ok := a.Intersect(b)
	if !ok || !inter.Matches(3) {
		t.Fatalf("equal index labels should intersect to themselves")
	}
	c := IndexLabel(4)
	if _, ok := a.Intersect(c); ok {
		t.Fatal("distinct index labels should not overlap")
	}
}

func TestIndexSliceIntersect(t *testing.T) {
	idx := IndexLabel(3)
	slice := SliceLabel(3, nil, 2)
	inter, ok := idx.Intersect(slice)
	if !ok || !inter.Matches(3) || inter.Matches(4) {
		t.Fatalf("Index(3) ∩ Slice(3::2) should be exactly {3}, got %v", inter)
	}
	if !idx.Overlaps(slice) {
		t.Error("Overlaps should agree with Intersect")
	}

	offSlice := SliceLabel(4, nil, 2)
	if idx.Overlaps(offSlice) {
		t.Error("Index(3) should not overlap Slice(4::2)")
	}
}

func TestSliceSliceIntersect(t *testing.T) {
	e1 := uint64(5)
	s1 := SliceLabel(3, &e1, 1) // 3,4
	s2 := SliceLabel(3, nil, 2) // 3,5,7,...
	inter, ok := s1.Intersect(s2)
	if !ok {
		t.Fatal("overlapping slices should intersect")
	}
	if !inter.Matches(3) {
		t.Errorf("intersection should at least contain the shared index 3, got %v", inter)
	}

	e3 := uint64(2)
	disjoint := SliceLabel(10, nil, 1)
	far := SliceLabel(0, &e3, 1)
	if disjoint.Overlaps(far) {
		t.Error("disjoint ranges must not overlap")
	}
}

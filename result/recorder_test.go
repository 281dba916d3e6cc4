package result

import "testing"

func TestCountRecorder(t *testing.T) {
	r := NewCountRecorder()
	for i := 0; i < 3; i++ {
		if err := r.RecordMatch(i, 0, Atomic); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.RecordValueTerminator(5, 0); err != nil {
		t.Fatal(err)
	}
	if r.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", r.Count())
	}
}

func TestIndexRecorder(t *testing.T) {
	sink := &SliceSink[int]{}
	r := NewIndexRecorder(sink)
	for _, idx := range []int{6, 8, 10} {
		if err := r.RecordMatch(idx, 1, Atomic); err != nil {
			t.Fatal(err)
		}
	}
	want := []int{6, 8, 10}
	if len(sink.Values) != len(want) {
		t.Fatalf("got %v, want %v", sink.Values, want)
	}
	for i := range want {
		if sink.Values[i] != want[i] {
			t.Fatalf("got %v, want %v", sink.Values, want)
		}
	}
}

func TestApproxSpanRecorderPairsMatchWithTerminatorAtSameDepth(t *testing.T) {
	sink := &SliceSink[Span]{}
	r := NewApproxSpanRecorder(sink)

	// A complex match at depth 0 (e.g. the array itself), closed by a
	// terminator at the same depth.
	if err := r.RecordMatch(5, 0, Complex); err != nil {
		t.Fatal(err)
	}
	// An atomic match nested one level deeper, opened and closed before the
	// outer span closes.
	if err := r.RecordMatch(7, 1, Atomic); err != nil {
		t.Fatal(err)
	}
	if err := r.RecordValueTerminator(8, 1); err != nil {
		t.Fatal(err)
	}
	if err := r.RecordValueTerminator(12, 0); err != nil {
		t.Fatal(err)
	}

	want := []Span{{Start: 7, End: 8}, {Start: 5, End: 12}}
	if len(sink.Values) != len(want) {
		t.Fatalf("got %v, want %v", sink.Values, want)
	}
	for i := range want {
		if sink.Values[i] != want[i] {
			t.Fatalf("got %v, want %v", sink.Values, want)
		}
	}
}

func TestApproxSpanRecorderIgnoresTerminatorWithNoOpenSpan(t *testing.T) {
	sink := &SliceSink[Span]{}
	r := NewApproxSpanRecorder(sink)
	if err := r.RecordValueTerminator(3, 0); err != nil {
		t.Fatal(err)
	}
	if len(sink.Values) != 0 {
		t.Fatalf("expected no spans emitted, got %v", sink.Values)
	}
}

type fakeByteSource struct{ data []byte }

func (f fakeByteSource) Bytes(start, end int) []byte { return f.data[start:end] }

func TestNodesRecorderMaterializesTrimmedRange(t *testing.T) {
	doc := []byte(`{"a":[1,2]}`)
	sink := &SliceSink[Node]{}
	r := NewNodesRecorder(sink, fakeByteSource{data: doc})

	if err := r.RecordMatch(5, 0, Complex); err != nil { // the array "[1,2]"
		t.Fatal(err)
	}
	if err := r.RecordValueTerminator(10, 0); err != nil {
		t.Fatal(err)
	}

	if len(sink.Values) != 1 {
		t.Fatalf("got %v, want 1 node", sink.Values)
	}
	got := sink.Values[0]
	if got.Start != 5 || got.End != 10 || string(got.Raw) != "[1,2]" {
		t.Fatalf("got %+v, want Start=5 End=10 Raw=[1,2]", got)
	}
}

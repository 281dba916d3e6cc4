package engine

import (
	"testing"

	"github.com/corejp/corejp/automaton"
	"github.com/corejp/corejp/input"
	"github.com/corejp/corejp/result"
)

func compile(t *testing.T, b *automaton.Builder) *automaton.Automaton {
	t.Helper()
	aut, err := automaton.Compile(b.Build(), automaton.Config{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return aut
}

// $.a against {"a":1,"b":2} should match the atomic value 1 at its first
// byte, index 5, and nothing else: "b"'s value never matches any member
// transition, and the query has no array segments.
func TestExecutorMatchesSimpleMember(t *testing.T) {
	b := automaton.NewBuilder()
	b.Member("a")
	aut := compile(t, b)

	doc := `{"a":1,"b":2}`
	buf := input.NewBuffer([]byte(doc), 16)

	count := result.NewCountRecorder()
	if err := New(aut, buf, count, 16, 0, false).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", count.Count())
	}

	sink := &result.SliceSink[int]{}
	idxRec := result.NewIndexRecorder(sink)
	if err := New(aut, buf, idxRec, 16, 0, false).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []int{5}
	if len(sink.Values) != len(want) || sink.Values[0] != want[0] {
		t.Fatalf("indices = %v, want %v", sink.Values, want)
	}
}

// $.a.b against {"a":{"b":7}} should match the nested atomic value 7.
func TestExecutorMatchesNestedMember(t *testing.T) {
	b := automaton.NewBuilder()
	b.Member("a")
	b.Member("b")
	aut := compile(t, b)

	doc := `{"a":{"b":7}}`
	buf := input.NewBuffer([]byte(doc), 16)

	sink := &result.SliceSink[int]{}
	idxRec := result.NewIndexRecorder(sink)
	if err := New(aut, buf, idxRec, 16, 0, false).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// '{'=0 '"'=1 a=2 '"'=3 ':'=4 '{'=5 '"'=6 b=7 '"'=8 ':'=9 '7'=10 '}'=11 '}'=12
	want := []int{10}
	if len(sink.Values) != len(want) || sink.Values[0] != want[0] {
		t.Fatalf("indices = %v, want %v", sink.Values, want)
	}
}

// $.a[1] against {"a":[10,20,30]} should match the second element, 20.
func TestExecutorMatchesArrayIndex(t *testing.T) {
	b := automaton.NewBuilder()
	b.Member("a")
	b.ArrayIndex(1)
	aut := compile(t, b)

	doc := `{"a":[10,20,30]}`
	buf := input.NewBuffer([]byte(doc), 16)

	sink := &result.SliceSink[int]{}
	idxRec := result.NewIndexRecorder(sink)
	if err := New(aut, buf, idxRec, 16, 0, false).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// '{'0 '"'1 a2 '"'3 :4 [5 1,0 6,7 ,8 2,0 9,10 ,11 3,0 12,13 ]14 }15
	// element "20" starts at index 9.
	want := []int{9}
	if len(sink.Values) != len(want) || sink.Values[0] != want[0] {
		t.Fatalf("indices = %v, want %v", sink.Values, want)
	}
}

// The trivial "$" query matches the whole document as one complex node.
func TestExecutorSelectRoot(t *testing.T) {
	aut := compile(t, automaton.NewBuilder())

	doc := `  {"a":1}  `
	buf := input.NewBuffer([]byte(doc), 16)

	count := result.NewCountRecorder()
	if err := New(aut, buf, count, 16, 0, false).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", count.Count())
	}
}

// An empty automaton (IsEmptyQuery) never matches anything.
func TestExecutorEmptyQuery(t *testing.T) {
	aut := &automaton.Automaton{}
	doc := `{"a":1}`
	buf := input.NewBuffer([]byte(doc), 16)

	count := result.NewCountRecorder()
	if err := New(aut, buf, count, 16, 0, false).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", count.Count())
	}
}

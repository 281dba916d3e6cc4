package classify

import (
	"testing"

	"github.com/corejp/corejp/input"
)

func TestSkipToMatchingCloserSkipsNestedSubtree(t *testing.T) {
	// [1,[2,3],4]
	//  0123456789 0
	doc := `[1,[2,3],4]`
	buf := input.NewBuffer([]byte(doc), 16)
	p := NewPipeline(buf, 16)

	opener, ok, err := p.Next()
	if err != nil || !ok || opener.Kind != EventOpenSquare || opener.Index != 0 {
		t.Fatalf("expected outer '[' at 0, got %+v ok=%v err=%v", opener, ok, err)
	}

	closer, err := p.SkipToMatchingCloser(1)
	if err != nil {
		t.Fatalf("SkipToMatchingCloser: %v", err)
	}
	if closer.Kind != EventCloseSquare || closer.Index != 10 {
		t.Fatalf("expected matching ']' at 10, got %+v", closer)
	}

	// Stream should now be exhausted.
	if ev, ok, err := p.Next(); err != nil || ok {
		t.Fatalf("expected exhausted stream after matching closer, got %+v ok=%v err=%v", ev, ok, err)
	}
}

func TestSkipToMatchingCloserReportsMissingCloser(t *testing.T) {
	doc := `[1,2`
	buf := input.NewBuffer([]byte(doc), 4)
	p := NewPipeline(buf, 4)

	if _, ok, err := p.Next(); err != nil || !ok {
		t.Fatalf("priming Next(): ok=%v err=%v", ok, err)
	}

	if _, err := p.SkipToMatchingCloser(1); err != ErrMissingClosingCharacter {
		t.Fatalf("expected ErrMissingClosingCharacter, got %v", err)
	}
}

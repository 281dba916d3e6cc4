package input

import "testing"

func TestBufferPadding(t *testing.T) {
	doc := []byte(`{"a":1}`)
	b := NewBuffer(doc, 8)
	if b.Len() <= len(doc) {
		t.Fatalf("expected padded length > %d, got %d", len(doc), b.Len())
	}
	if b.Len()%8 != 0 {
		t.Errorf("padded length should be a multiple of block size, got %d", b.Len())
	}
	block, ok := b.Block(0, 8)
	if !ok || len(block) != 8 {
		t.Fatalf("expected an 8-byte first block, got %v ok=%v", block, ok)
	}
	if string(block[:len(doc)]) != string(doc) {
		t.Errorf("first block should start with the document, got %q", block)
	}
}

func TestBufferSeekForward(t *testing.T) {
	b := NewBuffer([]byte(`{"a":1,"b":2}`), 64)
	idx, c, ok := b.SeekForward(0, ':')
	if !ok || c != ':' || idx != 4 {
		t.Fatalf("SeekForward(0, ':') = (%d, %q, %v)", idx, c, ok)
	}
	idx, c, ok = b.SeekForward(idx+1, ':')
	if !ok || c != ':' || idx != 10 {
		t.Fatalf("second SeekForward(':') = (%d, %q, %v)", idx, c, ok)
	}
}

func TestBufferSeekBackward(t *testing.T) {
	b := NewBuffer([]byte(`{"a": 1}`), 64)
	idx, ok := b.SeekBackward(5, ':')
	if !ok || idx != 4 {
		t.Fatalf("SeekBackward(5, ':') = (%d, %v)", idx, ok)
	}
}

func TestBufferSeekNonWhitespace(t *testing.T) {
	b := NewBuffer([]byte(`{"a":   1}`), 64)
	idx, c, ok := b.SeekNonWhitespaceForward(5)
	if !ok || c != '1' || idx != 8 {
		t.Fatalf("SeekNonWhitespaceForward(5) = (%d, %q, %v)", idx, c, ok)
	}
}

func TestBufferIsMemberMatch(t *testing.T) {
	b := NewBuffer([]byte(`{"a\"b":1}`), 64)
	// raw bytes between the outer quotes: a\"b
	start, end := 2, 6
	if !b.IsMemberMatch(start, end, `a"b`) {
		t.Error(`expected a\"b to match unescaped name a"b`)
	}
	if b.IsMemberMatch(start, end, "ab") {
		t.Error("should not match without the embedded quote")
	}
}

func TestDecodeEscape(t *testing.T) {
	cases := []struct {
		in    string
		want  byte
		width int
	}{
		{`n`, '\n', 1},
		{`"`, '"', 1},
		{`u0041`, 'A', 5},
		{`u00e9`, 0, 0}, // non-ASCII: conservative no-match
	}
	for _, c := range cases {
		got, w := decodeEscape([]byte(c.in))
		if got != c.want || w != c.width {
			t.Errorf("decodeEscape(%q) = (%q, %d), want (%q, %d)", c.in, got, w, c.want, c.width)
		}
	}
}

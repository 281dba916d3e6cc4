package input

import "github.com/corejp/corejp/simd"

// Buffer is an in-memory, block-padded Input: the whole document lives in
// one contiguous byte slice, trailing-padded with ASCII spaces out to a
// multiple of the block size (plus one extra block, so every possible
// forward seek or block read has headroom without bounds-checking on every
// byte). Grounded on padding.rs's EndPaddedInput — the simpler of the two
// padding strategies there, since a fully in-memory document never needs
// leading padding to keep a backward seek from running off the start: index
// 0 is already a valid stopping point.
type Buffer struct {
	data []byte
}

// NewBuffer copies doc into a freshly padded Buffer sized to a multiple of
// blockSize.
func NewBuffer(doc []byte, blockSize int) *Buffer {
	if blockSize <= 0 {
		blockSize = 64
	}
	padded := len(doc)
	// Round up to a full block, then add one more block of padding so a
	// block read or forward seek starting anywhere in doc never needs a
	// short read at the tail.
	if rem := padded % blockSize; rem != 0 {
		padded += blockSize - rem
	}
	padded += blockSize

	data := make([]byte, padded)
	copy(data, doc)
	for i := len(doc); i < len(data); i++ {
		data[i] = ' '
	}
	return &Buffer{data: data}
}

func (b *Buffer) LeadingPaddingLen() int { return 0 }

func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) Block(i int, size int) ([]byte, bool) {
	start := i * size
	if start >= len(b.data) {
		return nil, false
	}
	end := start + size
	if end > len(b.data) {
		end = len(b.data)
	}
	return b.data[start:end], true
}

// SeekForward finds the first occurrence of any byte in needles at or after
// from. The one, two, and three-needle cases (every shape this engine
// actually calls with) dispatch to the teacher's SIMD-accelerated memchr
// family (simd.Memchr/Memchr2/Memchr3); anything else falls back to a plain
// scan rather than add needle counts the engine never uses.
func (b *Buffer) SeekForward(from int, needles ...byte) (int, byte, bool) {
	if from >= len(b.data) {
		return 0, 0, false
	}
	hay := b.data[from:]
	var rel int
	switch len(needles) {
	case 1:
		rel = simd.Memchr(hay, needles[0])
	case 2:
		rel = simd.Memchr2(hay, needles[0], needles[1])
	case 3:
		rel = simd.Memchr3(hay, needles[0], needles[1], needles[2])
	default:
		for i, c := range hay {
			for _, n := range needles {
				if c == n {
					return from + i, c, true
				}
			}
		}
		return 0, 0, false
	}
	if rel < 0 {
		return 0, 0, false
	}
	return from + rel, hay[rel], true
}

func (b *Buffer) SeekBackward(from int, needles ...byte) (int, bool) {
	if from >= len(b.data) {
		from = len(b.data) - 1
	}
	for i := from; i >= 0; i-- {
		c := b.data[i]
		for _, n := range needles {
			if c == n {
				return i, true
			}
		}
	}
	return 0, false
}

func (b *Buffer) SeekNonWhitespaceForward(from int) (int, byte, bool) {
	if from >= len(b.data) {
		return 0, 0, false
	}
	hay := b.data[from:]
	rel := simd.MemchrNotInTable(hay, whitespaceTable)
	if rel < 0 {
		return 0, 0, false
	}
	return from + rel, hay[rel], true
}

func (b *Buffer) SeekNonWhitespaceBackward(from int) (int, byte, bool) {
	if from >= len(b.data) {
		from = len(b.data) - 1
	}
	for i := from; i >= 0; i-- {
		if c := b.data[i]; !isWhitespace(c) {
			return i, c, true
		}
	}
	return 0, 0, false
}

// Bytes returns the raw byte range [start, end), satisfying
// result.ByteSource for node materialization.
func (b *Buffer) Bytes(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(b.data) {
		end = len(b.data)
	}
	if start >= end {
		return nil
	}
	return b.data[start:end]
}

func (b *Buffer) IsMemberMatch(start, end int, name string) bool {
	if end > len(b.data) || start < 0 || start > end {
		return false
	}
	raw := b.data[start:end]
	return unescapeEquals(raw, name)
}

// unescapeEquals compares raw (the bytes strictly between a pair of quotes
// in J) against name (the caller's already-unescaped member name), treating
// the handful of single-character JSON escape sequences as equivalent to
// the character they represent. This is intentionally not a full JSON
// string validator (spec.md §1's non-goals) — only as much escape handling
// as equality comparison requires (spec.md §6.2).
func unescapeEquals(raw []byte, name string) bool {
	i, j := 0, 0
	for i < len(raw) && j < len(name) {
		c := raw[i]
		if c == '\\' && i+1 < len(raw) {
			esc, width := decodeEscape(raw[i+1:])
			if width == 0 {
				return false
			}
			if name[j] != esc {
				return false
			}
			i += 1 + width
			j++
			continue
		}
		if c != name[j] {
			return false
		}
		i++
		j++
	}
	return i == len(raw) && j == len(name)
}

// decodeEscape reads a JSON escape sequence (without the leading backslash)
// and returns its single-byte equivalent plus the number of bytes consumed.
// \u escapes are only handled for the ASCII range, sufficient for member
// name comparison purposes; non-ASCII \u escapes report width 0 (no match),
// which is conservative but never produces a false positive.
func decodeEscape(s []byte) (byte, int) {
	if len(s) == 0 {
		return 0, 0
	}
	switch s[0] {
	case '"':
		return '"', 1
	case '\\':
		return '\\', 1
	case '/':
		return '/', 1
	case 'b':
		return '\b', 1
	case 'f':
		return '\f', 1
	case 'n':
		return '\n', 1
	case 'r':
		return '\r', 1
	case 't':
		return '\t', 1
	case 'u':
		if len(s) < 5 {
			return 0, 0
		}
		v := 0
		for k := 1; k <= 4; k++ {
			c := s[k]
			var digit int
			switch {
			case c >= '0' && c <= '9':
				digit = int(c - '0')
			case c >= 'a' && c <= 'f':
				digit = int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				digit = int(c-'A') + 10
			default:
				return 0, 0
			}
			v = v*16 + digit
		}
		if v > 0x7f {
			return 0, 0
		}
		return byte(v), 5
	default:
		return 0, 0
	}
}

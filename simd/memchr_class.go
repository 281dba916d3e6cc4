package simd

// MemchrNotInTable returns the index of the first byte in haystack for which
// table[b] is false, or -1 if every byte is in the table. Used by
// input.Buffer.SeekNonWhitespaceForward with input.whitespaceTable to skip
// runs of JSON insignificant whitespace.
//
// A 256-entry lookup table membership test doesn't reduce to the
// broadcast-and-XOR trick Memchr/Memchr2/Memchr3 use (there's no fixed byte
// value to broadcast), so this stays a linear scan — the same scalar path
// the teacher falls back to for its class-search functions.
func MemchrNotInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if !table[b] {
			return i
		}
	}
	return -1
}

package automaton

// quotedByteLen returns the number of raw bytes name would occupy when
// JSON-encoded as a string's content (the quote characters themselves not
// included): most bytes cost one, the handful requiring escaping cost two
// (or six for control characters with no short escape), mirroring the
// escape table input.decodeEscape understands on the way back in.
func quotedByteLen(name string) int {
	n := 0
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '"', '\\', '\b', '\f', '\n', '\r', '\t':
			n += 2
		default:
			if name[i] < 0x20 {
				n += 6
			} else {
				n++
			}
		}
	}
	return n
}

package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present. Used by engine.runHeadSkip to find each
// occurrence of a literal `"name":` pattern directly, without walking every
// structural event in between.
//
// The search is a rare-byte heuristic over Memchr: rather than comparing the
// whole needle at every position, it scans for needle's last byte (usually
// the most selective position in a quoted member-name pattern, since it's
// the `:` that follows the closing quote) and only verifies the full needle
// where that byte actually occurs.
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte := needle[needleLen-1]
	rareIdx := needleLen - 1

	searchStart := 0
	for {
		candidatePos := Memchr(haystack[searchStart:], rareByte)
		if candidatePos == -1 {
			return -1
		}
		candidatePos += searchStart

		needleStart := candidatePos - rareIdx
		if needleStart < 0 || needleStart+needleLen > haystackLen {
			searchStart = candidatePos + 1
			if searchStart >= haystackLen {
				return -1
			}
			continue
		}

		if bytes.Equal(haystack[needleStart:needleStart+needleLen], needle) {
			return needleStart
		}

		searchStart = candidatePos + 1
		if searchStart >= haystackLen {
			return -1
		}
	}
}

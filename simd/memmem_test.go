package simd

import (
	"bytes"
	"fmt"
	"testing"
)

func TestMemmem(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   []byte
		want     int
	}{
		{"empty_needle", []byte("hello"), []byte{}, 0},
		{"empty_haystack", []byte{}, []byte("x"), -1},
		{"single_byte_needle", []byte("hello"), []byte("e"), 1},
		{"at_start", []byte("hello world"), []byte("hello"), 0},
		{"at_end", []byte("hello world"), []byte("world"), 6},
		{"not_found", []byte("hello world"), []byte("xyz"), -1},
		{"needle_too_long", []byte("hi"), []byte("hello"), -1},
		{"repeated_prefix", []byte("aaaaabaaaa"), []byte("ab"), 4},
		{"member_name_pattern", []byte(`{"name":"John","age":30}`), []byte(`"age":`), 15},
		{"rare_byte_collides_first", []byte("aaaaaXb"), []byte("Xb"), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memmem(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if stdGot := bytes.Index(tt.haystack, tt.needle); got != stdGot {
				t.Errorf("Memmem != bytes.Index: got %d, stdlib %d (haystack=%q, needle=%q)",
					got, stdGot, tt.haystack, tt.needle)
			}
		})
	}
}

// TestMemmemNeedleSizes exercises the rare-byte verification path across a
// range of needle lengths, since engine.runHeadSkip's patterns ("name":)
// vary with the member name being searched for.
func TestMemmemNeedleSizes(t *testing.T) {
	for _, needleLen := range []int{2, 4, 8, 16, 33} {
		t.Run(fmt.Sprintf("needle_len_%d", needleLen), func(t *testing.T) {
			haystack := bytes.Repeat([]byte{'a'}, 256)
			needle := make([]byte, needleLen)
			for i := range needle {
				needle[i] = 'a'
			}
			needle[needleLen-1] = 'X'
			copy(haystack[200:], needle)

			got := Memmem(haystack, needle)
			want := 200
			if got != want {
				t.Errorf("got %d, want %d", got, want)
			}
		})
	}
}

func FuzzMemmem(f *testing.F) {
	f.Add([]byte("hello world"), []byte("world"))
	f.Add([]byte(""), []byte("x"))
	f.Add([]byte("x"), []byte(""))
	f.Add([]byte("aaaa"), []byte("aa"))
	f.Add([]byte{0, 1, 2, 3, 255}, []byte{2, 3})

	f.Fuzz(func(t *testing.T, haystack, needle []byte) {
		if got, want := Memmem(haystack, needle), bytes.Index(haystack, needle); got != want {
			t.Errorf("Memmem(%v, %v) = %d, want %d", haystack, needle, got, want)
		}
	})
}

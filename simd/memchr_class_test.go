package simd

import "testing"

func TestMemchrNotInTable(t *testing.T) {
	// mirrors input.whitespaceTable: space, tab, newline, carriage return.
	var whitespace [256]bool
	for _, c := range []byte(" \t\n\r") {
		whitespace[c] = true
	}

	tests := []struct {
		name     string
		haystack string
		want     int
	}{
		{"empty", "", -1},
		{"no_leading_whitespace", `{"a":1}`, 0},
		{"leading_spaces", "   42", 3},
		{"leading_mixed_whitespace", "\t\n  true", 4},
		{"all_whitespace", "   \t\n", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MemchrNotInTable([]byte(tt.haystack), &whitespace)
			if got != tt.want {
				t.Errorf("MemchrNotInTable(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestMemchrNotInTable_NilTable(t *testing.T) {
	if got := MemchrNotInTable([]byte("abc"), nil); got != -1 {
		t.Errorf("MemchrNotInTable with nil table = %d, want -1", got)
	}
}

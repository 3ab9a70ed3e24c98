// ABOUTME: Tests pinning the matcher to lockstep prefix semantics
// ABOUTME: Verifies ASCII case folding and that subsequence skipping is NOT performed

package match

import "testing"

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{"empty pattern matches everything", "", "anything", true},
		{"empty pattern matches empty", "", "", true},
		{"exact", "abc", "abc", true},
		{"proper prefix", "ab", "abc", true},
		{"candidate folded", "ab", "ABC", true},
		{"pattern folded", "AB", "abc", true},
		{"mixed folding", "aBc", "AbC", true},
		{"pattern longer than candidate", "abcd", "abc", false},
		{"candidate empty", "a", "", false},
		{"first byte differs", "b", "abc", false},
		{"no subsequence skipping", "ac", "ABC", false},
		{"interior match is not a prefix", "bc", "abc", false},
		{"non-letter bytes compare exactly", "a-b", "a-b!", true},
		{"digits are not folded", "1", "2", false},
		{"space is significant", " a", "a", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Prefix([]byte(tt.pattern), []byte(tt.candidate))
			if got != tt.want {
				t.Errorf("Prefix(%q, %q) = %v, want %v", tt.pattern, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	if fold('A') != 'a' || fold('Z') != 'z' {
		t.Error("uppercase letters must fold to lowercase")
	}
	if fold('a') != 'a' || fold('0') != '0' || fold('[') != '[' || fold('@') != '@' {
		t.Error("non-uppercase bytes must pass through unchanged")
	}
}

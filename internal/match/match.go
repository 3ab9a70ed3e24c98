// ABOUTME: Lockstep case-insensitive prefix comparator used to filter entries
// ABOUTME: ASCII-only folding; deliberately not a fuzzy or subsequence matcher

package match

// Prefix reports whether pattern occurs at the start of candidate under
// ASCII case folding. The walk is lockstep: pattern byte k must equal
// candidate byte k for every k until the pattern runs out. If the candidate
// runs out first the match fails. An empty pattern matches everything.
func Prefix(pattern, candidate []byte) bool {
	if len(pattern) > len(candidate) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if fold(pattern[i]) != fold(candidate[i]) {
			return false
		}
	}
	return true
}

// fold maps 'A'..'Z' to lowercase and leaves every other byte as-is.
func fold(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// ABOUTME: Entry store: parses raw input into entries and maintains the filtered match set
// ABOUTME: Entries are byte sub-slices of the arena-owned input buffer, never copies

package entry

import "github.com/skeeto/cmenu/internal/match"

// Set holds the parsed candidates, the indices of those matching the current
// pattern, and the selection cursor into the match list. The match list is a
// subsequence of the entry indices and preserves input order; the selection
// is re-clamped after every mutation.
type Set struct {
	entries  [][]byte
	matches  []int
	selected int
}

// Parse splits raw into non-empty runs delimited by NUL, LF, and CR. Two
// passes: the first counts runs so both backing slices are sized exactly,
// the second records the sub-slices. Consecutive, leading, and trailing
// delimiters produce no entries.
func Parse(raw []byte) *Set {
	n := 0
	runLen := 0
	for _, b := range raw {
		if isDelimiter(b) {
			if runLen > 0 {
				n++
			}
			runLen = 0
		} else {
			runLen++
		}
	}
	if runLen > 0 {
		n++
	}

	s := &Set{
		entries: make([][]byte, 0, n),
		matches: make([]int, 0, n),
	}
	start := 0
	for i, b := range raw {
		if isDelimiter(b) {
			if i > start {
				s.entries = append(s.entries, raw[start:i])
			}
			start = i + 1
		}
	}
	if len(raw) > start {
		s.entries = append(s.entries, raw[start:])
	}
	return s
}

func isDelimiter(b byte) bool {
	return b == 0 || b == '\n' || b == '\r'
}

// Refilter rebuilds the match list from scratch against pattern, keeping
// input order, then re-clamps the selection. Every pattern edit triggers a
// full rescan; there is no incremental diffing.
func (s *Set) Refilter(pattern []byte) {
	s.matches = s.matches[:0]
	for i, e := range s.entries {
		if match.Prefix(pattern, e) {
			s.matches = append(s.matches, i)
		}
	}
	s.clamp()
}

// Len returns the number of parsed entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// MatchCount returns the number of entries matching the current pattern.
func (s *Set) MatchCount() int {
	return len(s.matches)
}

// Match returns the text of the i-th match.
func (s *Set) Match(i int) []byte {
	return s.entries[s.matches[i]]
}

// Selected returns the currently selected match, or ok=false when the match
// list is empty.
func (s *Set) Selected() (text []byte, ok bool) {
	if len(s.matches) == 0 {
		return nil, false
	}
	return s.entries[s.matches[s.selected]], true
}

// SelectedIndex returns the selection cursor within the match list.
func (s *Set) SelectedIndex() int {
	return s.selected
}

// MoveUp moves the selection toward the top of the list, clamped.
func (s *Set) MoveUp() {
	s.selected--
	s.clamp()
}

// MoveDown moves the selection toward the bottom of the list, clamped.
func (s *Set) MoveDown() {
	s.selected++
	s.clamp()
}

// clamp forces the selection into [0, len(matches)-1]. With no matches the
// cursor parks at -1 and is treated as absent by Selected.
func (s *Set) clamp() {
	switch {
	case s.selected < 0:
		s.selected = 0
	case s.selected >= len(s.matches):
		s.selected = len(s.matches) - 1
	}
}

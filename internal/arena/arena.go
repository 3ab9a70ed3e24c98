// ABOUTME: Fixed-capacity bump allocator backing every allocation in the session
// ABOUTME: Raw input is committed from the low end; storage is carved from the top

package arena

import "errors"

// ErrNoSpace is returned when a request exceeds the remaining capacity.
var ErrNoSpace = errors.New("out of memory")

// Arena is one contiguous region with two cursors. CommitLow advances the
// low cursor over bytes filled in place (the raw input); Alloc moves the
// high cursor down. The span between the cursors is always free. Nothing is
// ever freed individually; the region is reclaimed at process exit.
type Arena struct {
	buf []byte
	lo  int
	hi  int
}

// New returns an arena over a fresh region of the given capacity.
func New(capacity int) *Arena {
	return &Arena{buf: make([]byte, capacity), hi: capacity}
}

// Alloc carves zeroed storage for count items of size bytes each from the
// top of the region. A zero count returns a valid empty slice without
// zeroing or consuming capacity. The overflow check is division based so a
// huge count cannot wrap the size*count product.
func (a *Arena) Alloc(size, count int) ([]byte, error) {
	if count == 0 {
		return a.buf[a.hi:a.hi], nil
	}
	if size <= 0 || count < 0 {
		return nil, ErrNoSpace
	}
	if count > (a.hi-a.lo)/size {
		return nil, ErrNoSpace
	}
	a.hi -= size * count
	out := a.buf[a.hi : a.hi+size*count]
	clear(out)
	return out, nil
}

// LowRegion returns the free span between the cursors for filling in place.
// The caller commits however much it filled with CommitLow.
func (a *Arena) LowRegion() []byte {
	return a.buf[a.lo:a.hi]
}

// CommitLow advances the low cursor over the first n bytes of LowRegion and
// returns the committed span, which stays valid for the arena's lifetime.
func (a *Arena) CommitLow(n int) []byte {
	out := a.buf[a.lo : a.lo+n]
	a.lo += n
	return out
}

// Available returns the number of free bytes between the cursors.
func (a *Arena) Available() int {
	return a.hi - a.lo
}

// ABOUTME: Virtual implements Terminal for testing without a real TTY.
// ABOUTME: Serves scripted input bytes, captures output, and tracks raw-mode transitions.

package terminal

import (
	"bytes"
	"errors"
	"sync"
)

// ErrNoInput is returned by Virtual.ReadByte once the scripted input is
// exhausted, standing in for a real tty read error.
var ErrNoInput = errors.New("virtual terminal: input exhausted")

// Virtual is a fake Terminal for unit tests. It records written output,
// tracks raw-mode transitions, and serves keystrokes from a scripted queue.
type Virtual struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	input      []byte
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int
}

// NewVirtual returns a Virtual terminal with the given dimensions.
func NewVirtual(width, height int) *Virtual {
	return &Virtual{width: width, height: height}
}

// Feed appends scripted input bytes for ReadByte to serve.
func (v *Virtual) Feed(p ...byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, p...)
}

// FeedString appends scripted input from a string.
func (v *Virtual) FeedString(s string) {
	v.Feed([]byte(s)...)
}

// EnterRawMode records a raw-mode entry.
func (v *Virtual) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *Virtual) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *Virtual) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// ReadByte pops the next scripted input byte, or fails with ErrNoInput.
func (v *Virtual) ReadByte() (byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return 0, ErrNoInput
	}
	b := v.input[0]
	v.input = v.input[1:]
	return b, nil
}

// Write appends data to the internal output buffer.
func (v *Virtual) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.Write(p)
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *Virtual) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// IsRawMode reports whether raw mode is currently active.
func (v *Virtual) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *Virtual) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *Virtual) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

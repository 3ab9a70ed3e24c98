// ABOUTME: TTY implements Terminal over /dev/tty using golang.org/x/term.
// ABOUTME: Opens the controlling terminal directly so the tool works inside pipelines.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// TTY is the real controlling terminal. Keystrokes are read from and the
// screen is drawn to /dev/tty, leaving stdin and stdout free for the
// pipeline.
type TTY struct {
	mu       sync.Mutex
	file     *os.File
	oldState *term.State
	rbuf     [1]byte
}

// Open opens /dev/tty read-write.
func Open() (*TTY, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening /dev/tty: %w", err)
	}
	return &TTY{file: f}, nil
}

// FromFile wraps an already-open terminal device, such as a pty end.
func FromFile(f *os.File) *TTY {
	return &TTY{file: f}
}

// File exposes the underlying device, e.g. for color profile detection.
func (t *TTY) File() *os.File {
	return t.file
}

// EnterRawMode switches the tty to raw mode, saving the previous attributes.
// Calling it again while already raw is a no-op.
func (t *TTY) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.file.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the attributes saved by EnterRawMode. Safe to call
// when not in raw mode.
func (t *TTY) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.file.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *TTY) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.file.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// ReadByte blocks until one byte arrives from the terminal.
func (t *TTY) ReadByte() (byte, error) {
	for {
		n, err := t.file.Read(t.rbuf[:])
		if err != nil {
			return 0, fmt.Errorf("tty input error: %w", err)
		}
		if n > 0 {
			return t.rbuf[0], nil
		}
	}
}

// Write sends bytes to the terminal screen.
func (t *TTY) Write(p []byte) (int, error) {
	n, err := t.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to tty: %w", err)
	}
	return n, nil
}

// Close closes the device handle. It does not restore the mode; pair it
// with ExitRawMode.
func (t *TTY) Close() error {
	return t.file.Close()
}

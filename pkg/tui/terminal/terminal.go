// ABOUTME: Defines the Terminal interface for raw mode, size queries, byte input, and output.
// ABOUTME: Abstracts the controlling tty so the picker can run against real or virtual terminals.

package terminal

// Terminal abstracts the controlling terminal: raw mode transitions, a
// one-time size query, blocking single-byte reads, and screen output.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
}

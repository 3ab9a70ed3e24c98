// ABOUTME: Byte-level key decoding for the raw-mode input loop.
// ABOUTME: Reads one byte at a time; arrow keys arrive as ESC [ A/B triples.

package key

// ByteReader is the blocking single-byte input source, normally the
// controlling terminal in raw mode.
type ByteReader interface {
	ReadByte() (byte, error)
}

// Type enumerates the keystrokes the picker reacts to.
type Type int

const (
	Rune      Type = iota // Printable ASCII, space through tilde
	Enter                 // Carriage return (0x0D)
	CtrlC                 // Interrupt byte (0x03)
	Backspace             // DEL (0x7F)
	Up                    // ESC [ A
	Down                  // ESC [ B
	Ignored               // Anything else; no state change, no redraw
)

const (
	byteEnter     = 0x0d
	byteCtrlC     = 0x03
	byteBackspace = 0x7f
	byteEscape    = 0x1b
	byteCSI       = '['
	byteUp        = 'A'
	byteDown      = 'B'
)

// Key is one decoded keystroke.
type Key struct {
	Type Type
	Rune byte
}

// Read blocks for the next keystroke. An escape byte pulls in the following
// byte, and a CSI introducer pulls in one more; any sequence other than
// ESC [ A or ESC [ B decodes as Ignored. Unprintable bytes outside the
// control set also decode as Ignored.
func Read(r ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{Type: Ignored}, err
	}

	switch b {
	case byteEnter:
		return Key{Type: Enter}, nil
	case byteCtrlC:
		return Key{Type: CtrlC}, nil
	case byteBackspace:
		return Key{Type: Backspace}, nil
	case byteEscape:
		return readEscape(r)
	}

	if b >= 0x20 && b <= 0x7e {
		return Key{Type: Rune, Rune: b}, nil
	}
	return Key{Type: Ignored}, nil
}

// readEscape decodes the remainder of an ESC-prefixed sequence.
func readEscape(r ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{Type: Ignored}, err
	}
	if b != byteCSI {
		return Key{Type: Ignored}, nil
	}

	b, err = r.ReadByte()
	if err != nil {
		return Key{Type: Ignored}, err
	}
	switch b {
	case byteUp:
		return Key{Type: Up}, nil
	case byteDown:
		return Key{Type: Down}, nil
	}
	return Key{Type: Ignored}, nil
}

// typeNames provides human-readable labels for debug output.
var typeNames = map[Type]string{
	Enter:     "Enter",
	CtrlC:     "Ctrl+C",
	Backspace: "Backspace",
	Up:        "Up",
	Down:      "Down",
	Ignored:   "Ignored",
}

// String returns a human-readable representation of the Key.
func (k Key) String() string {
	if k.Type == Rune {
		return string(k.Rune)
	}
	if name, ok := typeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

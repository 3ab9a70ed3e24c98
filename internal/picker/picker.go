// ABOUTME: Synchronous input/render loop: reads keystrokes, edits the pattern, moves the selection.
// ABOUTME: Terminal states are confirm (Enter with matches) and cancel (Ctrl-C, or Enter without).

package picker

import (
	"errors"
	"fmt"

	"github.com/skeeto/cmenu/internal/arena"
	"github.com/skeeto/cmenu/internal/entry"
	"github.com/skeeto/cmenu/internal/log"
	"github.com/skeeto/cmenu/pkg/tui/key"
	"github.com/skeeto/cmenu/pkg/tui/terminal"
)

// PatternMax is the fixed pattern capacity in bytes. Typing one character
// beyond it is fatal.
const PatternMax = 1 << 12 // 4 KiB

// ErrPatternTooLong is returned when a keystroke would grow the pattern
// past PatternMax.
var ErrPatternTooLong = errors.New("pattern too long")

// Picker owns one interactive session over an entry set. The terminal
// height and width are captured once at construction; resizes during the
// session are not tracked.
type Picker struct {
	term    terminal.Terminal
	set     *entry.Set
	styles  Styles
	pattern []byte
	plen    int
	width   int
	height  int
}

// New builds a picker for the given terminal and entry set. The pattern
// buffer is carved from the arena up front.
func New(term terminal.Terminal, set *entry.Set, a *arena.Arena, styles Styles) (*Picker, error) {
	w, h, err := term.Size()
	if err != nil {
		return nil, err
	}
	pattern, err := a.Alloc(1, PatternMax)
	if err != nil {
		return nil, fmt.Errorf("allocating pattern buffer: %w", err)
	}
	return &Picker{
		term:    term,
		set:     set,
		styles:  styles,
		pattern: pattern,
		width:   w,
		height:  h,
	}, nil
}

// Run drives the session until Enter or Ctrl-C. It returns the confirmed
// entry text, or ok=false on cancellation or on Enter with no matches.
// The terminal mode is restored on every return path, errors included.
func (p *Picker) Run() (selected []byte, ok bool, err error) {
	p.set.Refilter(nil)
	if err := p.draw(); err != nil {
		return nil, false, err
	}
	if err := p.term.EnterRawMode(); err != nil {
		return nil, false, err
	}
	defer func() {
		if rerr := p.term.ExitRawMode(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	for {
		k, err := key.Read(p.term)
		if err != nil {
			return nil, false, err
		}

		switch k.Type {
		case key.Enter:
			text, ok := p.set.Selected()
			log.Debug("session end: key=%s ok=%v", k, ok)
			return text, ok, nil
		case key.CtrlC:
			log.Debug("session end: key=%s", k)
			return nil, false, nil
		case key.Backspace:
			if p.plen > 0 {
				p.plen--
			}
		case key.Up:
			p.set.MoveUp()
		case key.Down:
			p.set.MoveDown()
		case key.Rune:
			if p.plen == PatternMax {
				return nil, false, ErrPatternTooLong
			}
			p.pattern[p.plen] = k.Rune
			p.plen++
		default: // key.Ignored: no state change, no redraw
			continue
		}

		// Leave raw mode around the redraw so the line writes are not
		// mangled by raw-mode output processing.
		if err := p.term.ExitRawMode(); err != nil {
			return nil, false, err
		}
		p.set.Refilter(p.pattern[:p.plen])
		if err := p.draw(); err != nil {
			return nil, false, err
		}
		if err := p.term.EnterRawMode(); err != nil {
			return nil, false, err
		}
	}
}

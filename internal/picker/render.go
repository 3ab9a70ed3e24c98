// ABOUTME: Screen rendering: clear sequence, prompt line, and the visible window of matches.
// ABOUTME: The window offset keeps the selected match on screen; rows never wrap.

package picker

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// clearScreen clears the visible screen and the scrollback.
const clearScreen = "\x1b[H\x1b[2J\x1b[3J"

// selectedMarker annotates the currently selected match row.
const selectedMarker = " (*)"

// draw renders one full frame: clear, the "> pattern" prompt line, then up
// to height-2 match rows. When the selection would fall below the window,
// the starting index is offset to keep it visible.
func (p *Picker) draw() error {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(p.styles.Prompt.Render(">"))
	b.Write(p.pattern[:p.plen])
	b.WriteByte('\n')

	sel := p.set.SelectedIndex()
	start := 0
	if sel > p.height-3 {
		start = sel - (p.height - 3)
	}

	rows := 0
	for i := start; i < p.set.MatchCount(); i++ {
		rows++
		if rows == p.height-1 {
			break
		}
		line := string(p.set.Match(i))
		if i == sel {
			line = p.styles.Selected.Render(p.truncate(line + selectedMarker))
		} else {
			line = p.truncate(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := p.term.Write([]byte(b.String()))
	return err
}

// truncate clips a row to the terminal width so a long entry cannot wrap
// and consume extra screen rows.
func (p *Picker) truncate(line string) string {
	if p.width <= 0 {
		return line
	}
	return runewidth.Truncate(line, p.width, "")
}

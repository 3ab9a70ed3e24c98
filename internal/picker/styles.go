// ABOUTME: lipgloss styles for the prompt and the selected match row.
// ABOUTME: Styles derive from the draw target; non-tty writers get identity styles.

package picker

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles controls how the prompt and the selected row are rendered.
type Styles struct {
	Prompt   lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles derives styles from the terminal the screen is drawn to:
// a bold prompt and a reverse-video selected row. When w is not a tty the
// renderer degrades to plain text, so test doubles stay byte-predictable.
func DefaultStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Prompt:   r.NewStyle().Bold(true),
		Selected: r.NewStyle().Reverse(true),
	}
}

// PlainStyles renders everything unstyled. Attribute-free styles emit no
// escape sequences, which keeps test output byte-predictable.
func PlainStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
	}
}

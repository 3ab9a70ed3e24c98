// ABOUTME: CLI entry point for cmenu: reads entries from stdin, runs the picker on /dev/tty.
// ABOUTME: Writes the confirmed entry to stdout; restores the terminal on every exit path.

package main

import (
	"fmt"
	"os"

	"github.com/skeeto/cmenu/internal/arena"
	"github.com/skeeto/cmenu/internal/entry"
	"github.com/skeeto/cmenu/internal/log"
	"github.com/skeeto/cmenu/internal/picker"
	"github.com/skeeto/cmenu/pkg/tui/terminal"
)

// MemoryMax is the fixed arena capacity backing the whole session. There is
// no configuration: limits are compiled in.
const MemoryMax = 1 << 28 // 256 MiB

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cmenu: %v\n", err)
		os.Exit(1)
	}
}

// run owns the session lifecycle. Fatal conditions propagate back here as
// errors so the picker's deferred mode restore has already executed by the
// time the process exits.
func run() error {
	a := arena.New(MemoryMax)

	set, err := readEntries(a)
	if err != nil {
		return err
	}

	tty, err := terminal.Open()
	if err != nil {
		return err
	}
	defer tty.Close()
	defer terminal.RestoreOnPanic(tty)

	p, err := picker.New(tty, set, a, picker.DefaultStyles(tty.File()))
	if err != nil {
		return err
	}

	text, ok, err := p.Run()
	if err != nil {
		return err
	}
	if !ok {
		return nil // cancelled: nothing on stdout, exit 0
	}
	if _, err := os.Stdout.Write(text); err != nil {
		return fmt.Errorf("writing selection: %w", err)
	}
	return nil
}

// readEntries slurps stdin into the arena's low region, injects a trailing
// newline to simplify splitting, and parses the committed bytes in place.
// Input beyond the arena capacity is truncated, and a read error simply
// ends the input, matching end-of-stream handling.
func readEntries(a *arena.Arena) (*entry.Set, error) {
	buf := a.LowRegion()
	if len(buf) == 0 {
		return nil, arena.ErrNoSpace
	}

	n := 0
	for n < len(buf)-1 {
		r, err := os.Stdin.Read(buf[n : len(buf)-1])
		n += r
		if err != nil || r == 0 {
			break
		}
	}
	buf[n] = '\n'

	set := entry.Parse(a.CommitLow(n + 1))
	log.Debug("parsed %d entries from %d input bytes", set.Len(), n)
	return set, nil
}

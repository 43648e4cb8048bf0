package main

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

// truncateName fits a game name into the space left by the fixed columns.
// go-pretty's WidthMax doesn't handle multi-byte characters correctly, so
// the content is truncated before it reaches the table.
func truncateName(name string, fixedWidth int) string {
	available := getTerminalWidth() - fixedWidth
	if available < 20 {
		available = 20
	}
	return runewidth.Truncate(name, available, "...")
}

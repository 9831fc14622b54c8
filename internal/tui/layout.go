package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncate forces s to at most w columns (ANSI-aware), adding an ellipsis
// when something was cut.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w == 1 {
		return xansi.Cut(s, 0, 1)
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

// padTo forces s to exactly w columns, cutting or space-padding as needed.
// Keeps row layouts stable under lipgloss.JoinHorizontal.
func padTo(s string, w int) string {
	s = truncate(s, w)
	if d := w - xansi.StringWidth(s); d > 0 {
		s += strings.Repeat(" ", d)
	}
	return s
}

package tui

import (
	"flowpilot/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// readingModel shows one catalog item's content, rendered as markdown.
type readingModel struct {
	item catalog.SearchResult
}

func newReadingModel(item catalog.SearchResult) readingModel {
	return readingModel{item: item}
}

func (m readingModel) update(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "q", "enter":
		return true
	}
	return false
}

func (m readingModel) view(st styles, width, height int, dark bool) string {
	contentW := width - 8
	if contentW > 72 {
		contentW = 72
	}

	md := "# " + m.item.Title() + "\n\n*" + m.item.Subtitle() + "*\n\n" + m.item.Content()
	body := renderMarkdown(md, contentW, dark)

	footer := st.help.Render("esc close")
	card := st.cardActive.Render(lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		st.success.Render(glyphCheckOn())+" "+st.muted.Render("Marked as read"),
		footer,
	))
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, clampHeight(card, height))
	}
	return card
}

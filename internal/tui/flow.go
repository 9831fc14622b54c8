package tui

import (
	"context"
	"fmt"
	"time"

	"flowpilot/internal/catalog"
	"flowpilot/internal/timeline"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type motivationCard struct {
	title   string
	content string
	author  string
}

var motivationCards = []motivationCard{
	{title: "Daily Wisdom", content: "The way to get started is to quit talking and begin doing.", author: "Walt Disney"},
	{title: "Book Bite", content: "Focus on systems, not goals. Systems are what lead to consistent progress.", author: "Atomic Habits"},
	{title: "Mood Booster", content: "You are exactly where you need to be. Trust the process."},
}

type flowModel struct {
	timeline *timeline.Model
	cursor   int
	card     int
}

func newFlowModel(tl *timeline.Model) flowModel {
	return flowModel{timeline: tl}
}

// update handles Flow keys. The second return asks the app shell to open the
// add-task modal.
func (m flowModel) update(msg tea.KeyMsg) (flowModel, bool) {
	tasks := m.timeline.Tasks()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case "left", "h":
		m.card = (m.card + len(motivationCards) - 1) % len(motivationCards)
	case "right", "l":
		m.card = (m.card + 1) % len(motivationCards)
	case "enter", " ":
		if m.cursor < len(tasks) {
			m.timeline.Toggle(context.Background(), tasks[m.cursor].ID)
		}
	case "a":
		return m, true
	}
	return m, false
}

func (m flowModel) view(st styles, width, height int) string {
	var rows []string

	greeting := st.muted.Render("Good morning,") + " " + st.title.Render("Alex")
	rows = append(rows, greeting)
	rows = append(rows, st.accent.Render(catalog.Encouragement(time.Now())))
	rows = append(rows, "")

	// Motivation carousel: one card at a time, dots underneath.
	card := motivationCards[m.card]
	body := st.title.Render(card.title) + "\n" + st.text.Render(card.content)
	if card.author != "" {
		body += "\n" + st.muted.Render(glyphQuoteDash()+" "+card.author)
	}
	cardW := width - 4
	if cardW > 60 {
		cardW = 60
	}
	rows = append(rows, st.cardActive.Width(cardW).Render(body))
	dots := ""
	for i := range motivationCards {
		if i == m.card {
			dots += st.accent.Render(glyphCheckOn()) + " "
		} else {
			dots += st.muted.Render(glyphCheckOff()) + " "
		}
	}
	rows = append(rows, " "+dots)
	rows = append(rows, "")

	done := m.timeline.CompletedCount()
	total := len(m.timeline.Tasks())
	pct := int(m.timeline.Ratio() * 100)
	rows = append(rows, st.title.Render("Today's Flow")+" "+
		st.muted.Render(fmt.Sprintf("%d/%d done (%d%%)", done, total, pct)))

	for i, t := range m.timeline.Tasks() {
		check := glyphCheckOff()
		style := st.text
		if t.Completed {
			check = glyphCheckOn()
			style = st.muted.Strikethrough(true)
		}
		line := fmt.Sprintf("%s %s %s %s",
			st.success.Render(check),
			st.muted.Render(padTo(t.Time, 8)),
			renderIcon(t.Icon, st.palette.Primary),
			style.Render(t.Title))
		line += " " + st.help.Render(t.Category)
		if i == m.cursor {
			line = st.accent.Render(glyphArrow()) + " " + line
		} else {
			line = "  " + line
		}
		rows = append(rows, truncate(line, width-2))
	}

	rows = append(rows, "")
	rows = append(rows, st.help.Render("enter/space toggle "+glyphBullet()+" a add task "+glyphBullet()+" ←/→ cards"))

	return clampHeight(lipgloss.JoinVertical(lipgloss.Left, rows...), height)
}

func glyphQuoteDash() string {
	if glyphs() == glyphSetASCII {
		return "--"
	}
	return "—"
}

// clampHeight cuts the view to at most h lines so the tab/status bars stay
// on screen in small terminals.
func clampHeight(s string, h int) string {
	if h <= 0 {
		return s
	}
	lines := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines++
			if lines >= h {
				return s[:i]
			}
		}
	}
	return s
}

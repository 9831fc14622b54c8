package tui

import (
	"context"
	"errors"

	"flowpilot/internal/timeline"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type addTaskFocus int

const (
	addFocusTitle addTaskFocus = iota
	addFocusCategory
	addFocusTime
)

type addTaskModel struct {
	title      textinput.Model
	focus      addTaskFocus
	categories []timeline.TaskCategory
	catIdx     int
	slots      []string
	slotIdx    int
	errMsg     string
}

func newAddTaskModel() addTaskModel {
	in := textinput.New()
	in.Placeholder = "What do you want to do?"
	in.CharLimit = 120
	in.Focus()
	return addTaskModel{
		title:      in,
		categories: timeline.TaskCategories(),
		slots:      timeline.TimeSlots(),
		slotIdx:    3, // 9:00 AM
	}
}

func (m addTaskModel) update(msg tea.KeyMsg, tl *timeline.Model) (addTaskModel, bool) {
	switch msg.String() {
	case "esc":
		return m, true
	case "tab":
		m.focus = (m.focus + 1) % 3
		if m.focus == addFocusTitle {
			m.title.Focus()
		} else {
			m.title.Blur()
		}
		return m, false
	case "enter":
		cat := m.categories[m.catIdx]
		_, err := tl.Add(context.Background(), timeline.TaskDraft{
			Title:    m.title.Value(),
			Time:     m.slots[m.slotIdx],
			Category: cat.Name,
			Kind:     cat.Kind,
			Icon:     cat.Icon,
		})
		if err != nil {
			var verr timeline.ValidationError
			if errors.As(err, &verr) {
				m.errMsg = verr.Message
			} else {
				m.errMsg = err.Error()
			}
			return m, false
		}
		return m, true
	}

	switch m.focus {
	case addFocusTitle:
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		_ = cmd
	case addFocusCategory:
		switch msg.String() {
		case "left", "h", "up", "k":
			if m.catIdx > 0 {
				m.catIdx--
			}
		case "right", "l", "down", "j":
			if m.catIdx < len(m.categories)-1 {
				m.catIdx++
			}
		}
	case addFocusTime:
		switch msg.String() {
		case "left", "h", "up", "k":
			if m.slotIdx > 0 {
				m.slotIdx--
			}
		case "right", "l", "down", "j":
			if m.slotIdx < len(m.slots)-1 {
				m.slotIdx++
			}
		}
	}
	return m, false
}

func (m addTaskModel) view(st styles, width, height int) string {
	var rows []string

	rows = append(rows, st.header.Render("Add Task"))
	rows = append(rows, "")

	titleLabel := st.muted.Render("Title")
	if m.focus == addFocusTitle {
		titleLabel = st.accent.Render("Title")
	}
	rows = append(rows, titleLabel)
	rows = append(rows, m.title.View())
	rows = append(rows, "")

	catLabel := st.muted.Render("Category")
	if m.focus == addFocusCategory {
		catLabel = st.accent.Render("Category")
	}
	rows = append(rows, catLabel)
	cat := m.categories[m.catIdx]
	rows = append(rows, renderIcon(cat.Icon, st.palette.Primary)+" "+st.text.Render(cat.Name)+
		st.help.Render("  ←/→ to change"))
	rows = append(rows, "")

	timeLabel := st.muted.Render("Time")
	if m.focus == addFocusTime {
		timeLabel = st.accent.Render("Time")
	}
	rows = append(rows, timeLabel)
	rows = append(rows, st.text.Render(m.slots[m.slotIdx])+st.help.Render("  ←/→ to change"))

	if m.errMsg != "" {
		rows = append(rows, "")
		rows = append(rows, st.errText.Render(m.errMsg))
	}

	rows = append(rows, "")
	rows = append(rows, st.help.Render("tab field "+glyphBullet()+" enter add "+glyphBullet()+" esc cancel"))

	card := st.cardActive.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

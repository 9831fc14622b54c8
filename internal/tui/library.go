package tui

import (
	"fmt"

	"flowpilot/internal/library"
	"flowpilot/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type libraryModel struct {
	model  *library.Model
	cursor int
	grid   bool

	searching bool
	search    textinput.Model
	results   []model.SavedItem
}

func newLibraryModel(lm *library.Model) libraryModel {
	in := textinput.New()
	in.Placeholder = "Search saved items"
	in.CharLimit = 80
	return libraryModel{model: lm, grid: true, search: in}
}

// update handles Library keys. The second return asks the shell to open the
// create-collection modal.
func (m libraryModel) update(msg tea.KeyMsg) (libraryModel, bool) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.results = nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			_ = cmd
			m.results = m.model.Search(m.search.Value())
		}
		return m, false
	}

	cols := m.model.Collections()
	switch msg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
	case "g":
		m.grid = !m.grid
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(cols)-1 {
			m.cursor++
		}
	case "n":
		return m, true
	}
	return m, false
}

func (m libraryModel) view(st styles, width, height int) string {
	var rows []string

	if m.searching {
		rows = append(rows, st.title.Render("Search library")+" "+m.search.View())
		if m.search.Value() != "" && len(m.results) == 0 {
			rows = append(rows, st.muted.Render("No saved items match"))
		}
		for _, it := range m.results {
			line := glyphBullet() + " " + st.text.Render(it.Title)
			if it.Author != "" {
				line += " " + st.muted.Render(glyphQuoteDash()+" "+it.Author)
			}
			rows = append(rows, truncate(line, width-2))
		}
		rows = append(rows, "")
		rows = append(rows, st.help.Render("esc back"))
		return clampHeight(lipgloss.JoinVertical(lipgloss.Left, rows...), height)
	}

	layout := "list"
	if m.grid {
		layout = "grid"
	}
	rows = append(rows, st.title.Render("My Library")+" "+st.muted.Render("("+layout+")"))
	rows = append(rows, "")

	cols := m.model.Collections()
	if m.grid {
		var cards []string
		for i, c := range cols {
			cards = append(cards, m.collectionCard(st, c, i == m.cursor))
			if len(cards) == 2 || i == len(cols)-1 {
				rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
				cards = nil
			}
		}
	} else {
		for i, c := range cols {
			marker := "  "
			if i == m.cursor {
				marker = st.accent.Render(glyphArrow()) + " "
			}
			line := marker + renderIcon(c.Icon, c.Color[0]) + " " + st.title.Render(c.Name) +
				" " + st.muted.Render(fmt.Sprintf("%d items %s %s", c.ItemCount, glyphBullet(), c.CreatedAt))
			rows = append(rows, truncate(line, width-2))
		}
	}

	rows = append(rows, "")
	rows = append(rows, st.help.Render("n new collection "+glyphBullet()+" g grid/list "+glyphBullet()+" / search"))
	return clampHeight(lipgloss.JoinVertical(lipgloss.Left, rows...), height)
}

func (m libraryModel) collectionCard(st styles, c model.Collection, selected bool) string {
	body := renderIcon(c.Icon, c.Color[0]) + " " + st.title.Render(c.Name) + "\n" +
		st.muted.Render(truncate(c.Description, 26)) + "\n" +
		st.help.Render(fmt.Sprintf("%d items %s %s", c.ItemCount, glyphBullet(), c.CreatedAt))
	style := st.card
	if selected {
		style = st.cardActive
	}
	return style.Width(30).Render(body)
}

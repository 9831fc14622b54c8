package tui

import (
	"fmt"

	"flowpilot/internal/catalog"
	"flowpilot/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type exploreModel struct {
	categories []catalogCategory
	catIdx     int
	bookIdx    int

	searching bool
	search    textinput.Model
	results   []catalog.SearchResult
	resultIdx int

	read catalog.ReadSet
}

// catalogCategory pre-joins the category with its books so the view doesn't
// hit the catalog on every frame.
type catalogCategory struct {
	id    string
	name  string
	icon  string
	color string
	books []catalog.SearchResult
}

func newExploreModel() exploreModel {
	var cats []catalogCategory
	for _, c := range catalog.Categories() {
		cc := catalogCategory{id: c.ID, name: c.Name, color: c.Color, icon: string(c.Icon)}
		for i := range c.Books {
			b := c.Books[i]
			cc.books = append(cc.books, catalog.SearchResult{Book: &b})
		}
		cats = append(cats, cc)
	}
	in := textinput.New()
	in.Placeholder = "Search books and topics"
	in.CharLimit = 80
	return exploreModel{categories: cats, search: in, read: catalog.ReadSet{}}
}

// update handles Explore keys. The second return is the id of an item to open
// in the reading modal ("" when nothing opens).
func (m exploreModel) update(msg tea.KeyMsg) (exploreModel, string) {
	if m.searching && m.search.Focused() {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.results = nil
			return m, ""
		case "enter":
			m.search.Blur()
			m.resultIdx = 0
			return m, ""
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			_ = cmd
			m.results = catalog.Search(m.search.Value())
			return m, ""
		}
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.SetValue("")
			m.results = nil
		case "/":
			m.search.Focus()
		case "up", "k":
			if m.resultIdx > 0 {
				m.resultIdx--
			}
		case "down", "j":
			if m.resultIdx < len(m.results)-1 {
				m.resultIdx++
			}
		case "enter":
			if m.resultIdx < len(m.results) {
				return m, m.results[m.resultIdx].ID()
			}
		}
		return m, ""
	}

	switch msg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
		m.results = nil
	case "left", "h":
		if m.catIdx > 0 {
			m.catIdx--
			m.bookIdx = 0
		}
	case "right", "l":
		if m.catIdx < len(m.categories)-1 {
			m.catIdx++
			m.bookIdx = 0
		}
	case "up", "k":
		if m.bookIdx > 0 {
			m.bookIdx--
		}
	case "down", "j":
		books := m.categories[m.catIdx].books
		if m.bookIdx < len(books)-1 {
			m.bookIdx++
		}
	case "enter":
		books := m.categories[m.catIdx].books
		if m.bookIdx < len(books) {
			return m, books[m.bookIdx].ID()
		}
	}
	return m, ""
}

// result resolves an id to its catalog record, searching results first.
func (m exploreModel) result(id string) (catalog.SearchResult, bool) {
	for _, r := range m.results {
		if r.ID() == id {
			return r, true
		}
	}
	for _, c := range m.categories {
		for _, r := range c.books {
			if r.ID() == id {
				return r, true
			}
		}
	}
	return catalog.SearchResult{}, false
}

func (m *exploreModel) markRead(id string) {
	m.read.Mark(id)
}

func (m exploreModel) view(st styles, width, height int) string {
	var rows []string

	if m.searching {
		rows = append(rows, st.title.Render("Search")+" "+m.search.View())
		if m.search.Value() == "" {
			rows = append(rows, st.muted.Render("Type to search; esc to browse"))
		} else if len(m.results) == 0 {
			rows = append(rows, st.muted.Render("No results"))
		}
		for i, r := range m.results {
			marker := "  "
			if i == m.resultIdx {
				marker = st.accent.Render(glyphArrow()) + " "
			}
			line := marker + st.text.Render(r.Title()) + " " + st.muted.Render(r.Subtitle())
			if m.read.Read(r.ID()) {
				line += " " + st.success.Render(glyphCheckOn())
			}
			rows = append(rows, truncate(line, width-2))
		}
		rows = append(rows, "")
		rows = append(rows, st.help.Render("enter open "+glyphBullet()+" esc back"))
		return clampHeight(lipgloss.JoinVertical(lipgloss.Left, rows...), height)
	}

	// Category strip.
	var tabs []string
	for i, c := range m.categories {
		label := renderIcon(model.IconKind(c.icon), c.color) + " " + c.name
		if i == m.catIdx {
			tabs = append(tabs, st.tabActive.Render(label))
		} else {
			tabs = append(tabs, st.tab.Render(label))
		}
	}
	rows = append(rows, truncate(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), width))
	rows = append(rows, "")

	cat := m.categories[m.catIdx]
	for i, r := range cat.books {
		b := r.Book
		marker := "  "
		if i == m.bookIdx {
			marker = st.accent.Render(glyphArrow()) + " "
		}
		title := st.title.Render(b.Title)
		if m.read.Read(b.ID) {
			title += " " + st.success.Render(glyphCheckOn())
		}
		meta := st.muted.Render(fmt.Sprintf("%s %s %.1f %s %s", b.Author, glyphBullet(), b.Rating, glyphBullet(), b.ReadTime))
		rows = append(rows, truncate(marker+title, width-2))
		rows = append(rows, truncate("    "+meta, width-2))
		rows = append(rows, truncate("    "+st.text.Render(b.Description), width-2))
	}

	rows = append(rows, "")
	rows = append(rows, st.help.Render("←/→ category "+glyphBullet()+" enter read "+glyphBullet()+" / search"))
	return clampHeight(lipgloss.JoinVertical(lipgloss.Left, rows...), height)
}

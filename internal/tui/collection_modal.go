package tui

import (
	"errors"

	"flowpilot/internal/library"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type createCollectionFocus int

const (
	colFocusName createCollectionFocus = iota
	colFocusDescription
	colFocusIcon
	colFocusColor
)

type createCollectionModel struct {
	name        textinput.Model
	description textinput.Model
	focus       createCollectionFocus
	iconIdx     int
	colorIdx    int
	errMsg      string
}

func newCreateCollectionModel() createCollectionModel {
	name := textinput.New()
	name.Placeholder = "Collection name"
	name.CharLimit = 60
	name.Focus()
	desc := textinput.New()
	desc.Placeholder = "What goes in here?"
	desc.CharLimit = 120
	return createCollectionModel{name: name, description: desc}
}

func (m createCollectionModel) update(msg tea.KeyMsg, lib *library.Model) (createCollectionModel, bool) {
	switch msg.String() {
	case "esc":
		return m, true
	case "tab":
		m.focus = (m.focus + 1) % 4
		m.name.Blur()
		m.description.Blur()
		switch m.focus {
		case colFocusName:
			m.name.Focus()
		case colFocusDescription:
			m.description.Focus()
		}
		return m, false
	case "enter":
		_, err := lib.AddCollection(library.CollectionDraft{
			Name:        m.name.Value(),
			Description: m.description.Value(),
			Icon:        library.IconChoices()[m.iconIdx],
			Color:       library.ColorChoices()[m.colorIdx],
		})
		if err != nil {
			var verr *library.ValidationError
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
	case colFocusName:
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		_ = cmd
	case colFocusDescription:
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		_ = cmd
	case colFocusIcon:
		switch msg.String() {
		case "left", "h":
			if m.iconIdx > 0 {
				m.iconIdx--
			}
		case "right", "l":
			if m.iconIdx < len(library.IconChoices())-1 {
				m.iconIdx++
			}
		}
	case colFocusColor:
		switch msg.String() {
		case "left", "h":
			if m.colorIdx > 0 {
				m.colorIdx--
			}
		case "right", "l":
			if m.colorIdx < len(library.ColorChoices())-1 {
				m.colorIdx++
			}
		}
	}
	return m, false
}

func (m createCollectionModel) view(st styles, width, height int) string {
	var rows []string

	rows = append(rows, st.header.Render("New Collection"))
	rows = append(rows, "")

	rows = append(rows, m.fieldLabel(st, colFocusName, "Name"))
	rows = append(rows, m.name.View())
	rows = append(rows, "")
	rows = append(rows, m.fieldLabel(st, colFocusDescription, "Description"))
	rows = append(rows, m.description.View())
	rows = append(rows, "")

	rows = append(rows, m.fieldLabel(st, colFocusIcon, "Icon"))
	var icons []string
	for i, ic := range library.IconChoices() {
		g := renderIcon(ic, library.ColorChoices()[m.colorIdx][0])
		if i == m.iconIdx {
			g = st.badge.Render(iconGlyph(ic))
		}
		icons = append(icons, g)
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, icons...))
	rows = append(rows, "")

	rows = append(rows, m.fieldLabel(st, colFocusColor, "Color"))
	var swatches []string
	for i, c := range library.ColorChoices() {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(c[0])).Render(glyphProgressOn() + glyphProgressOn())
		if i == m.colorIdx {
			sw += st.accent.Render(glyphCheckOn())
		}
		swatches = append(swatches, sw+" ")
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, swatches...))

	if m.errMsg != "" {
		rows = append(rows, "")
		rows = append(rows, st.errText.Render(m.errMsg))
	}

	rows = append(rows, "")
	rows = append(rows, st.help.Render("tab field "+glyphBullet()+" enter create "+glyphBullet()+" esc cancel"))

	card := st.cardActive.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

func (m createCollectionModel) fieldLabel(st styles, f createCollectionFocus, label string) string {
	if m.focus == f {
		return st.accent.Render(label)
	}
	return st.muted.Render(label)
}

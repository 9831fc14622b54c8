package tui

import (
	"flowpilot/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type notificationPref struct {
	key         string
	title       string
	description string
	enabled     bool
}

// profileModel is the profile/settings modal. Everything here except the
// theme mode is session-local mock state.
type profileModel struct {
	name     string
	email    string
	joined   string
	loggedIn bool

	prefs  []notificationPref
	cursor int
}

func newProfileModel() profileModel {
	return profileModel{
		name:     "Alex Johnson",
		email:    "alex.johnson@example.com",
		joined:   "January 2024",
		loggedIn: true,
		prefs: []notificationPref{
			{key: "dailyReminders", title: "Daily Reminders", description: "Get reminded to check your daily flow", enabled: true},
			{key: "weeklyProgress", title: "Weekly Progress", description: "Receive weekly progress summaries", enabled: true},
			{key: "achievements", title: "Achievements", description: "Get notified when you unlock achievements", enabled: true},
			{key: "motivationalQuotes", title: "Motivational Quotes", description: "Daily inspiration and motivation", enabled: false},
		},
	}
}

// rows: notification prefs, then theme mode, then sign in/out.
func (m profileModel) rowCount() int { return len(m.prefs) + 2 }

func (m profileModel) update(msg tea.KeyMsg, themes *theme.Store) (profileModel, bool) {
	switch msg.String() {
	case "esc", "p", "q":
		return m, true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case "enter", " ":
		switch {
		case m.cursor < len(m.prefs):
			m.prefs[m.cursor].enabled = !m.prefs[m.cursor].enabled
		case m.cursor == len(m.prefs):
			themes.Toggle()
		default:
			m.loggedIn = !m.loggedIn
		}
	}
	return m, false
}

func (m profileModel) view(st styles, themes *theme.Store, width, height int) string {
	var rows []string

	rows = append(rows, st.header.Render("Profile"))
	rows = append(rows, "")
	if m.loggedIn {
		rows = append(rows, st.title.Render(m.name))
		rows = append(rows, st.muted.Render(m.email))
		rows = append(rows, st.help.Render("Member since "+m.joined))
	} else {
		rows = append(rows, st.title.Render("Not signed in"))
		rows = append(rows, st.muted.Render("Sign in to sync your progress"))
	}
	rows = append(rows, "")

	rows = append(rows, st.title.Render("Notifications"))
	for i, p := range m.prefs {
		toggle := glyphCheckOff()
		if p.enabled {
			toggle = st.success.Render(glyphCheckOn())
		}
		line := toggle + " " + st.text.Render(p.title)
		if i == m.cursor {
			line = st.accent.Render(glyphArrow()) + " " + line
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
		rows = append(rows, "    "+st.help.Render(p.description))
	}
	rows = append(rows, "")

	themeLine := st.text.Render("Theme: ") + st.accent.Render(string(themes.Mode())) +
		st.muted.Render(" ("+string(themes.Scheme())+")")
	if m.cursor == len(m.prefs) {
		themeLine = st.accent.Render(glyphArrow()) + " " + themeLine
	} else {
		themeLine = "  " + themeLine
	}
	rows = append(rows, themeLine)

	authLabel := "Sign out"
	if !m.loggedIn {
		authLabel = "Sign in"
	}
	authLine := st.text.Render(authLabel)
	if m.cursor == m.rowCount()-1 {
		authLine = st.accent.Render(glyphArrow()) + " " + authLine
	} else {
		authLine = "  " + authLine
	}
	rows = append(rows, authLine)

	rows = append(rows, "")
	rows = append(rows, st.help.Render("enter toggle "+glyphBullet()+" esc close"))

	card := st.cardActive.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

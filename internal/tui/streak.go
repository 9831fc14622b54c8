package tui

import (
	"fmt"
	"time"

	"flowpilot/internal/catalog"
	"flowpilot/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type streakTab int

const (
	streakOverview streakTab = iota
	streakAchievements
)

type streakModel struct {
	sub   streakTab
	stats model.UserStats
	now   func() time.Time
}

func newStreakModel() streakModel {
	return streakModel{stats: catalog.FreshStats(), now: time.Now}
}

func (m streakModel) update(msg tea.KeyMsg) streakModel {
	switch msg.String() {
	case "left", "h", "right", "l", "o":
		if m.sub == streakOverview {
			m.sub = streakAchievements
		} else {
			m.sub = streakOverview
		}
	}
	return m
}

func (m streakModel) view(st styles, width, height int) string {
	var rows []string

	tabs := []string{"Overview", "Achievements"}
	var parts []string
	for i, label := range tabs {
		if streakTab(i) == m.sub {
			parts = append(parts, st.tabActive.Render(label))
		} else {
			parts = append(parts, st.tab.Render(label))
		}
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	rows = append(rows, "")

	if m.sub == streakOverview {
		rows = append(rows, m.overviewRows(st)...)
	} else {
		rows = append(rows, m.achievementRows(st, width)...)
	}

	rows = append(rows, "")
	rows = append(rows, st.help.Render("←/→ switch section"))
	return clampHeight(lipgloss.JoinVertical(lipgloss.Left, rows...), height)
}

func (m streakModel) overviewRows(st styles) []string {
	var rows []string

	rows = append(rows, st.title.Render(fmt.Sprintf("%s %d day streak", renderIcon(model.IconFlame, st.palette.Coral), m.stats.CurrentStreak)))
	rows = append(rows, "")

	// Week strip.
	var days, dates []string
	for _, d := range catalog.Week(m.now()) {
		label := st.muted.Render(d.Day)
		date := st.text.Render(fmt.Sprintf("%2d", d.Date))
		if d.Today {
			label = st.accent.Render(d.Day)
			date = st.badge.Render(fmt.Sprintf("%2d", d.Date))
		} else if d.Completed {
			date = st.success.Render(fmt.Sprintf("%2d", d.Date))
		}
		days = append(days, " "+label+" ")
		dates = append(dates, " "+date+" ")
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, days...))
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, dates...))
	rows = append(rows, "")

	stats := []struct {
		label string
		value string
	}{
		{"Total days", fmt.Sprintf("%d", m.stats.TotalDays)},
		{"Best streak", fmt.Sprintf("%d", m.stats.BestStreak)},
		{"Tasks done", fmt.Sprintf("%d", m.stats.CompletedTasks)},
		{"Success rate", fmt.Sprintf("%.0f%%", m.stats.SuccessRate*100)},
	}
	var cards []string
	for _, s := range stats {
		cards = append(cards, st.card.Render(st.muted.Render(s.label)+"\n"+st.title.Render(s.value)))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	return rows
}

func (m streakModel) achievementRows(st styles, width int) []string {
	var rows []string
	for _, a := range catalog.Evaluate(m.stats) {
		icon := renderIcon(a.Icon, st.palette.Warning)
		title := st.title.Render(a.Title)
		if a.Unlocked {
			title += " " + st.success.Render(glyphCheckOn())
		}
		rows = append(rows, truncate(icon+" "+title, width-2))
		rows = append(rows, truncate("  "+st.muted.Render(a.Description), width-2))
		if a.Progress != nil && a.MaxProgress != nil && *a.MaxProgress > 0 {
			rows = append(rows, "  "+progressBar(st, *a.Progress, *a.MaxProgress, 24))
		}
		rows = append(rows, "")
	}
	return rows
}

func progressBar(st styles, value, max, cells int) string {
	if value > max {
		value = max
	}
	filled := value * cells / max
	bar := ""
	for i := 0; i < cells; i++ {
		if i < filled {
			bar += glyphProgressOn()
		} else {
			bar += glyphProgressOff()
		}
	}
	return st.accent.Render(bar) + " " + st.muted.Render(fmt.Sprintf("%d/%d", value, max))
}

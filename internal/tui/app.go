package tui

import (
	"context"
	"log"
	"strings"

	"flowpilot/internal/library"
	"flowpilot/internal/model"
	"flowpilot/internal/notify"
	"flowpilot/internal/store"
	"flowpilot/internal/theme"
	"flowpilot/internal/timeline"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabFlow tab = iota
	tabExplore
	tabStreak
	tabLibrary
)

var tabTitles = [...]string{"Flow", "Explore", "Streak", "Library"}

type modalKind int

const (
	modalNone modalKind = iota
	modalProfile
	modalAddTask
	modalCreateCollection
	modalReading
)

// reminderMsg surfaces a fired notification inside the TUI.
type reminderMsg struct {
	title string
	body  string
}

type appModel struct {
	settings store.Settings
	themes   *theme.Store

	width          int
	height         int
	seenWindowSize bool

	tab   tab
	modal modalKind

	onboarding *onboardingModel

	flow    flowModel
	explore exploreModel
	streak  streakModel
	lib     libraryModel

	profile   profileModel
	addTask   addTaskModel
	createCol createCollectionModel
	reading   readingModel

	flash string
}

func newAppModel(settings store.Settings, themes *theme.Store, rec model.OnboardingRecord, backend *uiBackend) appModel {
	sched := notify.NewScheduler(backend)
	tl := timeline.NewModel(sched, timeline.SeedTasks())
	tl.ScheduleAll(context.Background())

	m := appModel{
		settings: settings,
		themes:   themes,
		flow:     newFlowModel(tl),
		explore:  newExploreModel(),
		streak:   newStreakModel(),
		lib:      newLibraryModel(library.NewModel()),
		profile:  newProfileModel(),
	}
	if !rec.Completed {
		ob := newOnboardingModel()
		m.onboarding = &ob
	}
	return m
}

// uiBackend delivers fired reminders back into the bubbletea loop. send is
// wired after the program exists; until then reminders are dropped (never an
// error the scheduler sees).
type uiBackend struct {
	send func(tea.Msg)
}

func (b *uiBackend) RequestPermission(context.Context) (bool, error) { return true, nil }

func (b *uiBackend) Show(title, body string) error {
	if b.send != nil {
		b.send(reminderMsg{title: title, body: body})
	}
	return nil
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		return m, nil

	case reminderMsg:
		m.flash = msg.title + ": " + msg.body
		return m, nil

	case tea.KeyMsg:
		m.flash = ""
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.onboarding != nil {
		ob, done := m.onboarding.update(msg)
		m.onboarding = &ob
		if done {
			m.completeOnboarding(ob)
			m.onboarding = nil
		}
		return m, nil
	}

	if m.modal != modalNone {
		return m.updateModal(msg)
	}

	// Printable keys belong to a focused search input, not the global hotkeys.
	if m.searchFocused() {
		return m.updateTab(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "t":
		m.themes.Toggle()
		return m, nil
	case "p":
		m.modal = modalProfile
		return m, nil
	case "1":
		m.tab = tabFlow
		return m, nil
	case "2":
		m.tab = tabExplore
		return m, nil
	case "3":
		m.tab = tabStreak
		return m, nil
	case "4":
		m.tab = tabLibrary
		return m, nil
	case "tab":
		m.tab = (m.tab + 1) % 4
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + 3) % 4
		return m, nil
	}

	return m.updateTab(msg)
}

func (m appModel) searchFocused() bool {
	switch m.tab {
	case tabExplore:
		return m.explore.search.Focused()
	case tabLibrary:
		return m.lib.search.Focused()
	}
	return false
}

func (m appModel) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabFlow:
		var open bool
		m.flow, open = m.flow.update(msg)
		if open {
			m.addTask = newAddTaskModel()
			m.modal = modalAddTask
		}
	case tabExplore:
		var openID string
		m.explore, openID = m.explore.update(msg)
		if openID != "" {
			if r, ok := m.explore.result(openID); ok {
				m.reading = newReadingModel(r)
				m.explore.markRead(openID)
				m.modal = modalReading
			}
		}
	case tabStreak:
		m.streak = m.streak.update(msg)
	case tabLibrary:
		var create bool
		m.lib, create = m.lib.update(msg)
		if create {
			m.createCol = newCreateCollectionModel()
			m.modal = modalCreateCollection
		}
	}
	return m, nil
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalProfile:
		var done bool
		m.profile, done = m.profile.update(msg, m.themes)
		if done {
			m.modal = modalNone
		}
	case modalAddTask:
		var done bool
		m.addTask, done = m.addTask.update(msg, m.flow.timeline)
		if done {
			m.modal = modalNone
		}
	case modalCreateCollection:
		var done bool
		m.createCol, done = m.createCol.update(msg, m.lib.model)
		if done {
			m.modal = modalNone
		}
	case modalReading:
		if done := m.reading.update(msg); done {
			m.modal = modalNone
		}
	}
	return m, nil
}

func (m appModel) completeOnboarding(ob onboardingModel) {
	// Persistence failures never block completion; the in-memory state wins.
	if err := m.settings.SaveOnboarding(context.Background(), ob.record()); err != nil {
		log.Printf("onboarding: save record: %v", err)
	}
}

func (m appModel) View() string {
	if !m.seenWindowSize {
		return ""
	}
	st := newStyles(m.themes.Palette())
	dark := m.themes.IsDark()

	if m.onboarding != nil {
		return m.onboarding.view(st, m.width, m.height)
	}

	var body string
	switch m.tab {
	case tabFlow:
		body = m.flow.view(st, m.width, m.height-4)
	case tabExplore:
		body = m.explore.view(st, m.width, m.height-4)
	case tabStreak:
		body = m.streak.view(st, m.width, m.height-4)
	case tabLibrary:
		body = m.lib.view(st, m.width, m.height-4)
	}

	switch m.modal {
	case modalProfile:
		body = m.profile.view(st, m.themes, m.width, m.height-4)
	case modalAddTask:
		body = m.addTask.view(st, m.width, m.height-4)
	case modalCreateCollection:
		body = m.createCol.view(st, m.width, m.height-4)
	case modalReading:
		body = m.reading.view(st, m.width, m.height-4, dark)
	}

	var b strings.Builder
	b.WriteString(m.tabBar(st))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusBar(st))
	return b.String()
}

func (m appModel) tabBar(st styles) string {
	parts := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.tab {
			parts = append(parts, st.tabActive.Render(title))
		} else {
			parts = append(parts, st.tab.Render(title))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return padTo(bar, m.width)
}

func (m appModel) statusBar(st styles) string {
	if m.flash != "" {
		return padTo(st.badge.Render(m.flash), m.width)
	}
	help := "1-4/tab switch " + glyphBullet() + " t theme " + glyphBullet() + " p profile " + glyphBullet() + " q quit"
	return padTo(st.help.Render(help), m.width)
}

package tui

import (
	"context"
	"strings"
	"testing"

	"flowpilot/internal/model"
	"flowpilot/internal/store"
	"flowpilot/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestApp(t *testing.T, rec model.OnboardingRecord) appModel {
	t.Helper()
	settings := store.Settings{Dir: t.TempDir()}
	themes := theme.NewStore()
	m := newAppModel(settings, themes, rec, &uiBackend{})
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mAny.(appModel)
}

func completedRec() model.OnboardingRecord {
	return model.OnboardingRecord{Completed: true, Plan: model.PlanManual}
}

func TestTabSwitching(t *testing.T) {
	m := newTestApp(t, completedRec())
	if m.tab != tabFlow {
		t.Fatalf("initial tab = %d", m.tab)
	}

	mAny, _ := m.Update(runeKey('3'))
	m = mAny.(appModel)
	if m.tab != tabStreak {
		t.Errorf("after '3': tab = %d, want streak", m.tab)
	}

	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = mAny.(appModel)
	if m.tab != tabLibrary {
		t.Errorf("after tab: tab = %d, want library", m.tab)
	}

	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = mAny.(appModel)
	if m.tab != tabFlow {
		t.Errorf("tab should wrap to flow, got %d", m.tab)
	}

	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = mAny.(appModel)
	if m.tab != tabLibrary {
		t.Errorf("shift+tab should wrap back to library, got %d", m.tab)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestApp(t, completedRec())
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q should quit")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestThemeToggleKey(t *testing.T) {
	m := newTestApp(t, completedRec())
	before := m.themes.Scheme()
	mAny, _ := m.Update(runeKey('t'))
	m = mAny.(appModel)
	if m.themes.Scheme() == before {
		t.Error("t should flip the scheme")
	}
}

func TestFlowToggleTask(t *testing.T) {
	m := newTestApp(t, completedRec())
	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if !m.flow.timeline.Tasks()[0].Completed {
		t.Error("enter should complete the first task")
	}
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if m.flow.timeline.Tasks()[0].Completed {
		t.Error("enter again should un-complete it")
	}
}

func TestAddTaskValidationMessage(t *testing.T) {
	m := newTestApp(t, completedRec())
	mAny, _ := m.Update(runeKey('a'))
	m = mAny.(appModel)
	if m.modal != modalAddTask {
		t.Fatalf("modal = %d, want add-task", m.modal)
	}

	// Enter with an empty title keeps the modal open and shows the message.
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if m.modal != modalAddTask {
		t.Fatal("empty title should not close the modal")
	}
	if m.addTask.errMsg != "Please enter a task title" {
		t.Errorf("errMsg = %q", m.addTask.errMsg)
	}

	for _, r := range "Stretch" {
		mAny, _ = m.Update(runeKey(r))
		m = mAny.(appModel)
	}
	before := len(m.flow.timeline.Tasks())
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if m.modal != modalNone {
		t.Error("valid add should close the modal")
	}
	if got := len(m.flow.timeline.Tasks()); got != before+1 {
		t.Errorf("task count = %d, want %d", got, before+1)
	}
}

func TestOnboardingFlowWritesRecord(t *testing.T) {
	m := newTestApp(t, model.OnboardingRecord{})
	if m.onboarding == nil {
		t.Fatal("fresh profile should start in onboarding")
	}

	// Answer the three questions with the first option, then pick manual.
	for i := 0; i < 3; i++ {
		mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = mAny.(appModel)
	}
	mAny, _ := m.Update(runeKey('j'))
	m = mAny.(appModel)
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)

	if m.onboarding != nil {
		t.Fatal("onboarding should be done")
	}
	rec, ok, err := m.settings.LoadOnboarding(context.Background())
	if err != nil || !ok {
		t.Fatalf("record not persisted: ok=%v err=%v", ok, err)
	}
	if !rec.Completed || rec.Plan != model.PlanManual {
		t.Errorf("record = %+v", rec)
	}
	if rec.Answers["q1"] != "5:00 - 6:00 AM" {
		t.Errorf("answers = %v", rec.Answers)
	}
}

func TestProfileModalTogglesPref(t *testing.T) {
	m := newTestApp(t, completedRec())
	mAny, _ := m.Update(runeKey('p'))
	m = mAny.(appModel)
	if m.modal != modalProfile {
		t.Fatalf("modal = %d, want profile", m.modal)
	}

	if !m.profile.prefs[0].enabled {
		t.Fatal("daily reminders should start enabled")
	}
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if m.profile.prefs[0].enabled {
		t.Error("enter should flip the selected switch")
	}

	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = mAny.(appModel)
	if m.modal != modalNone {
		t.Error("esc should close the profile modal")
	}
}

func TestExploreSearchOpensReading(t *testing.T) {
	m := newTestApp(t, completedRec())
	mAny, _ := m.Update(runeKey('2'))
	m = mAny.(appModel)

	mAny, _ = m.Update(runeKey('/'))
	m = mAny.(appModel)
	for _, r := range "habit" {
		mAny, _ = m.Update(runeKey(r))
		m = mAny.(appModel)
	}
	if len(m.explore.results) == 0 {
		t.Fatal("typing should populate results")
	}

	// Confirm the query, then open the first result.
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if m.modal != modalReading {
		t.Fatalf("modal = %d, want reading", m.modal)
	}
	openID := m.reading.item.ID()
	if !m.explore.read.Read(openID) {
		t.Error("opening should mark the item read")
	}
}

func TestSearchInputCapturesHotkeys(t *testing.T) {
	m := newTestApp(t, completedRec())
	mAny, _ := m.Update(runeKey('2'))
	m = mAny.(appModel)
	mAny, _ = m.Update(runeKey('/'))
	m = mAny.(appModel)

	for _, r := range "quote42" {
		var cmd tea.Cmd
		mAny, cmd = m.Update(runeKey(r))
		m = mAny.(appModel)
		if cmd != nil {
			t.Fatalf("typing %q should stay in the search input", r)
		}
	}
	if got := m.explore.search.Value(); got != "quote42" {
		t.Errorf("search value = %q, want %q", got, "quote42")
	}
	if m.tab != tabExplore {
		t.Errorf("tab = %d, digits should not switch tabs mid-query", m.tab)
	}

	// Same contract on the Library search: 't' is query text, not the theme
	// toggle.
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = mAny.(appModel)
	mAny, _ = m.Update(runeKey('4'))
	m = mAny.(appModel)
	mAny, _ = m.Update(runeKey('/'))
	m = mAny.(appModel)
	before := m.themes.Scheme()
	mAny, _ = m.Update(runeKey('t'))
	m = mAny.(appModel)
	if m.themes.Scheme() != before {
		t.Error("theme flipped while the library search was focused")
	}
	if got := m.lib.search.Value(); got != "t" {
		t.Errorf("library search value = %q, want %q", got, "t")
	}
}

func TestCreateCollectionModal(t *testing.T) {
	m := newTestApp(t, completedRec())
	mAny, _ := m.Update(runeKey('4'))
	m = mAny.(appModel)
	mAny, _ = m.Update(runeKey('n'))
	m = mAny.(appModel)
	if m.modal != modalCreateCollection {
		t.Fatalf("modal = %d, want create-collection", m.modal)
	}

	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if m.modal != modalCreateCollection || m.createCol.errMsg == "" {
		t.Error("empty name should keep the modal open with a message")
	}

	for _, r := range "Wins" {
		mAny, _ = m.Update(runeKey(r))
		m = mAny.(appModel)
	}
	mAny, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mAny.(appModel)
	if m.modal != modalNone {
		t.Error("valid create should close the modal")
	}
	cols := m.lib.model.Collections()
	if cols[len(cols)-1].Name != "Wins" {
		t.Errorf("last collection = %+v", cols[len(cols)-1])
	}
}

func TestViewRendersTabs(t *testing.T) {
	m := newTestApp(t, completedRec())
	out := m.View()
	for _, title := range tabTitles {
		if !strings.Contains(out, title) {
			t.Errorf("view missing tab %q", title)
		}
	}
	if !strings.Contains(out, "Today's Flow") {
		t.Error("flow screen should render the timeline header")
	}
}

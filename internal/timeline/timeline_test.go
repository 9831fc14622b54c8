package timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"flowpilot/internal/model"
	"flowpilot/internal/notify"
)

var ref = time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC) // Monday 1:00 PM

func TestParseTimeLabel(t *testing.T) {
	cases := []struct {
		label    string
		wantHour int
		wantMin  int
		wantDay  int // offset from ref's date
	}{
		{"2:00 PM", 14, 0, 0},  // later today
		{"7:00 AM", 7, 0, 1},   // already passed -> tomorrow
		{"1:00 PM", 13, 0, 1},  // exactly now -> rolls forward (inclusive past)
		{"12:00 PM", 12, 0, 1}, // noon, already passed
		{"12:00 AM", 0, 0, 1},  // midnight
		{"12:30 AM", 0, 30, 1},
		{"11:59 PM", 23, 59, 0},
		{"1:01 PM", 13, 1, 0},
	}
	for _, tc := range cases {
		got, err := ParseTimeLabel(tc.label, ref)
		if err != nil {
			t.Fatalf("ParseTimeLabel(%q): %v", tc.label, err)
		}
		want := time.Date(2026, 3, 2+tc.wantDay, tc.wantHour, tc.wantMin, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("ParseTimeLabel(%q): expected %v, got %v", tc.label, want, got)
		}
	}
}

func TestParseTimeLabelInvalid(t *testing.T) {
	for _, label := range []string{"", "7:00", "25:00 AM", "7:61 PM", "7:00 XM", "seven AM", "0:30 AM"} {
		if _, err := ParseTimeLabel(label, ref); err == nil {
			t.Fatalf("ParseTimeLabel(%q): expected error", label)
		}
	}
}

func TestCompletionRatio(t *testing.T) {
	if got := CompletionRatio(nil); got != 0 {
		t.Fatalf("empty list: expected 0, got %v", got)
	}
	tasks := []model.Task{
		{ID: "1", Completed: true},
		{ID: "2"},
		{ID: "3", Completed: true},
		{ID: "4"},
	}
	if got := CompletionRatio(tasks); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func newTestModel(t *testing.T, grant bool) (*Model, *notify.Scheduler, *notify.RecordingBackend) {
	t.Helper()
	backend := notify.NewRecordingBackend(grant)
	sched := notify.NewScheduler(backend)
	m := NewModel(sched, SeedTasks()).WithNow(func() time.Time { return ref })
	return m, sched, backend
}

func TestScheduleAllSkipsPastAndCompleted(t *testing.T) {
	m, sched, _ := newTestModel(t, true)
	m.Toggle(context.Background(), "5") // complete "Call Mom" (2:00 PM)
	m.ScheduleAll(context.Background())

	// 2:00 PM and 8:00 PM are still in the future relative to 1:00 PM, but
	// "5" is completed; only "6" (8:00 PM) remains schedulable today. Tasks
	// with earlier labels roll to tomorrow and are scheduled as well.
	if sched.HasTask("5") {
		t.Fatalf("completed task must not be scheduled")
	}
	if !sched.HasTask("6") {
		t.Fatalf("expected 8:00 PM task scheduled")
	}
	if !sched.HasTask("1") {
		t.Fatalf("expected passed task rolled to tomorrow and scheduled")
	}
}

func TestToggleCancelsAndReschedules(t *testing.T) {
	m, sched, _ := newTestModel(t, true)
	ctx := context.Background()
	m.ScheduleAll(ctx)
	if !sched.HasTask("5") {
		t.Fatalf("precondition: task 5 scheduled")
	}

	m.Toggle(ctx, "5")
	if sched.HasTask("5") {
		t.Fatalf("completing a task must cancel its notifications")
	}

	m.Toggle(ctx, "5")
	if !sched.HasTask("5") {
		t.Fatalf("un-completing a future task must re-schedule it")
	}

	// Round trip: back to the original completed value.
	tasks := m.Tasks()
	for _, task := range tasks {
		if task.ID == "5" && task.Completed {
			t.Fatalf("expected task 5 incomplete after double toggle")
		}
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	m, _, _ := newTestModel(t, true)
	before := m.Tasks()
	after := m.Toggle(context.Background(), "nope")
	if len(before) != len(after) {
		t.Fatalf("unexpected mutation")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("unexpected mutation at %d: %+v != %+v", i, before[i], after[i])
		}
	}
}

func TestAddValidatesTitle(t *testing.T) {
	m, sched, _ := newTestModel(t, true)
	for _, title := range []string{"", "   ", "\t"} {
		_, err := m.Add(context.Background(), TaskDraft{Title: title, Time: "3:00 PM"})
		var verr ValidationError
		if err == nil {
			t.Fatalf("title %q: expected validation error", title)
		}
		if !errors.As(err, &verr) || verr.Message != "Please enter a task title" {
			t.Fatalf("title %q: unexpected error %v", title, err)
		}
	}
	if got := len(m.Tasks()); got != len(SeedTasks()) {
		t.Fatalf("expected no mutation on validation error, got %d tasks", got)
	}
	if got := len(sched.Scheduled()); got != 0 {
		t.Fatalf("expected no scheduling side effect, got %d", got)
	}
}

func TestAddSchedulesFutureTask(t *testing.T) {
	m, sched, _ := newTestModel(t, true)
	task, err := m.Add(context.Background(), TaskDraft{
		Title:    "  Evening Walk  ",
		Kind:     model.TaskKindWellness,
		Time:     "6:00 PM",
		Category: "Fitness",
		Icon:     model.IconDumbbell,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.Title != "Evening Walk" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.Completed {
		t.Fatalf("new task must start incomplete")
	}
	if !sched.HasTask(task.ID) {
		t.Fatalf("expected notification scheduled for new task")
	}
	if got := len(m.Tasks()); got != len(SeedTasks())+1 {
		t.Fatalf("expected task appended, got %d", got)
	}
}

func TestScenarioCallMom(t *testing.T) {
	// Scheduling "Call Mom" at "2:00 PM" with now = 1:00 PM lands today 14:00;
	// with now = 3:00 PM it lands tomorrow 14:00.
	at, err := ParseTimeLabel("2:00 PM", ref)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC); !at.Equal(want) {
		t.Fatalf("expected %v, got %v", want, at)
	}

	later := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	at, err = ParseTimeLabel("2:00 PM", later)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC); !at.Equal(want) {
		t.Fatalf("expected %v, got %v", want, at)
	}
}

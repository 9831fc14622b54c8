// Package timeline owns the list of tasks for "today": toggling completion,
// deriving concrete reminder times from the human time labels, and keeping the
// notification scheduler in sync with task state.
package timeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"flowpilot/internal/model"
	"flowpilot/internal/notify"
	"flowpilot/internal/store"
)

// ValidationError carries a user-visible message for input the UI rejects.
// It is a message to show, never a crash.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ParseTimeLabel converts a "H:MM AM|PM" label into a concrete datetime on
// now's calendar date. Noon and midnight follow 12-hour convention (12 PM ->
// 12:00, 12 AM -> 00:00). An instant at or before now rolls forward exactly
// one day: a reminder for a time already passed today belongs to tomorrow.
func ParseTimeLabel(label string, now time.Time) (time.Time, error) {
	clock, period, ok := strings.Cut(strings.TrimSpace(label), " ")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid time label: %q", label)
	}
	hs, ms, ok := strings.Cut(clock, ":")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid time label: %q", label)
	}
	hour, err := strconv.Atoi(hs)
	if err != nil || hour < 1 || hour > 12 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", label)
	}
	minute, err := strconv.Atoi(ms)
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", label)
	}

	switch strings.ToUpper(period) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return time.Time{}, fmt.Errorf("invalid period in %q", label)
	}

	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}

// CompletionRatio returns completed/total in [0,1]; 0 for an empty list.
// Rounding to a percentage is a presentation concern.
func CompletionRatio(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return float64(done) / float64(len(tasks))
}

// TaskDraft is the add-task form payload.
type TaskDraft struct {
	Title    string
	Kind     model.TaskKind
	Time     string
	Category string
	Icon     model.IconKind
}

// Model owns the session's task list. Not persisted; each run starts from the
// seeded "fresh start" timeline.
type Model struct {
	scheduler *notify.Scheduler
	tasks     []model.Task
	now       func() time.Time
}

func NewModel(scheduler *notify.Scheduler, tasks []model.Task) *Model {
	return &Model{
		scheduler: scheduler,
		tasks:     append([]model.Task(nil), tasks...),
		now:       time.Now,
	}
}

// WithNow fixes the reference clock; tests use it to make parsing
// deterministic.
func (m *Model) WithNow(now func() time.Time) *Model {
	m.now = now
	return m
}

// Tasks returns a snapshot of the current list.
func (m *Model) Tasks() []model.Task {
	return append([]model.Task(nil), m.tasks...)
}

func (m *Model) Ratio() float64 { return CompletionRatio(m.tasks) }

func (m *Model) CompletedCount() int {
	n := 0
	for _, t := range m.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// ScheduleAll registers reminders for every incomplete task whose parsed time
// is in the future. Called once at startup.
func (m *Model) ScheduleAll(ctx context.Context) {
	now := m.now()
	for _, t := range m.tasks {
		if t.Completed {
			continue
		}
		at, err := ParseTimeLabel(t.Time, now)
		if err != nil {
			continue
		}
		if at.After(now) {
			m.scheduler.ScheduleTaskNotification(ctx, t.ID, t.Title, at)
		}
	}
}

// Toggle flips the task's completed flag. Completing cancels its pending
// reminders; un-completing re-schedules when the parsed time is still future.
// Unknown ids are a no-op.
func (m *Model) Toggle(ctx context.Context, taskID string) []model.Task {
	for i := range m.tasks {
		if m.tasks[i].ID != taskID {
			continue
		}
		m.tasks[i].Completed = !m.tasks[i].Completed
		if m.tasks[i].Completed {
			m.scheduler.CancelTaskNotifications(taskID)
		} else {
			now := m.now()
			if at, err := ParseTimeLabel(m.tasks[i].Time, now); err == nil && at.After(now) {
				m.scheduler.ScheduleTaskNotification(ctx, taskID, m.tasks[i].Title, at)
			}
		}
		break
	}
	return m.Tasks()
}

// Add appends a new incomplete task and schedules its reminder. An empty or
// whitespace-only title is a validation error: no mutation, message for the
// user.
func (m *Model) Add(ctx context.Context, draft TaskDraft) (model.Task, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return model.Task{}, ValidationError{Message: "Please enter a task title"}
	}

	task := model.Task{
		ID:       store.MustNewID("task"),
		Title:    title,
		Kind:     draft.Kind,
		Time:     draft.Time,
		Category: draft.Category,
		Icon:     draft.Icon,
	}
	m.tasks = append(m.tasks, task)

	now := m.now()
	if at, err := ParseTimeLabel(task.Time, now); err == nil && at.After(now) {
		m.scheduler.ScheduleTaskNotification(ctx, task.ID, task.Title, at)
	}
	return task, nil
}

// SeedTasks is the fresh-start timeline shown on every launch.
func SeedTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Morning Coffee & Planning", Kind: model.TaskKindWellness, Time: "7:00 AM", Category: "Morning Routine", Icon: model.IconCoffee},
		{ID: "2", Title: "Drink Water (500ml)", Kind: model.TaskKindWellness, Time: "8:00 AM", Category: "Health", Icon: model.IconDroplets},
		{ID: "3", Title: "Complete Project Proposal", Kind: model.TaskKindTask, Time: "9:00 AM", Category: "Work", Icon: model.IconTarget},
		{ID: "4", Title: "15-minute Workout", Kind: model.TaskKindWellness, Time: "11:00 AM", Category: "Fitness", Icon: model.IconDumbbell},
		{ID: "5", Title: "Call Mom", Kind: model.TaskKindWellness, Time: "2:00 PM", Category: "Family", Icon: model.IconPhone},
		{ID: "6", Title: "Read for 20 minutes", Kind: model.TaskKindWellness, Time: "8:00 PM", Category: "Learning", Icon: model.IconBook},
	}
}

// TaskCategory pairs a category label with its kind and icon for the add-task
// form.
type TaskCategory struct {
	Name string
	Kind model.TaskKind
	Icon model.IconKind
}

func TaskCategories() []TaskCategory {
	return []TaskCategory{
		{Name: "Work", Kind: model.TaskKindTask, Icon: model.IconTarget},
		{Name: "Health", Kind: model.TaskKindWellness, Icon: model.IconHeart},
		{Name: "Fitness", Kind: model.TaskKindWellness, Icon: model.IconDumbbell},
		{Name: "Learning", Kind: model.TaskKindWellness, Icon: model.IconBook},
		{Name: "Family", Kind: model.TaskKindWellness, Icon: model.IconPhone},
		{Name: "Morning Routine", Kind: model.TaskKindWellness, Icon: model.IconCoffee},
		{Name: "Hydration", Kind: model.TaskKindWellness, Icon: model.IconDroplets},
	}
}

// TimeSlots lists the selectable reminder times, in timeline order.
func TimeSlots() []string {
	return []string{
		"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM",
		"12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
		"6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM",
	}
}

// Package notify schedules local task reminders against a pluggable backend.
//
// There is no OS notification service here; the backend decides how a
// reminder surfaces (the TUI uses the terminal, tests record calls). The
// scheduler keeps an in-memory registry of pending notifications keyed by a
// generated id; the deferred fire re-checks the registry so a cancelled
// reminder never surfaces.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"flowpilot/internal/model"

	"github.com/google/uuid"
)

// Backend is the platform notification surface.
type Backend interface {
	// RequestPermission asks the platform for permission to notify.
	RequestPermission(ctx context.Context) (bool, error)
	// Show surfaces a visible notification.
	Show(title, body string) error
}

// Scheduler manages pending reminders. Safe for use from the UI loop plus the
// timer goroutines it spawns.
type Scheduler struct {
	backend Backend

	mu       sync.Mutex
	granted  bool
	asked    bool
	registry map[string]model.Notification
	timers   map[string]*time.Timer
	now      func() time.Time
}

func NewScheduler(backend Backend) *Scheduler {
	return &Scheduler{
		backend:  backend,
		registry: map[string]model.Notification{},
		timers:   map[string]*time.Timer{},
		now:      time.Now,
	}
}

// RequestPermission asks the backend once and caches the answer. A backend
// error degrades to denied; it never propagates.
func (s *Scheduler) RequestPermission(ctx context.Context) bool {
	s.mu.Lock()
	if s.asked {
		granted := s.granted
		s.mu.Unlock()
		return granted
	}
	s.mu.Unlock()

	granted, err := s.backend.RequestPermission(ctx)
	if err != nil {
		granted = false
	}

	s.mu.Lock()
	s.asked = true
	s.granted = granted
	s.mu.Unlock()
	return granted
}

// ScheduleTaskNotification registers a reminder for the task and arms a
// one-shot timer for it. Returns the notification id, or "" when permission
// is denied (no side effect in that case).
//
// The caller is responsible for only passing future times; past times arm a
// timer that fires immediately.
func (s *Scheduler) ScheduleTaskNotification(ctx context.Context, taskID, title string, when time.Time) string {
	if !s.RequestPermission(ctx) {
		return ""
	}

	id := fmt.Sprintf("task-%s-%s", taskID, uuid.NewString())
	n := model.Notification{
		ID:            id,
		TaskID:        taskID,
		Title:         "Task Reminder",
		Body:          "Time to: " + title,
		ScheduledTime: when,
		IsScheduled:   true,
	}

	s.mu.Lock()
	s.registry[id] = n
	s.timers[id] = time.AfterFunc(when.Sub(s.now()), func() { s.fire(id) })
	s.mu.Unlock()

	return id
}

// fire surfaces the notification if it is still wanted. Cancellation may have
// raced the timer; membership in the registry is the source of truth.
func (s *Scheduler) fire(id string) {
	s.mu.Lock()
	n, ok := s.registry[id]
	delete(s.timers, id)
	s.mu.Unlock()
	if !ok || !n.IsScheduled {
		return
	}
	// Display failures have nowhere useful to go; a reminder that cannot be
	// shown silently does less.
	_ = s.backend.Show(n.Title, n.Body)
}

// CancelNotification removes the entry if present; no-op otherwise. The
// underlying timer is stopped best-effort — even when Stop loses the race,
// fire finds the registry entry gone and shows nothing.
func (s *Scheduler) CancelNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(id)
}

// CancelTaskNotifications removes every entry for the task.
func (s *Scheduler) CancelTaskNotifications(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, n := range s.registry {
		if n.TaskID == taskID {
			s.cancelLocked(id)
		}
	}
}

func (s *Scheduler) cancelLocked(id string) {
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	delete(s.registry, id)
}

// Scheduled returns a snapshot of pending notifications.
func (s *Scheduler) Scheduled() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, 0, len(s.registry))
	for _, n := range s.registry {
		out = append(out, n)
	}
	return out
}

// HasTask reports whether any pending notification references the task.
func (s *Scheduler) HasTask(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.registry {
		if n.TaskID == taskID {
			return true
		}
	}
	return false
}

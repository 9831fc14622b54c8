package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// TerminalBackend surfaces reminders as a styled line plus the terminal bell.
// Permission is always granted: the terminal needs no grant, and the spec'd
// fallback for platforms without a permission API is permissive.
type TerminalBackend struct {
	Out io.Writer
}

func (b TerminalBackend) RequestPermission(context.Context) (bool, error) {
	return true, nil
}

func (b TerminalBackend) Show(title, body string) error {
	if b.Out == nil {
		return nil
	}
	style := lipgloss.NewStyle().Bold(true)
	_, err := fmt.Fprintf(b.Out, "\a%s %s\n", style.Render(title+":"), body)
	return err
}

// NoopBackend records the intent without displaying anything; used when no
// notification surface exists at all.
type NoopBackend struct{}

func (NoopBackend) RequestPermission(context.Context) (bool, error) { return true, nil }
func (NoopBackend) Show(string, string) error                       { return nil }

// RecordingBackend is a test double capturing Show calls and answering
// permission requests with a fixed grant.
type RecordingBackend struct {
	Grant bool

	mu    sync.Mutex
	shown []string
	asks  int
}

func NewRecordingBackend(grant bool) *RecordingBackend {
	return &RecordingBackend{Grant: grant}
}

func (b *RecordingBackend) RequestPermission(context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.asks++
	return b.Grant, nil
}

func (b *RecordingBackend) Show(title, body string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shown = append(b.shown, title+" | "+body)
	return nil
}

func (b *RecordingBackend) Shown() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.shown...)
}

func (b *RecordingBackend) PermissionAsks() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.asks
}

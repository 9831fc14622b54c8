package theme

import (
	"log"
	"sync"

	"flowpilot/internal/model"
)

// Store is the single source of truth for the active theme mode. It is a
// constructed instance (passed to whoever needs it) rather than package state,
// so tests can create independent stores.
//
// Fan-out is synchronous: by the time SetMode returns, every registered
// subscriber has observed the new mode.
type Store struct {
	mu        sync.Mutex
	mode      model.ThemeMode
	listeners map[int]func(model.ThemeMode)
	nextID    int

	// systemPref reports the platform's preferred scheme for resolving
	// ThemeSystem. Defaults to light when unset.
	systemPref func() model.ColorScheme

	// saver persists the resolved preference. Failures are logged, never
	// surfaced to SetMode/Toggle callers.
	saver func(model.ColorScheme) error
}

type Option func(*Store)

// WithInitialMode sets the starting mode (default: system).
func WithInitialMode(mode model.ThemeMode) Option {
	return func(s *Store) { s.mode = mode }
}

// WithSystemPreference supplies the platform scheme used to resolve system mode.
func WithSystemPreference(fn func() model.ColorScheme) Option {
	return func(s *Store) { s.systemPref = fn }
}

// WithSaver attaches a persistence hook invoked after every mode change with
// the resolved scheme.
func WithSaver(fn func(model.ColorScheme) error) Option {
	return func(s *Store) { s.saver = fn }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		mode:      model.ThemeSystem,
		listeners: map[int]func(model.ThemeMode){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Mode() model.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode replaces the mode and notifies every subscriber, including when the
// mode is unchanged (no dedup guard, by contract).
func (s *Store) SetMode(mode model.ThemeMode) {
	s.mu.Lock()
	s.mode = mode
	fns := make([]func(model.ThemeMode), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	saver := s.saver
	resolved := s.resolveLocked(mode)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(mode)
	}
	if saver != nil {
		if err := saver(resolved); err != nil {
			log.Printf("theme: save preference: %v", err)
		}
	}
}

// Toggle flips between light and dark. When the current mode is system, the
// flip is based on the currently resolved scheme, and the store leaves system
// mode permanently.
func (s *Store) Toggle() {
	s.mu.Lock()
	resolved := s.resolveLocked(s.mode)
	s.mu.Unlock()

	if resolved == model.SchemeLight {
		s.SetMode(model.ThemeDark)
	} else {
		s.SetMode(model.ThemeLight)
	}
}

// Subscribe registers a listener called on every SetMode. The returned
// function deregisters it and is safe to call more than once.
func (s *Store) Subscribe(fn func(model.ThemeMode)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Scheme returns the currently resolved concrete scheme.
func (s *Store) Scheme() model.ColorScheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveLocked(s.mode)
}

// IsDark reports whether the resolved scheme is dark.
func (s *Store) IsDark() bool {
	return s.Scheme() == model.SchemeDark
}

// Palette returns the palette for the currently resolved scheme.
func (s *Store) Palette() Palette {
	return GetPalette(s.IsDark())
}

func (s *Store) resolveLocked(mode model.ThemeMode) model.ColorScheme {
	pref := model.SchemeLight
	if s.systemPref != nil {
		pref = s.systemPref()
	}
	return Resolve(mode, pref)
}

// Resolve maps a mode plus the platform preference to a concrete scheme.
// System mode follows the platform; an unknown preference defaults to light.
func Resolve(mode model.ThemeMode, systemPref model.ColorScheme) model.ColorScheme {
	switch mode {
	case model.ThemeLight:
		return model.SchemeLight
	case model.ThemeDark:
		return model.SchemeDark
	default:
		if systemPref == model.SchemeDark {
			return model.SchemeDark
		}
		return model.SchemeLight
	}
}

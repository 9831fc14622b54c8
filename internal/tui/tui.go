package tui

import (
	"context"
	"log"

	"flowpilot/internal/model"
	"flowpilot/internal/store"
	"flowpilot/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive TUI. dir overrides the config dir when non-empty
// (tests and --dir).
func Run(dir string) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		log.Printf("config: load: %v", err)
		cfg = nil
	}
	applyColorProfilePreference()
	applyThemePreference(cfg)
	applyGlyphPreference(cfg)

	if dir == "" {
		d, err := store.ConfigDir()
		if err != nil {
			return err
		}
		dir = d
	}
	settings := store.Settings{Dir: dir}

	ctx := context.Background()
	opts := []theme.Option{theme.WithSystemPreference(terminalScheme)}
	if pref, ok, err := settings.LoadThemePreference(ctx); err != nil {
		log.Printf("theme: load preference: %v", err)
	} else if ok {
		opts = append(opts, theme.WithInitialMode(model.ThemeMode(pref)))
	}
	opts = append(opts, theme.WithSaver(func(scheme model.ColorScheme) error {
		return settings.SaveThemePreference(context.Background(), scheme)
	}))
	themes := theme.NewStore(opts...)

	var onboarding model.OnboardingRecord
	if rec, ok, err := settings.LoadOnboarding(ctx); err != nil {
		log.Printf("onboarding: load record: %v", err)
	} else if ok {
		onboarding = rec
	}

	backend := &uiBackend{}
	m := newAppModel(settings, themes, onboarding, backend)
	p := tea.NewProgram(m, tea.WithAltScreen())
	backend.send = p.Send
	_, err = p.Run()
	return err
}

package cli

import (
	"fmt"
	"log"

	"flowpilot/internal/model"
	"flowpilot/internal/theme"

	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
	}

	cmd.AddCommand(newThemeShowCmd(app))
	cmd.AddCommand(newThemeSetCmd(app))
	cmd.AddCommand(newThemeToggleCmd(app))

	return cmd
}

type themeOut struct {
	Mode   model.ThemeMode   `json:"mode"`
	Scheme model.ColorScheme `json:"scheme"`
}

// loadThemeStore builds a store seeded from the persisted preference. Save
// failures are logged and swallowed so theme operations always succeed.
func loadThemeStore(cmd *cobra.Command, app *App) *theme.Store {
	opts := []theme.Option{}
	st, err := settings(app)
	if err != nil {
		log.Printf("theme: settings unavailable: %v", err)
		return theme.NewStore()
	}
	if pref, ok, err := st.LoadThemePreference(cmd.Context()); err != nil {
		log.Printf("theme: load preference: %v", err)
	} else if ok {
		opts = append(opts, theme.WithInitialMode(model.ThemeMode(pref)))
	}
	opts = append(opts, theme.WithSaver(func(scheme model.ColorScheme) error {
		return st.SaveThemePreference(cmd.Context(), scheme)
	}))
	return theme.NewStore(opts...)
}

func newThemeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadThemeStore(cmd, app)
			return writeOut(cmd, app, themeOut{Mode: s.Mode(), Scheme: s.Scheme()})
		},
	}
}

func newThemeSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set light|dark|system",
		Short: "Set the theme mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := model.ThemeMode(args[0])
			switch mode {
			case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
			default:
				return writeErr(cmd, fmt.Errorf("unknown theme mode: %s", args[0]))
			}
			s := loadThemeStore(cmd, app)
			s.SetMode(mode)
			return writeOut(cmd, app, themeOut{Mode: s.Mode(), Scheme: s.Scheme()})
		},
	}
}

func newThemeToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadThemeStore(cmd, app)
			s.Toggle()
			return writeOut(cmd, app, themeOut{Mode: s.Mode(), Scheme: s.Scheme()})
		},
	}
}

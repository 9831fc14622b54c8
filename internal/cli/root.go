package cli

import (
	"fmt"
	"os"
	"strings"

	"flowpilot/internal/format"
	"flowpilot/internal/notify"
	"flowpilot/internal/store"
	"flowpilot/internal/timeline"
	"flowpilot/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "flowpilot",
		Short:         "FlowPilot (local-first) habit tracker CLI + TUI",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  flowpilot

  # Scriptable commands
  flowpilot tasks list

  # Find something to read
  flowpilot explore search habits
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("FLOWPILOT_CONFIG_DIR", ""), "Path to config dir (advanced: overrides ~/.flowpilot; mostly for fixtures/tests)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("FLOWPILOT_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newExploreCmd(app))
	cmd.AddCommand(newLibraryCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newOnboardingCmd(app))

	return cmd
}

func runTUI(app *App) error {
	return tui.Run(app.Dir)
}

// settings resolves the settings store rooted at --dir or ~/.flowpilot.
func settings(app *App) (store.Settings, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.ConfigDir()
		if err != nil {
			return store.Settings{}, err
		}
		dir = d
	}
	return store.Settings{Dir: dir}, nil
}

// sessionTimeline builds the seeded in-memory timeline the task commands
// operate on. CLI invocations are one-shot, so reminders use the terminal
// backend only for its permission semantics.
func sessionTimeline() *timeline.Model {
	sched := notify.NewScheduler(notify.TerminalBackend{Out: os.Stderr})
	return timeline.NewModel(sched, timeline.SeedTasks())
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

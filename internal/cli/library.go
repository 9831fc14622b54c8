package cli

import (
	"strings"

	"flowpilot/internal/library"

	"github.com/spf13/cobra"
)

func newLibraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Collection commands",
	}

	cmd.AddCommand(newLibraryCollectionsCmd(app))
	cmd.AddCommand(newLibrarySearchCmd(app))

	return cmd
}

func newLibraryCollectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := library.NewModel()
			return writeOut(cmd, app, map[string]any{"collections": m.Collections()})
		},
	}
}

func newLibrarySearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search saved items across collections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := library.NewModel()
			items := m.Search(strings.Join(args, " "))
			return writeOut(cmd, app, map[string]any{"items": items, "count": len(items)})
		},
	}
}

package cli

import (
	"strings"

	"flowpilot/internal/catalog"
	"flowpilot/internal/model"

	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Content discovery commands",
	}

	cmd.AddCommand(newExploreCategoriesCmd(app))
	cmd.AddCommand(newExploreBooksCmd(app))
	cmd.AddCommand(newExploreSearchCmd(app))

	return cmd
}

func newExploreCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List content categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			type catOut struct {
				ID    string         `json:"id"`
				Name  string         `json:"name"`
				Icon  model.IconKind `json:"icon"`
				Color string         `json:"color"`
				Books int            `json:"books"`
			}
			var out []catOut
			for _, c := range catalog.Categories() {
				out = append(out, catOut{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color, Books: len(c.Books)})
			}
			return writeOut(cmd, app, map[string]any{"categories": out})
		},
	}
}

func newExploreBooksCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "books",
		Short: "List books, optionally for one category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if category == "" {
				return writeOut(cmd, app, map[string]any{"books": catalog.All()})
			}
			bs, ok := catalog.ByCategory(category)
			if !ok {
				return writeErr(cmd, errNotFound("category", category))
			}
			return writeOut(cmd, app, map[string]any{"books": bs})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category id (e.g. productivity)")

	return cmd
}

func newExploreSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search books and topics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type hit struct {
				ID       string `json:"id"`
				Title    string `json:"title"`
				Subtitle string `json:"subtitle"`
				Kind     string `json:"kind"`
			}
			var out []hit
			for _, r := range catalog.Search(strings.Join(args, " ")) {
				kind := "book"
				if r.Topic != nil {
					kind = string(r.Topic.Kind)
				}
				out = append(out, hit{ID: r.ID(), Title: r.Title(), Subtitle: r.Subtitle(), Kind: kind})
			}
			return writeOut(cmd, app, map[string]any{"results": out, "count": len(out)})
		},
	}
}

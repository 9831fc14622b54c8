package cli

import (
	"flowpilot/internal/model"
	"flowpilot/internal/timeline"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Daily timeline commands",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app))
	cmd.AddCommand(newTasksUndoneCmd(app))

	return cmd
}

type tasksOut struct {
	Tasks     []model.Task `json:"tasks"`
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
	Ratio     float64      `json:"ratio"`
}

func tasksPayload(m *timeline.Model) tasksOut {
	ts := m.Tasks()
	return tasksOut{
		Tasks:     ts,
		Completed: m.CompletedCount(),
		Total:     len(ts),
		Ratio:     m.Ratio(),
	}
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the session timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := sessionTimeline()
			return writeOut(cmd, app, tasksPayload(m))
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	var title string
	var timeLabel string
	var category string
	var kind string
	var icon string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to the session timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := sessionTimeline()
			k := model.TaskKind(kind)
			if k != model.TaskKindWellness {
				k = model.TaskKindTask
			}
			task, err := m.Add(cmd.Context(), timeline.TaskDraft{
				Title:    title,
				Time:     timeLabel,
				Category: category,
				Kind:     k,
				Icon:     model.IconKind(icon),
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"task":     task,
				"timeline": tasksPayload(m),
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&timeLabel, "time", "9:00 AM", "Time label, e.g. \"9:00 AM\"")
	cmd.Flags().StringVar(&category, "category", "Personal", "Category label")
	cmd.Flags().StringVar(&kind, "kind", "task", "task|wellness")
	cmd.Flags().StringVar(&icon, "icon", "target", "Icon key")

	return cmd
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleTo(cmd, app, args[0], true)
		},
	}
}

func newTasksUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone <task-id>",
		Short: "Mark a task not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleTo(cmd, app, args[0], false)
		},
	}
}

func toggleTo(cmd *cobra.Command, app *App, id string, completed bool) error {
	m := sessionTimeline()
	var found *model.Task
	for _, t := range m.Tasks() {
		if t.ID == id {
			found = &t
			break
		}
	}
	if found == nil {
		return writeErr(cmd, errNotFound("task", id))
	}
	if found.Completed != completed {
		m.Toggle(cmd.Context(), id)
	}
	return writeOut(cmd, app, tasksPayload(m))
}

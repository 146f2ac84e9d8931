package cli

import (
	"errors"
	"strings"
	"time"

	"tasklite/internal/api"
	"tasklite/internal/model"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksMoveCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (optionally scoped to a project)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			tasks, err := client.ListTasks(cmd.Context())
			if err != nil {
				return writeAPIErr(cmd, sess, err)
			}
			// The endpoint is not project-scoped server-side; scope here.
			if pid := strings.TrimSpace(projectID); pid != "" {
				scoped := tasks[:0]
				for _, t := range tasks {
					if t.ProjectID == pid {
						scoped = append(scoped, t)
					}
				}
				tasks = scoped
			}
			return writeOut(cmd, app, map[string]any{"data": tasks})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id filter")
	return cmd
}

// splitTags turns a comma-separated string into trimmed, non-empty tags,
// preserving order and duplicates.
func splitTags(csv string) []string {
	var tags []string
	for _, part := range strings.Split(csv, ",") {
		if p := strings.TrimSpace(part); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var (
		projectID   string
		name        string
		description string
		tagsCsv     string
		status      string
		priority    string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			n := strings.TrimSpace(name)
			if n == "" {
				return writeErr(cmd, errors.New("task name is required"))
			}
			st := model.StatusTodo
			if strings.TrimSpace(status) != "" {
				st, err = model.ParseStatus(status)
				if err != nil {
					return writeErr(cmd, err)
				}
			}
			pr := model.PriorityMedium
			if strings.TrimSpace(priority) != "" {
				pr, err = model.ParsePriority(priority)
				if err != nil {
					return writeErr(cmd, err)
				}
			}
			draft := api.TaskDraft{
				Name:        n,
				Description: strings.TrimSpace(description),
				Tags:        splitTags(tagsCsv),
				Status:      st,
				Priority:    pr,
				ProjectID:   strings.TrimSpace(projectID),
			}
			if d := strings.TrimSpace(due); d != "" {
				ts, err := time.Parse("2006-01-02", d)
				if err != nil {
					return writeErr(cmd, err)
				}
				draft.Due = &ts
			}

			t, err := client.CreateTask(cmd.Context(), draft)
			if err != nil {
				return writeAPIErr(cmd, sess, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&tagsCsv, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&status, "status", "todo", "Status (todo|in-progress|done)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTasksMoveCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to another status column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := model.ParseStatus(status)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := client.UpdateTaskStatus(cmd.Context(), args[0], st)
			if err != nil {
				return writeAPIErr(cmd, sess, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Destination status (todo|in-progress|done)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.DeleteTask(cmd.Context(), args[0]); err != nil {
				return writeAPIErr(cmd, sess, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"deleted": args[0]}})
		},
	}
}

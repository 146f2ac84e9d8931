package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			projects, err := client.ListProjects(cmd.Context())
			if err != nil {
				return writeAPIErr(cmd, sess, err)
			}
			return writeOut(cmd, app, map[string]any{"data": projects})
		},
	}
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			// Blank names fall back to a default label rather than failing.
			n := strings.TrimSpace(name)
			if n == "" {
				n = "Untitled Project"
			}
			p, err := client.CreateProject(cmd.Context(), n, strings.TrimSpace(description))
			if err != nil {
				return writeAPIErr(cmd, sess, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	return cmd
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.DeleteProject(cmd.Context(), args[0]); err != nil {
				return writeAPIErr(cmd, sess, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"deleted": args[0]}})
		},
	}
}

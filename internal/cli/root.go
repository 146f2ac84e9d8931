package cli

import (
	"errors"
	"fmt"
	"os"

	"tasklite/internal/api"
	"tasklite/internal/config"
	"tasklite/internal/format"
	"tasklite/internal/logging"
	"tasklite/internal/session"
	"tasklite/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	BaseURL    string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:          "tasklite",
		Short:        "TaskLite client (CLI + TUI) for the TaskLite task API",
		SilenceUsage: true,
		Example: `  # Start the interactive TUI
  tasklite

  # Scriptable commands
  tasklite login --email you@example.com --password secret
  tasklite projects list
  tasklite tasks move task-123 --status done`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "api", envOr("TASKLITE_API_URL", cfg.APIBaseURL), "API base URL")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTasksCmd(app))

	return cmd
}

func runTUI(app *App) error {
	sess, err := session.Open()
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		BaseURL: app.BaseURL,
		Session: sess,
		Log:     logging.New(config.Load().LogPath),
	})
}

// gateway wires the API client to the durable session store.
func gateway(app *App) (*api.Client, session.Store, error) {
	sess, err := session.Open()
	if err != nil {
		return nil, session.Store{}, err
	}
	return api.New(app.BaseURL, sess), sess, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

// writeAPIErr applies the uniform 401 contract (clear session, tell the user
// to log in again) and reports everything else as-is.
func writeAPIErr(cmd *cobra.Command, sess session.Store, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		_ = sess.Clear()
		return writeErr(cmd, errors.New("session expired; run `tasklite login`"))
	}
	return writeErr(cmd, err)
}

package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, token, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				// Generic message: do not disclose whether email or password was wrong.
				return writeErr(cmd, errors.New("login failed"))
			}
			if err := sess.SetSession(token, user); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": user})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, token, err := client.Register(cmd.Context(), name, email, password)
			if err != nil {
				return writeErr(cmd, errors.New("registration failed"))
			}
			if err := sess.SetSession(token, user); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": user})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.Clear(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "logged out"})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's user",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := gateway(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			u, ok := sess.User()
			if !ok {
				return writeErr(cmd, errors.New("not logged in"))
			}
			return writeOut(cmd, app, map[string]any{"data": u})
		},
	}
}

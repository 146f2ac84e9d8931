package tui

import (
	"tasklite/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type Options struct {
	BaseURL string
	Session session.Store
	Log     *logrus.Logger
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Session)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

package tui

import (
	"strings"

	"tasklite/internal/toast"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *appModel) pushToast(sev toast.Severity, msg string) tea.Cmd {
	t := m.toasts.Push(msg, sev, 0)
	return expireToastCmd(t)
}

// dismissOldestToast is the keyboard analog of clicking a toast away. The
// expiry tick still pending for the dismissed id finds nothing and no-ops.
func (m *appModel) dismissOldestToast() {
	ts := m.toasts.Toasts()
	if len(ts) == 0 {
		return
	}
	m.toasts.Dismiss(ts[0].ID)
}

func toastColor(sev toast.Severity) lipgloss.TerminalColor {
	switch sev {
	case toast.Success:
		return colorToastSuccess
	case toast.Warning:
		return colorToastWarning
	default:
		return colorToastError
	}
}

// renderToasts draws the active toasts as a right-aligned stack, newest last.
func (m *appModel) renderToasts() string {
	ts := m.toasts.Toasts()
	if len(ts) == 0 {
		return ""
	}
	var lines []string
	for _, t := range ts {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(toastColor(t.Severity)).
			Foreground(toastColor(t.Severity)).
			Padding(0, 1)
		box := style.Render(t.Message)
		if m.width > 0 {
			box = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, box)
		}
		lines = append(lines, box)
	}
	return strings.Join(lines, "\n")
}

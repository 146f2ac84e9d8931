package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.modal != modalNone {
		var box string
		switch m.modal {
		case modalNewProject:
			box = m.renderNewProjectModal()
		case modalTaskForm:
			box = m.renderTaskFormModal()
		case modalConfirmDeleteTask:
			box = m.renderConfirmDeleteTaskModal()
		}
		return m.placeCentered(box)
	}

	header := lipgloss.NewStyle().Bold(true).Render("TaskLite")
	if m.hasUser {
		header += "  " + styleMuted().Render(m.user.Name)
	}

	var body string
	switch m.view {
	case viewLogin, viewRegister:
		body = m.viewAuth()
	case viewProjects:
		body = m.viewProjects()
	case viewBoard:
		body = m.viewBoard()
	}

	parts := []string{header}
	if t := m.renderToasts(); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, body)

	return strings.Join(parts, "\n\n")
}

func (m appModel) placeCentered(s string) string {
	// A modal that fills the screen gets no padding from Place; otherwise it centers.
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m appModel) viewAuth() string {
	var b strings.Builder

	if m.view == viewRegister {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Create your account") + "\n")
		b.WriteString(styleMuted().Render("ctrl+r: back to sign in") + "\n\n")
		b.WriteString(fieldLabelPlain("Name", m.authFocus == 0) + "\n")
		b.WriteString(m.nameInput.View() + "\n\n")
		b.WriteString(fieldLabelPlain("Email", m.authFocus == 1) + "\n")
		b.WriteString(m.emailInput.View() + "\n\n")
		b.WriteString(fieldLabelPlain("Password", m.authFocus == 2) + "\n")
		b.WriteString(m.passwordInput.View() + "\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Sign in") + "\n")
		b.WriteString(styleMuted().Render("ctrl+r: create an account") + "\n\n")
		b.WriteString(fieldLabelPlain("Email", m.authFocus == 0) + "\n")
		b.WriteString(m.emailInput.View() + "\n\n")
		b.WriteString(fieldLabelPlain("Password", m.authFocus == 1) + "\n")
		b.WriteString(m.passwordInput.View() + "\n")
	}

	if m.authBusy {
		b.WriteString("\n" + styleMuted().Render("Working..."))
	}
	if m.authErr != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(colorDanger).Render(m.authErr))
	}

	b.WriteString("\n\n" + styleMuted().Render("tab: next field   enter: submit   ctrl+c: quit"))
	return b.String()
}

// fieldLabelPlain is the non-modal variant (no surface background).
func fieldLabelPlain(s string, active bool) string {
	st := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	if active {
		st = st.Foreground(colorSurfaceFg).Bold(true)
	}
	return st.Render(s)
}

func (m appModel) viewBoard() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.boardProjectName) + "\n\n")

	switch {
	case m.boardLoading:
		b.WriteString(styleMuted().Render("Loading tasks...") + "\n")
	case m.boardErr != "":
		b.WriteString(lipgloss.NewStyle().Foreground(colorDanger).Render(m.boardErr) + "\n")
	default:
		bd := buildBoard(m.tasks)
		sel := bd.clamp(m.boardSel)

		width := m.width - 2
		if width > maxContentW+minDetailW {
			width = maxContentW + minDetailW
		}

		boardH := m.height - 8
		if boardH < 10 {
			boardH = 10
		}

		// Wide terminals get a detail pane for the selected card.
		if t, ok := bd.selectedTask(sel); ok && m.width >= maxContentW+minDetailW {
			detailW := minDetailW
			boardW := width - detailW - boardColGapW
			panes := lipgloss.JoinHorizontal(
				lipgloss.Top,
				renderBoard(bd, sel, boardW, boardH),
				strings.Repeat(" ", boardColGapW),
				normalizePane(renderTaskDetail(t, detailW), detailW, boardH),
			)
			b.WriteString(panes)
		} else {
			b.WriteString(renderBoard(bd, sel, width, boardH))
		}
		b.WriteString("\n")
	}

	help := "h/l: column  j/k: card  H/L: move card  n: new  enter: edit  d: delete  r: reload  x: dismiss toast  esc: back"
	b.WriteString("\n" + styleMuted().Render(help))
	return b.String()
}

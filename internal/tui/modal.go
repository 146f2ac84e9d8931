package tui

import (
	"strings"

	"tasklite/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const modalMaxBodyW = 72

func modalBodyWidth(width int) int {
	w := width - 10
	if w > modalMaxBodyW {
		w = modalMaxBodyW
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModalBox draws a centered-content modal surface: bold title, body,
// rounded border, elevated background.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	titleLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Width(bodyW).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Width(bodyW).
		Render(content)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Background(colorSurfaceBg).
		Padding(1, 2).
		Render(titleLine + "\n\n" + body)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	// Avoid borders here: some terminals show background artifacts when nesting
	// bordered components inside a modal with a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorSurfaceBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{
		body,
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}

func fieldLabel(s string, active bool) string {
	st := lipgloss.NewStyle().Background(colorSurfaceBg).Foreground(colorChromeMutedFg)
	if active {
		st = st.Foreground(colorSurfaceFg).Bold(true)
	}
	return st.Render(s)
}

// renderChoiceRow draws a segmented selector, highlighting the current value.
func renderChoiceRow(options []string, labels []string, current string, active bool) string {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	selected := base.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg)
	if active {
		selected = selected.Bold(true)
	}

	sep := lipgloss.NewStyle().Background(colorSurfaceBg).Render(" ")
	parts := make([]string, 0, len(options)*2)
	for i, opt := range options {
		if i > 0 {
			parts = append(parts, sep)
		}
		st := base
		if opt == current {
			st = selected
		}
		parts = append(parts, st.Render(labels[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m appModel) renderNewProjectModal() string {
	var b strings.Builder

	b.WriteString(fieldLabel("Name", m.projFocus == 0))
	b.WriteString("\n")
	b.WriteString(m.projName.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Description", m.projFocus == 1))
	b.WriteString("\n")
	b.WriteString(m.projDesc.View())
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("tab: next field   enter: create   esc: cancel"))

	return renderModalBox(m.width, "New project", b.String())
}

func statusOptions() (values []string, labels []string) {
	for _, s := range model.Statuses {
		values = append(values, string(s))
		labels = append(labels, s.Label())
	}
	return values, labels
}

func priorityOptions() (values []string, labels []string) {
	for _, p := range model.Priorities {
		values = append(values, string(p))
		labels = append(labels, p.Label())
	}
	return values, labels
}

func (m appModel) renderTaskFormModal() string {
	f := m.form
	title := "New task"
	if f.editing {
		title = "Edit task"
	}

	var b strings.Builder

	b.WriteString(fieldLabel("Name", f.focus == taskFocusName))
	b.WriteString("\n")
	b.WriteString(f.name.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Description", f.focus == taskFocusDesc))
	b.WriteString("\n")
	b.WriteString(f.desc.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Tags", f.focus == taskFocusTags))
	b.WriteString("\n")
	b.WriteString(f.tags.View())
	b.WriteString("\n\n")

	sv, sl := statusOptions()
	b.WriteString(fieldLabel("Status", f.focus == taskFocusStatus))
	b.WriteString("  ")
	b.WriteString(renderChoiceRow(sv, sl, string(f.status), f.focus == taskFocusStatus))
	b.WriteString("\n\n")

	pv, pl := priorityOptions()
	b.WriteString(fieldLabel("Priority", f.focus == taskFocusPriority))
	b.WriteString("  ")
	b.WriteString(renderChoiceRow(pv, pl, string(f.priority), f.focus == taskFocusPriority))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Due", f.focus == taskFocusDue))
	b.WriteString("\n")
	b.WriteString(f.due.View())
	b.WriteString("\n")

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Background(colorSurfaceBg).Foreground(colorDanger).Render(f.err))
		b.WriteString("\n")
	}
	if f.busy {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("Saving..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	verb := "create"
	if f.editing {
		verb = "save"
	}
	b.WriteString(styleMuted().Render("tab: next field   left/right: choose   enter: " + verb + "   esc: cancel"))

	return renderModalBox(m.width, title, b.String())
}

func (m appModel) renderConfirmDeleteTaskModal() string {
	name := ""
	for _, t := range m.tasks {
		if t.ID == m.confirmForID {
			name = t.Name
			break
		}
	}
	body := "Delete task \"" + name + "\"? This cannot be undone."
	return renderConfirmModal(m.width, "Delete task", body, "Delete", "Cancel", m.confirmFocus)
}

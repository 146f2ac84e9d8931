package tui

import (
	"fmt"
	"strings"

	"tasklite/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// boardSelection tracks the focused card on the three-column board. ItemID is
// the stable selected task id, preferred over the index for tracking focus
// across moves and reloads.
type boardSelection struct {
	Col    int
	Item   int
	ItemID string
}

type boardCol struct {
	status model.Status
	tasks  []model.Task
}

type board struct {
	cols []boardCol
}

// buildBoard groups tasks into the three fixed status columns, preserving the
// collection's order inside each column (newest-first after prepends, matching
// the fetch/prepend order of the task list itself).
func buildBoard(tasks []model.Task) board {
	cols := make([]boardCol, 0, len(model.Statuses))
	for _, st := range model.Statuses {
		cols = append(cols, boardCol{status: st})
	}
	for _, t := range tasks {
		for i := range cols {
			if cols[i].status == t.Status {
				cols[i].tasks = append(cols[i].tasks, t)
				break
			}
		}
	}
	return board{cols: cols}
}

func (b board) indexOfTaskID(id string) (int, int, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, 0, false
	}
	for ci := range b.cols {
		for ti := range b.cols[ci].tasks {
			if b.cols[ci].tasks[ti].ID == id {
				return ci, ti, true
			}
		}
	}
	return 0, 0, false
}

func (b board) clamp(sel boardSelection) boardSelection {
	if len(b.cols) == 0 {
		return boardSelection{Col: 0, Item: -1}
	}

	// Prefer stable selection by id when present.
	if ci, ti, ok := b.indexOfTaskID(sel.ItemID); ok {
		sel.Col = ci
		sel.Item = ti
	} else {
		sel.ItemID = ""
	}

	if sel.Col < 0 {
		sel.Col = 0
	}
	if sel.Col >= len(b.cols) {
		sel.Col = len(b.cols) - 1
	}

	n := len(b.cols[sel.Col].tasks)
	if n == 0 {
		sel.Item = -1
		return sel
	}
	if sel.Item < 0 {
		sel.Item = 0
	}
	if sel.Item >= n {
		sel.Item = n - 1
	}
	sel.ItemID = b.cols[sel.Col].tasks[sel.Item].ID
	return sel
}

func (b board) selectedTask(sel boardSelection) (model.Task, bool) {
	sel = b.clamp(sel)
	if sel.Col < 0 || sel.Col >= len(b.cols) {
		return model.Task{}, false
	}
	if sel.Item < 0 || sel.Item >= len(b.cols[sel.Col].tasks) {
		return model.Task{}, false
	}
	return b.cols[sel.Col].tasks[sel.Item], true
}

func renderBoard(b board, sel boardSelection, width, height int) string {
	if width < 30 {
		width = 30
	}
	sel = b.clamp(sel)

	nCols := len(b.cols)
	colW := (width - boardColGapW*(nCols-1)) / nCols
	if colW < 18 {
		colW = 18
	}

	rendered := make([]string, 0, nCols)
	for ci, col := range b.cols {
		rendered = append(rendered, renderBoardColumn(col, colW, height, ci == sel.Col, sel))
	}

	gap := strings.Repeat(" ", boardColGapW)
	joined := rendered[0]
	for _, r := range rendered[1:] {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, joined, gap, r)
	}
	return joined
}

func renderBoardColumn(col boardCol, width, height int, active bool, sel boardSelection) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorChromeMutedFg)
	if active {
		headerStyle = headerStyle.Foreground(colorAccent)
	}
	header := headerStyle.Render(fmt.Sprintf("%s (%d)", col.status.Label(), len(col.tasks)))

	parts := []string{header, ""}
	if len(col.tasks) == 0 {
		parts = append(parts, styleMuted().Render("No tasks"))
	}
	for ti, t := range col.tasks {
		selected := active && ti == sel.Item
		parts = append(parts, renderTaskCard(t, width, selected))
	}

	return normalizePane(strings.Join(parts, "\n"), width, height)
}

func renderTaskCard(t model.Task, width int, selected bool) string {
	border := colorCardBorder
	if selected {
		border = colorSelectedBorder
	}

	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	name := lipgloss.NewStyle().Bold(true).Render(truncate(t.Name, innerW-len(t.Priority.Label())-1))
	prio := styleMuted().Render(t.Priority.Label())
	head := name + " " + prio

	lines := []string{head}
	if strings.TrimSpace(t.Description) != "" {
		lines = append(lines, styleMuted().Render(truncate(firstLine(t.Description), innerW)))
	}

	var meta []string
	for _, tag := range t.Tags {
		meta = append(meta, "#"+tag)
	}
	if lbl := formatDueLabel(t.Due); lbl != "" {
		meta = append(meta, lbl)
	}
	if len(meta) > 0 {
		lines = append(lines, styleMuted().Render(truncate(strings.Join(meta, "  "), innerW)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// renderTaskDetail is the markdown preview panel for the selected card.
func renderTaskDetail(t model.Task, width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(t.Name) + "\n")

	meta := []string{t.Status.Label(), t.Priority.Label()}
	if lbl := formatDueLabel(t.Due); lbl != "" {
		meta = append(meta, lbl)
	}
	if len(t.Tags) > 0 {
		meta = append(meta, "#"+strings.Join(t.Tags, " #"))
	}
	b.WriteString(styleMuted().Render(strings.Join(meta, "  ")) + "\n")

	if strings.TrimSpace(t.Description) != "" {
		b.WriteString("\n" + renderMarkdown(t.Description, width-2))
	}
	return b.String()
}

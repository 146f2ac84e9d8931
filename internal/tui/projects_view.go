package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tasklite/internal/model"

	"github.com/charmbracelet/lipgloss"
)

type sortKey string

const (
	sortByName    sortKey = "name"
	sortByUpdated sortKey = "updatedAt"
	sortByCreated sortKey = "createdAt"
)

type sortDir string

const (
	sortAsc  sortDir = "asc"
	sortDesc sortDir = "desc"
)

func (k sortKey) label() string {
	switch k {
	case sortByName:
		return "Name"
	case sortByUpdated:
		return "Updated"
	case sortByCreated:
		return "Created"
	default:
		return string(k)
	}
}

func nextSortKey(k sortKey) sortKey {
	switch k {
	case sortByUpdated:
		return sortByCreated
	case sortByCreated:
		return sortByName
	default:
		return sortByUpdated
	}
}

// filterSortProjects is the pure project pipeline: case-insensitive substring
// filter on name or description, then a stable sort by key/dir. The source
// slice is never mutated; ties keep the filtered order (no secondary key).
func filterSortProjects(items []model.Project, query string, key sortKey, dir sortDir) []model.Project {
	q := strings.ToLower(strings.TrimSpace(query))

	base := make([]model.Project, 0, len(items))
	for _, p := range items {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			base = append(base, p)
		}
	}

	sort.SliceStable(base, func(i, j int) bool {
		var res int
		switch key {
		case sortByName:
			res = strings.Compare(base[i].Name, base[j].Name)
		case sortByCreated:
			res = compareTimes(base[i].CreatedAt, base[j].CreatedAt)
		default:
			res = compareTimes(base[i].UpdatedAt, base[j].UpdatedAt)
		}
		if dir == sortAsc {
			return res < 0
		}
		return res > 0
	})

	return base
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// visibleProjects applies the current query/sort controls.
func (m appModel) visibleProjects() []model.Project {
	return filterSortProjects(m.projects, m.searchInput.Value(), m.sortKey, m.sortDir)
}

func (m appModel) viewProjects() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render("Projects")
	subtitle := styleMuted().Render("Your project board. Search and sort as needed.")
	b.WriteString(title + "\n" + subtitle + "\n\n")

	dirGlyph := "↓"
	if m.sortDir == sortAsc {
		dirGlyph = "↑"
	}
	search := m.searchInput.View()
	controls := fmt.Sprintf("%s   sort: %s %s", search, m.sortKey.label(), dirGlyph)
	b.WriteString(controls + "\n\n")

	visible := m.visibleProjects()
	if len(visible) == 0 {
		b.WriteString(styleMuted().Render("No projects found. Try a different search.") + "\n")
	}

	cardW := m.width - 4
	if cardW > maxContentW {
		cardW = maxContentW
	}
	if cardW < 30 {
		cardW = 30
	}

	for i, p := range visible {
		b.WriteString(renderProjectCard(p, cardW, i == m.projCursor) + "\n")
	}

	help := "enter: open  n: new  d: delete  /: search  s: sort  o: direction  x: dismiss toast  T: theme  L: logout  q: quit"
	b.WriteString("\n" + styleMuted().Render(help))
	return b.String()
}

func renderProjectCard(p model.Project, width int, selected bool) string {
	border := colorCardBorder
	if selected {
		border = colorSelectedBorder
	}

	name := lipgloss.NewStyle().Bold(true).Render(p.Name)
	meta := styleMuted().Render("Updated " + formatDate(p.UpdatedAt))

	lines := []string{name}
	if strings.TrimSpace(p.Description) != "" {
		lines = append(lines, truncate(p.Description, width-4))
	}
	lines = append(lines, meta)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

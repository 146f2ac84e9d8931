package tui

import (
	"time"
)

// formatDate renders a timestamp for list/card display ("Jan 2, 2006").
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006")
}

// formatDueLabel renders a compact due marker for cards ("due Jan 2").
func formatDueLabel(due *time.Time) string {
	if due == nil || due.IsZero() {
		return ""
	}
	return "due " + due.Local().Format("Jan 2")
}

// dateOnly renders the form representation of a due date (YYYY-MM-DD).
func dateOnly(due *time.Time) string {
	if due == nil || due.IsZero() {
		return ""
	}
	return due.Local().Format("2006-01-02")
}

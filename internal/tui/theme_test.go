package tui

import (
	"path/filepath"
	"testing"

	"tasklite/internal/session"

	"github.com/charmbracelet/lipgloss"
)

// Not parallel: these mutate lipgloss package state.

func TestApplyThemePreference_SessionBeatsEnv(t *testing.T) {
	t.Setenv("TASKLITE_THEME", "dark")
	t.Setenv("TASKLITE_DARKBG", "")
	t.Setenv("COLORFGBG", "")

	sess := session.Store{Path: filepath.Join(t.TempDir(), "session.sqlite")}
	if err := sess.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}

	prev := lipgloss.HasDarkBackground()
	defer lipgloss.SetHasDarkBackground(prev)

	applyThemePreference(sess)
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected the persisted preference to win over TASKLITE_THEME")
	}
}

func TestApplyThemePreference_EnvFallback(t *testing.T) {
	t.Setenv("TASKLITE_THEME", "dark")
	t.Setenv("TASKLITE_DARKBG", "")
	t.Setenv("COLORFGBG", "")

	sess := session.Store{Path: filepath.Join(t.TempDir(), "session.sqlite")}

	prev := lipgloss.HasDarkBackground()
	defer lipgloss.SetHasDarkBackground(prev)

	applyThemePreference(sess)
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("expected TASKLITE_THEME=dark to apply without a persisted preference")
	}
}

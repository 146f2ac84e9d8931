package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestNormalizePane_ExactDimensions(t *testing.T) {
	t.Parallel()

	out := normalizePane("short\na much longer line than the width\n", 10, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines; got %d", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 10 {
			t.Fatalf("line %d width = %d, want 10", i, w)
		}
	}
	if !strings.Contains(lines[1], "…") {
		t.Fatalf("expected the long line to be truncated with an ellipsis; got %q", lines[1])
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("hello", 10); got != "hello" {
		t.Fatalf("expected no-op below the limit; got %q", got)
	}
	got := truncate("hello world", 8)
	if xansi.StringWidth(got) != 8 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected an 8-wide ellipsized string; got %q", got)
	}
	if truncate("anything", 0) != "" {
		t.Fatalf("expected empty output for zero width")
	}
}

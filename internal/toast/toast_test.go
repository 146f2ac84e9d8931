package toast

import (
	"testing"
	"time"
)

func TestPush_VisibleImmediately_GoneAfterDuration(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewCenterAt(func() time.Time { return now })

	pushed := c.Push("Saved", Success, 100*time.Millisecond)
	if pushed.ID == "" {
		t.Fatalf("expected a non-empty toast id")
	}

	got := c.Toasts()
	if len(got) != 1 || got[0].Message != "Saved" {
		t.Fatalf("expected the toast immediately after push; got %+v", got)
	}

	// Still alive just before the deadline.
	c.Sweep(now.Add(99 * time.Millisecond))
	if len(c.Toasts()) != 1 {
		t.Fatalf("expected toast to survive a sweep before its deadline")
	}

	c.Sweep(now.Add(150 * time.Millisecond))
	if len(c.Toasts()) != 0 {
		t.Fatalf("expected toast to be swept after its deadline; got %+v", c.Toasts())
	}
}

func TestPush_ZeroDurationUsesDefault(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewCenterAt(func() time.Time { return now })

	pushed := c.Warning("heads up")
	if pushed.Duration != DefaultDuration {
		t.Fatalf("expected default duration; got %v", pushed.Duration)
	}
	if got := pushed.Deadline(); !got.Equal(now.Add(DefaultDuration)) {
		t.Fatalf("expected deadline %v; got %v", now.Add(DefaultDuration), got)
	}
}

func TestDismiss_CancelsPendingExpiry(t *testing.T) {
	t.Parallel()

	c := NewCenter()
	pushed := c.Error("boom")

	if !c.Dismiss(pushed.ID) {
		t.Fatalf("expected Dismiss to report removal")
	}
	// The timer firing later for the same id is a no-op.
	if c.Dismiss(pushed.ID) {
		t.Fatalf("expected second Dismiss to be a no-op")
	}
	if len(c.Toasts()) != 0 {
		t.Fatalf("expected no toasts after dismissal")
	}
}

func TestPush_DuplicateMessagesGetDistinctIDs(t *testing.T) {
	t.Parallel()

	c := NewCenter()
	a := c.Success("same")
	b := c.Success("same")

	if a.ID == b.ID {
		t.Fatalf("expected distinct ids for concurrent identical toasts")
	}
	if len(c.Toasts()) != 2 {
		t.Fatalf("expected both toasts to coexist; got %d", len(c.Toasts()))
	}
}

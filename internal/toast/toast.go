// Package toast is the in-process notification channel: short-lived
// user-facing messages with automatic timed dismissal. A Center is created
// once per application (or per test) and passed down explicitly; there is no
// package-level state.
package toast

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

const DefaultDuration = 3 * time.Second

type Toast struct {
	ID       string
	Severity Severity
	Message  string
	Duration time.Duration

	deadline time.Time
}

// Deadline is when the toast self-dismisses absent user interaction.
func (t Toast) Deadline() time.Time { return t.deadline }

type Center struct {
	toasts []Toast
	now    func() time.Time
}

func NewCenter() *Center {
	return &Center{now: time.Now}
}

// NewCenterAt injects the clock; tests drive expiry deterministically.
func NewCenterAt(now func() time.Time) *Center {
	if now == nil {
		now = time.Now
	}
	return &Center{now: now}
}

// Push appends a toast. Zero duration means DefaultDuration. Identical
// messages are not deduplicated and there is no cap on concurrent toasts.
func (c *Center) Push(message string, sev Severity, d time.Duration) Toast {
	if d <= 0 {
		d = DefaultDuration
	}
	now := c.now()
	t := Toast{
		// Locally unique: wall-clock millis plus a random suffix.
		ID:       fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Severity: sev,
		Message:  message,
		Duration: d,
		deadline: now.Add(d),
	}
	c.toasts = append(c.toasts, t)
	return t
}

func (c *Center) Success(message string) Toast { return c.Push(message, Success, 0) }
func (c *Center) Warning(message string) Toast { return c.Push(message, Warning, 0) }
func (c *Center) Error(message string) Toast   { return c.Push(message, Error, 0) }

// Dismiss removes a toast immediately (user click). A timer firing later for
// the same id finds nothing and is a no-op, which is how pending scheduled
// removals are "cancelled".
func (c *Center) Dismiss(id string) bool {
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Sweep drops every toast whose deadline has passed at now.
func (c *Center) Sweep(now time.Time) {
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.deadline.After(now) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

// Toasts returns the live toasts in push order.
func (c *Center) Toasts() []Toast {
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Clear drops everything; hosting-scope teardown.
func (c *Center) Clear() {
	c.toasts = nil
}

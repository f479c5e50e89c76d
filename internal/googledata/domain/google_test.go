package domain

import (
	"strings"
	"testing"
)

func TestNewEventSummary_PrefersDateTimeOverDate(t *testing.T) {
	ev := NewEventSummary("Standup", EventTime{DateTime: "2026-09-01T09:00:00Z", Date: "2026-09-01"})
	if ev.When != "2026-09-01T09:00:00Z" {
		t.Errorf("expected dateTime, got %q", ev.When)
	}

	ev = NewEventSummary("Holiday", EventTime{Date: "2026-09-01"})
	if ev.When != "2026-09-01" {
		t.Errorf("expected date fallback, got %q", ev.When)
	}
}

func TestNewEventSummary_PlaceholderTitle(t *testing.T) {
	ev := NewEventSummary("", EventTime{Date: "2026-09-01"})
	if ev.Title != "(no title)" {
		t.Errorf("expected placeholder title, got %q", ev.Title)
	}
}

func TestContextSnapshot_IsEmpty(t *testing.T) {
	if !(ContextSnapshot{}).IsEmpty() {
		t.Error("zero snapshot should be empty")
	}
	if (ContextSnapshot{UserName: "Ada"}).IsEmpty() {
		t.Error("snapshot with name should not be empty")
	}
	if (ContextSnapshot{UpcomingEvents: []EventSummary{{Title: "x"}}}).IsEmpty() {
		t.Error("snapshot with events should not be empty")
	}
}

func TestContextSnapshot_RenderEmpty(t *testing.T) {
	if got := (ContextSnapshot{}).Render(); got != "" {
		t.Errorf("empty snapshot must render to empty string, got %q", got)
	}
}

func TestContextSnapshot_RenderFull(t *testing.T) {
	s := ContextSnapshot{
		UserName:  "Ada",
		UserEmail: "ada@example.com",
		UpcomingEvents: []EventSummary{
			{Title: "Standup", When: "2026-09-01T09:00:00Z"},
			{Title: "Review", When: "2026-09-02"},
		},
	}

	got := s.Render()
	if !strings.HasPrefix(got, "User: Ada (ada@example.com)\n") {
		t.Errorf("missing profile line: %q", got)
	}
	if !strings.Contains(got, "Upcoming Calendar Events:\n- Standup (2026-09-01T09:00:00Z)\n- Review (2026-09-02)") {
		t.Errorf("missing event bullets: %q", got)
	}
}

func TestContextSnapshot_RenderPartial(t *testing.T) {
	// Profile failed, events succeeded: no User line.
	s := ContextSnapshot{UpcomingEvents: []EventSummary{{Title: "Standup", When: "2026-09-01"}}}
	got := s.Render()
	if strings.Contains(got, "User:") {
		t.Errorf("unexpected profile line: %q", got)
	}
	if !strings.Contains(got, "- Standup (2026-09-01)") {
		t.Errorf("missing event line: %q", got)
	}

	// Events failed (or none), profile succeeded: explicit marker.
	s = ContextSnapshot{UserName: "Ada", UserEmail: "ada@example.com"}
	got = s.Render()
	if !strings.Contains(got, "No upcoming events") {
		t.Errorf("missing empty-events marker: %q", got)
	}
}

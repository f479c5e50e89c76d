package domain

import (
	"fmt"
	"strings"
)

// TokenPair is the OAuth2 credential pair held by the client. It is never
// persisted server-side; every authenticated call receives it as a request
// parameter and uses it atomically.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
}

// UserProfile is the subset of the Google userinfo payload the app consumes.
type UserProfile struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// EventTime mirrors the Google Calendar start/end shape: a precise dateTime
// for timed events, a date for all-day events.
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

type CalendarEvent struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
}

// MessageRef is the lightweight message listing Gmail returns (id + thread).
type MessageRef struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId,omitempty"`
}

// EventSummary is a display-ready projection of a calendar event used when
// composing prompt context.
type EventSummary struct {
	Title string `json:"title"`
	When  string `json:"when"`
}

// NewEventSummary prefers the precise timestamp over the date-only value and
// substitutes a placeholder title when the event has none.
func NewEventSummary(summary string, start EventTime) EventSummary {
	title := summary
	if title == "" {
		title = "(no title)"
	}
	when := start.DateTime
	if when == "" {
		when = start.Date
	}
	return EventSummary{Title: title, When: when}
}

// ContextSnapshot is the ephemeral, per-request view of the user's account
// data used to enrich a single prompt. Any field may be empty when the
// corresponding fetch failed.
type ContextSnapshot struct {
	UserName       string         `json:"userName,omitempty"`
	UserEmail      string         `json:"userEmail,omitempty"`
	UpcomingEvents []EventSummary `json:"upcomingEvents"`
}

func (s ContextSnapshot) IsEmpty() bool {
	return s.UserName == "" && s.UserEmail == "" && len(s.UpcomingEvents) == 0
}

// Render formats the snapshot as the context block embedded in the system
// instruction. Returns the empty string for an empty snapshot.
func (s ContextSnapshot) Render() string {
	if s.IsEmpty() {
		return ""
	}

	var b strings.Builder
	if s.UserName != "" || s.UserEmail != "" {
		b.WriteString(fmt.Sprintf("User: %s (%s)\n", s.UserName, s.UserEmail))
	}
	b.WriteString("Upcoming Calendar Events:\n")
	if len(s.UpcomingEvents) == 0 {
		b.WriteString("No upcoming events")
	} else {
		lines := make([]string, 0, len(s.UpcomingEvents))
		for _, ev := range s.UpcomingEvents {
			lines = append(lines, fmt.Sprintf("- %s (%s)", ev.Title, ev.When))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	b.WriteString("\n")
	return b.String()
}

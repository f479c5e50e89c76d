package usecase

import (
	"context"
	"log"
	"time"

	"gagent-backend/internal/googledata/domain"

	"google.golang.org/api/calendar/v3"
)

const (
	// Endpoint listings return at most this many items.
	maxListResults = 10
	// Prompt context is bounded tighter than the listing endpoints.
	maxContextEvents = 5
)

// googleDataUsecase implements GoogleDataUsecase
type googleDataUsecase struct {
	api GoogleAPI
}

func NewGoogleDataUsecase(api GoogleAPI) GoogleDataUsecase {
	return &googleDataUsecase{api: api}
}

func (u *googleDataUsecase) AuthURL() string {
	return u.api.AuthURL()
}

func (u *googleDataUsecase) ExchangeCode(ctx context.Context, code string) (*domain.TokenPair, error) {
	token, err := u.api.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	pair := &domain.TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		pair.Expiry = token.Expiry.UTC().Format(time.RFC3339)
	}
	return pair, nil
}

func (u *googleDataUsecase) UserInfo(ctx context.Context, tokens domain.TokenPair) (*domain.UserProfile, error) {
	info, err := u.api.UserInfo(ctx, tokens)
	if err != nil {
		return nil, err
	}
	return &domain.UserProfile{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}

func (u *googleDataUsecase) CalendarEvents(ctx context.Context, tokens domain.TokenPair) ([]domain.CalendarEvent, error) {
	items, err := u.api.Events(ctx, tokens, maxListResults)
	if err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0, len(items))
	for _, item := range items {
		events = append(events, convertEvent(item))
	}
	return events, nil
}

func (u *googleDataUsecase) UnreadMessages(ctx context.Context, tokens domain.TokenPair) ([]domain.MessageRef, error) {
	items, err := u.api.UnreadMessages(ctx, tokens, maxListResults)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.MessageRef, 0, len(items))
	for _, item := range items {
		messages = append(messages, domain.MessageRef{
			ID:       item.Id,
			ThreadID: item.ThreadId,
		})
	}
	return messages, nil
}

// FetchContext performs two independent reads (profile, upcoming events).
// A failure in either read never fails the overall call: the snapshot keeps
// whatever subset succeeded so a Google hiccup cannot block the AI response.
func (u *googleDataUsecase) FetchContext(ctx context.Context, tokens domain.TokenPair) domain.ContextSnapshot {
	snapshot := domain.ContextSnapshot{UpcomingEvents: []domain.EventSummary{}}

	if info, err := u.api.UserInfo(ctx, tokens); err != nil {
		log.Printf("[GOOGLE] Failed to fetch user info for context: %v", err)
	} else {
		snapshot.UserName = info.Name
		snapshot.UserEmail = info.Email
	}

	if items, err := u.api.Events(ctx, tokens, maxContextEvents); err != nil {
		log.Printf("[GOOGLE] Failed to fetch calendar events for context: %v", err)
	} else {
		for _, item := range items {
			ev := convertEvent(item)
			snapshot.UpcomingEvents = append(snapshot.UpcomingEvents, domain.NewEventSummary(ev.Summary, ev.Start))
		}
	}

	return snapshot
}

func convertEvent(item *calendar.Event) domain.CalendarEvent {
	ev := domain.CalendarEvent{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Status:      item.Status,
	}
	if item.Start != nil {
		ev.Start = domain.EventTime{DateTime: item.Start.DateTime, Date: item.Start.Date}
	}
	if item.End != nil {
		ev.End = domain.EventTime{DateTime: item.End.DateTime, Date: item.End.Date}
	}
	return ev
}

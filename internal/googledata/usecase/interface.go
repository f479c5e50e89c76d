package usecase

import (
	"context"

	"gagent-backend/internal/googledata/domain"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	goauth2 "google.golang.org/api/oauth2/v2"
)

// GoogleAPI is the provider-facing surface the usecase depends on.
// *googleclient.Service implements it; tests substitute fakes.
type GoogleAPI interface {
	AuthURL() string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	UserInfo(ctx context.Context, tokens domain.TokenPair) (*goauth2.Userinfo, error)
	Events(ctx context.Context, tokens domain.TokenPair, maxResults int64) ([]*calendar.Event, error)
	UnreadMessages(ctx context.Context, tokens domain.TokenPair, maxResults int64) ([]*gmail.Message, error)
}

// GoogleDataUsecase exposes the OAuth2 flow and the per-request Google reads.
type GoogleDataUsecase interface {
	AuthURL() string
	ExchangeCode(ctx context.Context, code string) (*domain.TokenPair, error)
	UserInfo(ctx context.Context, tokens domain.TokenPair) (*domain.UserProfile, error)
	CalendarEvents(ctx context.Context, tokens domain.TokenPair) ([]domain.CalendarEvent, error)
	UnreadMessages(ctx context.Context, tokens domain.TokenPair) ([]domain.MessageRef, error)

	// FetchContext retrieves a bounded snapshot of the user's data for prompt
	// enrichment. Best-effort: individual failures are logged and the
	// successful subset is returned.
	FetchContext(ctx context.Context, tokens domain.TokenPair) domain.ContextSnapshot
}

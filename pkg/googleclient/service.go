package googleclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	googledomain "gagent-backend/internal/googledata/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Scopes requested during authorization. Drive is requested for parity with
// the consent screen the frontend was built against even though no drive data
// is read yet.
var Scopes = []string{
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/calendar.events",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/drive.readonly",
}

// Service holds the OAuth2 client configuration. It is read-only after
// construction; every request builds its own authenticated client from the
// request's token pair, so concurrent requests never share credentials.
type Service struct {
	config *oauth2.Config
}

func NewService(clientID, clientSecret, redirectURL string) *Service {
	return &Service{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       Scopes,
		},
	}
}

// AuthURL builds the authorization URL. Offline access plus forced consent
// makes Google return a refresh token even on repeat authorization.
func (s *Service) AuthURL() string {
	return s.config.AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange converts an authorization code into a token pair. The result is
// returned to the caller for client-side storage, never persisted here.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange authorization code: %w", err)
	}
	return token, nil
}

// httpClient returns a request-scoped authenticated client. When a refresh
// token is present the token source refreshes transparently on expiry.
func (s *Service) httpClient(ctx context.Context, tokens googledomain.TokenPair) *http.Client {
	token := &oauth2.Token{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    "Bearer",
	}
	return oauth2.NewClient(ctx, s.config.TokenSource(ctx, token))
}

// UserInfo retrieves the user's basic profile.
func (s *Service) UserInfo(ctx context.Context, tokens googledomain.TokenPair) (*goauth2.Userinfo, error) {
	srv, err := goauth2.NewService(ctx, option.WithHTTPClient(s.httpClient(ctx, tokens)))
	if err != nil {
		return nil, fmt.Errorf("unable to create userinfo service: %w", err)
	}

	info, err := srv.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve userinfo: %w", err)
	}
	return info, nil
}

// Events lists upcoming events on the primary calendar, ordered by start time
// ascending and restricted to events starting at or after now.
func (s *Service) Events(ctx context.Context, tokens googledomain.TokenPair, maxResults int64) ([]*calendar.Event, error) {
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(s.httpClient(ctx, tokens)))
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar service: %w", err)
	}

	resp, err := srv.Events.List("primary").
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(time.Now().Format(time.RFC3339)).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve events: %w", err)
	}
	return resp.Items, nil
}

// UnreadMessages lists the user's unread Gmail messages.
func (s *Service) UnreadMessages(ctx context.Context, tokens googledomain.TokenPair, maxResults int64) ([]*gmail.Message, error) {
	srv, err := gmail.NewService(ctx, option.WithHTTPClient(s.httpClient(ctx, tokens)))
	if err != nil {
		return nil, fmt.Errorf("unable to create gmail service: %w", err)
	}

	resp, err := srv.Users.Messages.List("me").
		MaxResults(maxResults).
		Q("is:unread").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve messages: %w", err)
	}
	return resp.Messages, nil
}

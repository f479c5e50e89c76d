package dto

import "gagent-backend/internal/googledata/domain"

type AuthURLResponse struct {
	URL string `json:"url"`
}

type TokensResponse struct {
	Tokens *domain.TokenPair `json:"tokens"`
}

type UserInfoResponse struct {
	User *domain.UserProfile `json:"user"`
}

type EventsResponse struct {
	Events []domain.CalendarEvent `json:"events"`
}

type MessagesResponse struct {
	Messages []domain.MessageRef `json:"messages"`
}

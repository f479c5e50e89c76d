package usecase

import (
	"context"
	"errors"

	agentdomain "gagent-backend/internal/agent/domain"
	googledomain "gagent-backend/internal/googledata/domain"
)

// ErrEmptyPrompt is returned for empty or whitespace-only prompts. It is a
// client error, never a fallback.
var ErrEmptyPrompt = errors.New("prompt is required")

// ContextFetcher retrieves the best-effort snapshot used to enrich a prompt.
type ContextFetcher interface {
	FetchContext(ctx context.Context, tokens googledomain.TokenPair) googledomain.ContextSnapshot
}

// AgentUsecase answers prompts, optionally enriched with Google context.
type AgentUsecase interface {
	// Answer handles a plain prompt with no account context.
	Answer(ctx context.Context, prompt string) (*agentdomain.Answer, error)

	// AnswerWithContext enriches the prompt with the user's Google data when
	// an access token is present. Context-fetch failures never propagate.
	AnswerWithContext(ctx context.Context, prompt string, tokens googledomain.TokenPair) (*agentdomain.Answer, error)
}

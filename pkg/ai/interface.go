package ai

import "context"

// CompletionService is the interface for chat-completion providers.
// Implement this interface to add new providers (OpenAI, Gemini, etc.)
type CompletionService interface {
	// Complete sends an optional system message and a user prompt as a
	// single chat turn and returns the provider's text response.
	Complete(ctx context.Context, systemMessage, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderAuto   ProviderType = "auto"
)

package ai

import (
	"fmt"
	"time"

	"gagent-backend/pkg/gemini"
	"gagent-backend/pkg/openai"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openai", "gemini" or "auto"

	// OpenAI config
	OpenAIAPIKey string
	OpenAIModel  string

	// Gemini config
	GeminiAPIKey string

	// Timeout bounds each outbound provider call.
	Timeout time.Duration
}

// NewCompletionService creates a CompletionService based on the config.
// This is the factory function - switch AI provider by changing config.Provider.
// A nil service (with nil error) means no provider credential is configured
// and the caller should run in echo mode.
func NewCompletionService(cfg Config) (CompletionService, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return openai.NewService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Timeout), nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return gemini.NewService(cfg.GeminiAPIKey, cfg.Timeout), nil

	default:
		// Auto: prefer OpenAI, fall back to Gemini, otherwise echo mode.
		if cfg.OpenAIAPIKey != "" {
			return openai.NewService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Timeout), nil
		}
		if cfg.GeminiAPIKey != "" {
			return gemini.NewService(cfg.GeminiAPIKey, cfg.Timeout), nil
		}
		return nil, nil
	}
}

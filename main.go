package main

import (
	"log"

	api "gagent-backend/cmd/api"
	agentUsecase "gagent-backend/internal/agent/usecase"
	googleUsecase "gagent-backend/internal/googledata/usecase"
	"gagent-backend/pkg/ai"
	"gagent-backend/pkg/config"
	"gagent-backend/pkg/googleclient"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Google OAuth2 client configuration (read-only after startup; every
	// request builds its own authenticated client)
	googleClient := googleclient.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)
	googleUsecaseInstance := googleUsecase.NewGoogleDataUsecase(googleClient)

	// Completion provider; nil means no credential configured and the
	// orchestrator answers in echo mode
	completion, err := ai.NewCompletionService(ai.Config{
		Provider:     ai.ProviderType(cfg.AIProvider),
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		OpenAIModel:  cfg.OpenAIModel,
		GeminiAPIKey: cfg.GeminiAPIKey,
		Timeout:      cfg.RequestTimeout,
	})
	if err != nil {
		log.Fatal("Failed to initialize AI provider:", err)
	}
	if completion == nil {
		log.Printf("[WARN] No AI provider credential configured, running in echo mode")
	} else {
		log.Printf("AI provider initialized: %s", cfg.AIProvider)
	}

	agentUsecaseInstance := agentUsecase.NewAgentUsecase(completion, googleUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(agentUsecaseInstance, googleUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package usecase

import (
	"context"
	"log"
	"strings"

	agentdomain "gagent-backend/internal/agent/domain"
	googledomain "gagent-backend/internal/googledata/domain"
	"gagent-backend/pkg/ai"
)

const (
	echoPrefix      = "AI Echo: "
	agentEchoPrefix = "AI Agent Echo: "
)

// agentUsecase implements AgentUsecase
type agentUsecase struct {
	completion ai.CompletionService // nil means echo mode
	fetcher    ContextFetcher
}

func NewAgentUsecase(completion ai.CompletionService, fetcher ContextFetcher) AgentUsecase {
	return &agentUsecase{
		completion: completion,
		fetcher:    fetcher,
	}
}

func (u *agentUsecase) Answer(ctx context.Context, prompt string) (*agentdomain.Answer, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	if u.completion == nil {
		return agentdomain.Completed(echoPrefix + prompt), nil
	}

	text, err := u.completion.Complete(ctx, "", prompt)
	if err != nil {
		log.Printf("[AI] Completion failed, falling back to echo: %v", err)
		return agentdomain.Fallback(echoPrefix+prompt, err), nil
	}
	if text == "" {
		text = "No response"
	}
	return agentdomain.Completed(text), nil
}

func (u *agentUsecase) AnswerWithContext(ctx context.Context, prompt string, tokens googledomain.TokenPair) (*agentdomain.Answer, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	contextData := ""
	if tokens.AccessToken != "" {
		contextData = u.fetcher.FetchContext(ctx, tokens).Render()
	}

	if u.completion == nil {
		echo := agentEchoPrefix + prompt
		if contextData != "" {
			echo += "\n\nWith Google Context:\n" + contextData
		}
		return agentdomain.Completed(echo), nil
	}

	text, err := u.completion.Complete(ctx, systemMessage(contextData), prompt)
	if err != nil {
		log.Printf("[AI] Agent completion failed, falling back to echo: %v", err)
		return agentdomain.Fallback(agentEchoPrefix+prompt, err), nil
	}
	if text == "" {
		text = "No response"
	}
	return agentdomain.Completed(text), nil
}

func systemMessage(contextData string) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI assistant with access to the user's Google services.\n")
	if contextData != "" {
		b.WriteString("Here's the user's current context:\n")
		b.WriteString(contextData)
		b.WriteString("\n")
	}
	b.WriteString("You can help with calendar management, email insights, and personal productivity. Always be helpful and accurate.")
	return b.String()
}

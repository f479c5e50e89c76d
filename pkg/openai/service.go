package openai

import (
	"context"
	"fmt"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultModel = "gpt-3.5-turbo"

type Service struct {
	client openaigo.Client
	model  string
}

func NewService(apiKey, model string, timeout time.Duration) *Service {
	if model == "" {
		model = defaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	return &Service{
		client: openaigo.NewClient(opts...),
		model:  model,
	}
}

func (s *Service) Complete(ctx context.Context, systemMessage, prompt string) (string, error) {
	messages := make([]openaigo.ChatCompletionMessageParamUnion, 0, 2)
	if systemMessage != "" {
		messages = append(messages, openaigo.SystemMessage(systemMessage))
	}
	messages = append(messages, openaigo.UserMessage(prompt))

	completion, err := s.client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model:    openaigo.ChatModel(s.model),
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return completion.Choices[0].Message.Content, nil
}

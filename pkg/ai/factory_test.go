package ai

import "testing"

func TestNewCompletionService_ExplicitProviderRequiresKey(t *testing.T) {
	if _, err := NewCompletionService(Config{Provider: ProviderOpenAI}); err == nil {
		t.Error("expected error for OpenAI provider without key")
	}
	if _, err := NewCompletionService(Config{Provider: ProviderGemini}); err == nil {
		t.Error("expected error for Gemini provider without key")
	}
}

func TestNewCompletionService_ExplicitProviders(t *testing.T) {
	svc, err := NewCompletionService(Config{Provider: ProviderOpenAI, OpenAIAPIKey: "k"})
	if err != nil || svc == nil {
		t.Errorf("expected OpenAI service, got svc=%v err=%v", svc, err)
	}

	svc, err = NewCompletionService(Config{Provider: ProviderGemini, GeminiAPIKey: "k"})
	if err != nil || svc == nil {
		t.Errorf("expected Gemini service, got svc=%v err=%v", svc, err)
	}
}

func TestNewCompletionService_AutoPrefersOpenAI(t *testing.T) {
	svc, err := NewCompletionService(Config{Provider: ProviderAuto, OpenAIAPIKey: "a", GeminiAPIKey: "b"})
	if err != nil || svc == nil {
		t.Fatalf("expected service, got svc=%v err=%v", svc, err)
	}
}

func TestNewCompletionService_AutoWithoutKeysIsEchoMode(t *testing.T) {
	svc, err := NewCompletionService(Config{Provider: ProviderAuto})
	if err != nil {
		t.Fatalf("echo mode must not be an error, got %v", err)
	}
	if svc != nil {
		t.Error("expected nil service (echo mode) without credentials")
	}
}

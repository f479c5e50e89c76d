package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	agentdomain "gagent-backend/internal/agent/domain"
	"gagent-backend/internal/agent/usecase"
	googledomain "gagent-backend/internal/googledata/domain"

	"github.com/gin-gonic/gin"
)

type fakeAgentUsecase struct {
	answer     *agentdomain.Answer
	err        error
	lastTokens googledomain.TokenPair
}

func (f *fakeAgentUsecase) Answer(_ context.Context, prompt string) (*agentdomain.Answer, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, usecase.ErrEmptyPrompt
	}
	return f.answer, f.err
}

func (f *fakeAgentUsecase) AnswerWithContext(_ context.Context, prompt string, tokens googledomain.TokenPair) (*agentdomain.Answer, error) {
	f.lastTokens = tokens
	if strings.TrimSpace(prompt) == "" {
		return nil, usecase.ErrEmptyPrompt
	}
	return f.answer, f.err
}

func newTestRouter(uc usecase.AgentUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAIHandler(uc, 5*time.Second)
	r := gin.New()
	r.POST("/api/ai", h.Answer)
	r.POST("/api/ai-agent", h.AnswerWithContext)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnswer_Success(t *testing.T) {
	uc := &fakeAgentUsecase{answer: agentdomain.Completed("AI Echo: hello")}
	w := postJSON(t, newTestRouter(uc), "/api/ai", `{"prompt":"hello"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["result"] != "AI Echo: hello" || resp["response"] != "AI Echo: hello" {
		t.Errorf("unexpected body: %v", resp)
	}
	if resp["status"] != "success" {
		t.Errorf("expected success status, got %q", resp["status"])
	}
	if _, err := time.Parse(time.RFC3339, resp["timestamp"]); err != nil {
		t.Errorf("timestamp not RFC3339: %q", resp["timestamp"])
	}
}

func TestAnswer_EmptyPromptReturns400(t *testing.T) {
	r := newTestRouter(&fakeAgentUsecase{answer: agentdomain.Completed("x")})

	for _, body := range []string{`{}`, `{"prompt":""}`, `{"prompt":"   "}`, `not json`} {
		w := postJSON(t, r, "/api/ai", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Prompt is required") {
			t.Errorf("body %q: expected error message, got %s", body, w.Body.String())
		}
	}
}

func TestAnswer_FallbackIsStill200(t *testing.T) {
	uc := &fakeAgentUsecase{answer: agentdomain.Fallback("AI Echo: hello", errors.New("provider down"))}
	w := postJSON(t, newTestRouter(uc), "/api/ai", `{"prompt":"hello"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("fallback must respond 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["status"] != "fallback" {
		t.Errorf("expected fallback status, got %q", resp["status"])
	}
	if resp["result"] != "AI Echo: hello" {
		t.Errorf("expected echoed prompt, got %q", resp["result"])
	}
}

func TestAnswerWithContext_PassesTokens(t *testing.T) {
	uc := &fakeAgentUsecase{answer: agentdomain.Completed("ok")}
	w := postJSON(t, newTestRouter(uc), "/api/ai-agent",
		`{"prompt":"hello","accessToken":"at","refreshToken":"rt"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastTokens.AccessToken != "at" || uc.lastTokens.RefreshToken != "rt" {
		t.Errorf("tokens not forwarded: %+v", uc.lastTokens)
	}
}

func TestAnswerWithContext_EmptyPromptReturns400(t *testing.T) {
	uc := &fakeAgentUsecase{answer: agentdomain.Completed("x")}
	w := postJSON(t, newTestRouter(uc), "/api/ai-agent", `{"accessToken":"at"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

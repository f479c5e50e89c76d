package delivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	agentdto "gagent-backend/internal/agent/dto"
	"gagent-backend/internal/agent/usecase"
	googledomain "gagent-backend/internal/googledata/domain"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	agentUsecase usecase.AgentUsecase
	timeout      time.Duration
}

func NewAIHandler(agentUsecase usecase.AgentUsecase, timeout time.Duration) *AIHandler {
	return &AIHandler{
		agentUsecase: agentUsecase,
		timeout:      timeout,
	}
}

// Answer handles POST /api/ai
func (h *AIHandler) Answer(c *gin.Context) {
	var req agentdto.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	answer, err := h.agentUsecase.Answer(ctx, req.Prompt)
	if err != nil {
		h.answerError(c, err)
		return
	}

	c.JSON(http.StatusOK, promptResponse(answer.Text, string(answer.Status)))
}

// AnswerWithContext handles POST /api/ai-agent
func (h *AIHandler) AnswerWithContext(c *gin.Context) {
	var req agentdto.AgentPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	tokens := googledomain.TokenPair{
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
	}

	answer, err := h.agentUsecase.AnswerWithContext(ctx, req.Prompt, tokens)
	if err != nil {
		h.answerError(c, err)
		return
	}

	c.JSON(http.StatusOK, promptResponse(answer.Text, string(answer.Status)))
}

func (h *AIHandler) answerError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrEmptyPrompt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

func promptResponse(text, status string) agentdto.PromptResponse {
	return agentdto.PromptResponse{
		Result:    text,
		Response:  text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
	}
}

package delivery

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gagent-backend/internal/googledata/domain"
	googledto "gagent-backend/internal/googledata/dto"
	"gagent-backend/internal/googledata/usecase"

	"github.com/gin-gonic/gin"
)

type GoogleHandler struct {
	googleUsecase usecase.GoogleDataUsecase
	frontendURL   string
	timeout       time.Duration
}

func NewGoogleHandler(googleUsecase usecase.GoogleDataUsecase, frontendURL string, timeout time.Duration) *GoogleHandler {
	return &GoogleHandler{
		googleUsecase: googleUsecase,
		frontendURL:   frontendURL,
		timeout:       timeout,
	}
}

func (h *GoogleHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *GoogleHandler) AuthURL(c *gin.Context) {
	c.JSON(http.StatusOK, googledto.AuthURLResponse{URL: h.googleUsecase.AuthURL()})
}

// Callback completes the OAuth2 code exchange. Browsers are redirected back
// to the frontend; XHR callers asking for JSON get the token pair directly.
// Note: the redirect carries the raw access token in the query string, which
// the frontend was built against. It leaks into browser history, so prefer
// the JSON mode where possible.
func (h *GoogleHandler) Callback(c *gin.Context) {
	wantsJSON := strings.Contains(c.GetHeader("Accept"), "application/json")

	if errParam := c.Query("error"); errParam != "" {
		log.Printf("[OAUTH] Provider returned error: %s", errParam)
		h.callbackError(c, wantsJSON, http.StatusBadRequest, errParam)
		return
	}

	code := c.Query("code")
	if code == "" {
		log.Printf("[OAUTH] No authorization code received")
		h.callbackError(c, wantsJSON, http.StatusBadRequest, "no_code")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	tokens, err := h.googleUsecase.ExchangeCode(ctx, code)
	if err != nil {
		log.Printf("[OAUTH] Code exchange failed: %v", err)
		h.callbackError(c, wantsJSON, http.StatusBadGateway, "token_exchange_failed")
		return
	}

	if wantsJSON {
		c.JSON(http.StatusOK, googledto.TokensResponse{Tokens: tokens})
		return
	}
	c.Redirect(http.StatusFound, h.frontendURL+"/google?success=true&access_token="+url.QueryEscape(tokens.AccessToken))
}

func (h *GoogleHandler) callbackError(c *gin.Context, wantsJSON bool, status int, reason string) {
	if wantsJSON {
		c.JSON(status, gin.H{"error": reason})
		return
	}
	c.Redirect(http.StatusFound, h.frontendURL+"/google?error="+url.QueryEscape(reason))
}

// tokensFromQuery reads the token pair the client holds. Returns false after
// writing a 400 when the access token is missing.
func tokensFromQuery(c *gin.Context) (domain.TokenPair, bool) {
	accessToken := c.Query("access_token")
	if accessToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing access_token"})
		return domain.TokenPair{}, false
	}
	return domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: c.Query("refresh_token"),
	}, true
}

func (h *GoogleHandler) UserInfo(c *gin.Context) {
	tokens, ok := tokensFromQuery(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	user, err := h.googleUsecase.UserInfo(ctx, tokens)
	if err != nil {
		log.Printf("[GOOGLE] UserInfo error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google UserInfo error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, googledto.UserInfoResponse{User: user})
}

func (h *GoogleHandler) CalendarEvents(c *gin.Context) {
	tokens, ok := tokensFromQuery(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	events, err := h.googleUsecase.CalendarEvents(ctx, tokens)
	if err != nil {
		log.Printf("[GOOGLE] Calendar error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google Calendar error", "details": err.Error()})
		return
	}
	if events == nil {
		events = []domain.CalendarEvent{}
	}

	c.JSON(http.StatusOK, googledto.EventsResponse{Events: events})
}

func (h *GoogleHandler) UnreadMessages(c *gin.Context) {
	tokens, ok := tokensFromQuery(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	messages, err := h.googleUsecase.UnreadMessages(ctx, tokens)
	if err != nil {
		log.Printf("[GOOGLE] Gmail error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google Gmail error", "details": err.Error()})
		return
	}
	if messages == nil {
		messages = []domain.MessageRef{}
	}

	c.JSON(http.StatusOK, googledto.MessagesResponse{Messages: messages})
}

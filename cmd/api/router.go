package api

import (
	"net/http"
	"time"

	agentDelivery "gagent-backend/internal/agent/delivery"
	agentUsecase "gagent-backend/internal/agent/usecase"
	googleDelivery "gagent-backend/internal/googledata/delivery"
	googleUsecase "gagent-backend/internal/googledata/usecase"
	"gagent-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, agentUc agentUsecase.AgentUsecase, googleUc googleUsecase.GoogleDataUsecase, cfg *config.Config) {
	aiHandler := agentDelivery.NewAIHandler(agentUc, cfg.RequestTimeout)
	googleHandler := googleDelivery.NewGoogleHandler(googleUc, cfg.FrontendURL, cfg.RequestTimeout)

	// Liveness (plain text)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "AI Agent Backend is running")
	})

	api := r.Group("/api")
	{
		api.GET("/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
				"time":   time.Now().UTC().Format(time.RFC3339),
			})
		})

		api.POST("/ai", aiHandler.Answer)
		api.POST("/ai-agent", aiHandler.AnswerWithContext)

		google := api.Group("/google")
		{
			google.GET("/auth", googleHandler.AuthURL)
			google.GET("/callback", googleHandler.Callback)
			google.GET("/userinfo", googleHandler.UserInfo)
			google.GET("/calendar", googleHandler.CalendarEvents)
			google.GET("/gmail", googleHandler.UnreadMessages)
		}
	}

	// Demo frontend shell. Set FRONTEND_URL=http://localhost:5001/web to use
	// it as the OAuth redirect target; /web/google mirrors the frontend
	// route the callback redirects to.
	r.StaticFile("/web", "./web/index.html")
	r.StaticFile("/web/google", "./web/index.html")
	r.StaticFile("/web/app.js", "./web/app.js")
}

package api

import (
	agentUsecase "gagent-backend/internal/agent/usecase"
	googleUsecase "gagent-backend/internal/googledata/usecase"
	"gagent-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	agentUsecase  agentUsecase.AgentUsecase
	googleUsecase googleUsecase.GoogleDataUsecase
	config        *config.Config
}

func NewHandler(agentUc agentUsecase.AgentUsecase, googleUc googleUsecase.GoogleDataUsecase, cfg *config.Config) *Handler {
	return &Handler{
		agentUsecase:  agentUc,
		googleUsecase: googleUc,
		config:        cfg,
	}
}

// RequestIDMiddleware tags each request with an ID for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(RequestIDMiddleware())

	// CORS: explicit origin allow-list with credentials
	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	SetupRoutes(r, h.agentUsecase, h.googleUsecase, h.config)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}

// Package api holds the serverless entry point. The platform invokes Handler
// once per request; state only lives as long as the function instance.
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"multichat/internal/entities"
	httpapi "multichat/internal/interfaces/http"
	"multichat/internal/repository"
	"multichat/internal/usecases"
)

var (
	engineOnce sync.Once
	engine     *gin.Engine
)

// Handler answers POST requests carrying {platform, userMessage, sessionId?}.
func Handler(w http.ResponseWriter, r *http.Request) {
	engineOnce.Do(func() {
		engine = newEngine(newResponder())
	})
	engine.ServeHTTP(w, r)
}

func newResponder() *usecases.MessageService {
	conversations, err := repository.NewConversationRepository(repository.DefaultMaxSessions, repository.DefaultHistoryLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing conversation memory")
	}
	return usecases.NewMessageService(conversations, usecases.NewRenderer(nil, nil))
}

func newEngine(responder *usecases.MessageService) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(httpapi.CORSMiddleware())
	e.NoRoute(func(c *gin.Context) { handleMessage(c, responder) })
	return e
}

type messageRequest struct {
	Platform    string `json:"platform"`
	UserMessage string `json:"userMessage"`
	SessionID   string `json:"sessionId"`
}

func handleMessage(c *gin.Context, responder *usecases.MessageService) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	platform, err := entities.ParsePlatform(req.Platform)
	if req.UserMessage == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = usecases.DefaultSessionID
	}

	reply, err := responder.Reply(c.Request.Context(), platform, req.UserMessage, sessionID)
	if err != nil {
		log.Error().Err(err).Str("platform", string(platform)).Msg("serverless reply failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"platform":    platform,
		"userMessage": req.UserMessage,
		"aiMessage":   reply.Text,
		"timestamp":   time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		"sessionId":   sessionID,
	})
}

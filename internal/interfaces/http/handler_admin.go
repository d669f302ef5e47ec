package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"multichat/internal/entities"
	"multichat/internal/interfaces"
	"multichat/internal/usecases"
)

// Admin routes get a tighter per-user bucket than the public read routes.
const (
	adminRate  = 2
	adminBurst = 5
)

// StatsProvider is implemented by the message rate limiter.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

type AdminHandler struct {
	auth          *usecases.AuthUsecase
	conversations interfaces.ConversationStore
	limiterStats  StatsProvider
	startedAt     time.Time
}

func NewAdminHandler(auth *usecases.AuthUsecase, conversations interfaces.ConversationStore, limiterStats StatsProvider) *AdminHandler {
	return &AdminHandler{
		auth:          auth,
		conversations: conversations,
		limiterStats:  limiterStats,
		startedAt:     time.Now(),
	}
}

func (h *AdminHandler) RegisterRoutes(api *gin.RouterGroup, middleware *Middleware) {
	api.POST("/admin/login", h.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired())
	admin.Use(middleware.AdminRequired())
	admin.Use(middleware.RateLimitPerUser(adminRate, adminBurst))
	{
		admin.GET("/stats", h.GetStats)
		admin.DELETE("/conversation/:sessionId", h.DeleteConversation)
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var loginReq struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	token, err := h.auth.Login(loginReq.Username, loginReq.Password)
	if errors.Is(err, entities.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		requestLogger(c).Error().Err(err).Msg("admin login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetStats returns service statistics
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats := gin.H{
		"active_sessions": h.conversations.Sessions(),
		"uptime_seconds":  time.Since(h.startedAt).Seconds(),
	}
	if h.limiterStats != nil {
		stats["rate_limiter"] = h.limiterStats.GetStats()
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) DeleteConversation(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if !h.conversations.Delete(sessionID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found", "sessionId": sessionID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "sessionId": sessionID})
}

package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"golang.org/x/time/rate"

	"multichat/internal/entities"
	"multichat/internal/interfaces"
	"multichat/internal/usecases"
)

const (
	historyPageSize = 10
	maxBodyBytes    = 1 << 20
	qrCodeSize      = 256
	isoLayout       = "2006-01-02T15:04:05.000Z"
)

var availableEndpoints = []string{
	"POST /api/messages",
	"GET /api/platforms",
	"GET /api/health",
	"GET /api/conversation/:sessionId",
	"GET /api/platforms/:platform/qr",
	"GET /metrics",
}

type Handler struct {
	responder     interfaces.Responder
	conversations interfaces.ConversationStore
	limiter       interfaces.RateLimiter
	observer      interfaces.ReplyObserver
	widgetURL     string
	startedAt     time.Time
	now           func() time.Time
}

// Services bundles everything SetupRoutes mounts.
type Services struct {
	Responder     interfaces.Responder
	Conversations interfaces.ConversationStore
	Limiter       interfaces.RateLimiter
	Observer      interfaces.ReplyObserver
	Metrics       http.Handler
	Auth          *usecases.AuthUsecase
	AdminStats    StatsProvider
	Middleware    *Middleware
	WidgetURL     string
	ReadRate      rate.Limit
	ReadBurst     int
}

func NewHandler(responder interfaces.Responder, conversations interfaces.ConversationStore, limiter interfaces.RateLimiter, observer interfaces.ReplyObserver, widgetURL string) *Handler {
	return &Handler{
		responder:     responder,
		conversations: conversations,
		limiter:       limiter,
		observer:      observer,
		widgetURL:     widgetURL,
		startedAt:     time.Now(),
		now:           time.Now,
	}
}

func SetupRoutes(r *gin.Engine, s Services) {
	h := NewHandler(s.Responder, s.Conversations, s.Limiter, s.Observer, s.WidgetURL)
	middleware := s.Middleware
	if middleware == nil {
		middleware = NewMiddleware("", s.Observer)
	}

	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(Recovery())
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(maxBodyBytes))
	r.Use(CORSMiddleware())

	api := r.Group("/api")
	api.POST("/messages", h.HandleMessage)

	reads := api.Group("")
	reads.Use(middleware.RateLimitPerClient(s.ReadRate, s.ReadBurst))
	{
		reads.GET("/platforms", h.GetPlatforms)
		reads.GET("/platforms/:platform/qr", h.GetPlatformQRCode)
		reads.GET("/health", h.GetHealth)
		reads.GET("/conversation/:sessionId", h.GetConversation)
	}

	if s.Metrics != nil {
		r.GET("/metrics", gin.WrapH(s.Metrics))
	}

	if s.Auth != nil {
		adminHandler := NewAdminHandler(s.Auth, s.Conversations, s.AdminStats)
		adminHandler.RegisterRoutes(api, middleware)
	}

	r.NoRoute(h.NotFound)
}

type messageRequest struct {
	Platform    string `json:"platform"`
	UserMessage string `json:"userMessage"`
	SessionID   string `json:"sessionId"`
}

// HandleMessage validates, rate limits and answers a chat message.
func (h *Handler) HandleMessage(c *gin.Context) {
	start := h.now()

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if req.Platform == "" || req.UserMessage == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Missing required fields: platform and userMessage are required",
			"received": gin.H{"platform": req.Platform != "", "userMessage": req.UserMessage != ""},
		})
		return
	}

	platform, err := entities.ParsePlatform(req.Platform)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":              fmt.Sprintf("Unsupported platform: %q. Choose from: %s", req.Platform, strings.Join(entities.PlatformNames(), ", ")),
			"supportedPlatforms": entities.PlatformNames(),
		})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = usecases.DefaultSessionID
	}
	if !ValidSessionID(sessionID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid sessionId: at most %d printable characters", MaxSessionIDLength)})
		return
	}

	if allowed, wait := h.limiter.Allow(c.ClientIP()); !allowed {
		if h.observer != nil {
			h.observer.ObserveRateLimited(c.FullPath())
		}
		retryAfter := int(math.Ceil(wait.Seconds()))
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":      "Rate limit exceeded. Please wait before sending more messages.",
			"retryAfter": retryAfter,
		})
		return
	}

	text := SanitizeString(req.UserMessage)
	l := requestLogger(c).With().
		Str("platform", string(platform)).
		Str("session_id", sessionID).
		Logger()

	reply, err := h.reply(c.Request.Context(), platform, text, sessionID)
	if err != nil {
		l.Error().Err(err).Msg("error generating AI response")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":       "Internal server error while processing your message",
			"platform":    platform,
			"userMessage": TruncateWithEllipsis(req.UserMessage, MaxEchoLength),
		})
		return
	}

	l.Info().
		Str("category", reply.Category).
		Str("message", TruncateWithEllipsis(text, MaxLogPreview)).
		Msg("message answered")

	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"platform":     platform,
		"userMessage":  req.UserMessage,
		"aiMessage":    reply.Text,
		"timestamp":    isoTimestamp(now),
		"sessionId":    sessionID,
		"responseTime": now.Sub(start).Milliseconds(),
	})
}

// reply converts a panic in the reply pipeline into an error so the caller
// can answer with the message-specific 500 body.
func (h *Handler) reply(ctx context.Context, platform entities.Platform, text, sessionID string) (reply entities.Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reply pipeline panic: %v", r)
		}
	}()
	return h.responder.Reply(ctx, platform, text, sessionID)
}

func (h *Handler) GetPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"platforms":      entities.PlatformNames(),
		"totalSupported": len(entities.SupportedPlatforms),
		"description":    "Multi-platform AI assistant supporting major messaging platforms",
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": isoTimestamp(h.now()),
		"uptime":    h.now().Sub(h.startedAt).Seconds(),
		"memory": gin.H{
			"sys":       mem.Sys,
			"heapTotal": mem.HeapSys,
			"heapUsed":  mem.HeapAlloc,
			"numGC":     mem.NumGC,
		},
		"platforms": len(entities.SupportedPlatforms),
	})
}

// GetConversation returns the last historyPageSize entries of a session.
func (h *Handler) GetConversation(c *gin.Context) {
	sessionID := c.Param("sessionId")

	c.JSON(http.StatusOK, gin.H{
		"sessionId":    sessionID,
		"messageCount": h.conversations.Count(sessionID),
		"history":      h.conversations.History(sessionID, historyPageSize),
	})
}

// GetPlatformQRCode returns a PNG that opens the chat widget preset to a platform.
func (h *Handler) GetPlatformQRCode(c *gin.Context) {
	platform, err := entities.ParsePlatform(c.Param("platform"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":              err.Error(),
			"supportedPlatforms": entities.PlatformNames(),
		})
		return
	}

	link, err := widgetLink(h.widgetURL, platform)
	if err != nil {
		requestLogger(c).Error().Err(err).Msg("invalid widget url")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Widget URL is misconfigured"})
		return
	}

	png, err := qrcode.Encode(link, qrcode.Medium, qrCodeSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":              "Endpoint not found",
		"availableEndpoints": availableEndpoints,
	})
}

func widgetLink(base string, platform entities.Platform) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("platform", string(platform))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func isoTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

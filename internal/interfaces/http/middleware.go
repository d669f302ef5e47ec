package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"multichat/internal/interfaces"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	// Buckets idle for bucketIdleTTL are dropped by the cache janitor.
	bucketIdleTTL       = 10 * time.Minute
	bucketSweepInterval = time.Minute
)

type Middleware struct {
	jwtSecret    []byte
	rateLimiters *gocache.Cache
	observer     interfaces.ReplyObserver
	mu           sync.Mutex
}

func NewMiddleware(secret string, observer interfaces.ReplyObserver) *Middleware {
	return &Middleware{
		jwtSecret:    []byte(secret),
		rateLimiters: gocache.New(bucketIdleTTL, bucketSweepInterval),
		observer:     observer,
	}
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.jwtSecret, nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("user_id", claims["user_id"])
			c.Set("role", claims["role"])
		}

		c.Next()
	}
}

// AdminRequired must follow AuthRequired.
func (m *Middleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("role"); role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RateLimitPerUser limits requests based on "user_id" from context (must follow AuthRequired)
func (m *Middleware) RateLimitPerUser(r rate.Limit, b int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User identity not found for rate limiting"})
			return
		}

		key := "user:" + fmt.Sprint(userID)
		if f, ok := userID.(float64); ok {
			key = "user:" + strconv.FormatFloat(f, 'f', 0, 64) // JWT numbers are float64 by default
		}

		m.limit(c, key, r, b)
	}
}

// RateLimitPerClient applies a token bucket per client IP. A non-positive
// rate disables it.
func (m *Middleware) RateLimitPerClient(r rate.Limit, b int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if r <= 0 {
			c.Next()
			return
		}
		m.limit(c, "client:"+c.ClientIP(), r, b)
	}
}

func (m *Middleware) limit(c *gin.Context, key string, r rate.Limit, b int) {
	limiter := m.bucket(key, r, b)

	if !limiter.Allow() {
		if m.observer != nil {
			m.observer.ObserveRateLimited(c.FullPath())
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
		return
	}

	c.Next()
}

// bucket returns the token bucket for key, creating it on first use. Every
// lookup pushes the bucket's expiry forward.
func (m *Middleware) bucket(key string, r rate.Limit, b int) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, _ := m.rateLimiters.Get(key)
	limiter, ok := v.(*rate.Limiter)
	if !ok {
		limiter = rate.NewLimiter(r, b)
	}
	m.rateLimiters.SetDefault(key, limiter)
	return limiter
}

// Buckets reports how many rate limit buckets are currently held.
func (m *Middleware) Buckets() int {
	return m.rateLimiters.ItemCount()
}

// CORSMiddleware allows Cross-Origin requests
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SecurityHeaders adds security headers to prevent common attacks
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Writer.Header().Set("Content-Security-Policy", "default-src 'self'")

		c.Next()
	}
}

// RequestSizeLimiter limits request body size to prevent DoS
func RequestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// RequestID propagates X-Request-ID, minting one when the client sent none.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger writes one access log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		if status >= http.StatusInternalServerError {
			evt = log.Error()
		}
		evt.Str(requestIDKey, c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}

// Recovery turns panics that escaped the handlers into a generic 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		requestLogger(c).Error().Interface("panic", recovered).Msg("unhandled error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Something went wrong!",
			"timestamp": isoTimestamp(time.Now()),
		})
	})
}

func requestLogger(c *gin.Context) *zerolog.Logger {
	l := log.With().Str(requestIDKey, c.GetString(requestIDKey)).Logger()
	return &l
}

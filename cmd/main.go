package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"multichat/internal/config"
	"multichat/internal/entities"
	"multichat/internal/infrastructure"
	"multichat/internal/interfaces/http"
	"multichat/internal/repository"
	"multichat/internal/usecases"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}
	config.ConfigureLogging(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conversations, err := repository.NewConversationRepository(cfg.MaxSessions, cfg.HistoryLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing conversation memory")
	}

	metrics := infrastructure.NewMetrics(conversations.Sessions)
	limiter := infrastructure.NewMessageRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)

	messageService := usecases.NewMessageService(conversations, usecases.NewRenderer(nil, nil),
		usecases.WithObserver(metrics))

	services := http.Services{
		Responder:     messageService,
		Conversations: conversations,
		Limiter:       limiter,
		Observer:      metrics,
		Metrics:       metrics.Handler(),
		AdminStats:    limiter,
		Middleware:    http.NewMiddleware(cfg.JWTSecret, metrics),
		WidgetURL:     cfg.WidgetURL,
		ReadRate:      rate.Limit(cfg.ReadRateLimit),
		ReadBurst:     cfg.ReadRateBurst,
	}

	if cfg.AdminEnabled() {
		authUsecase := usecases.NewAuthUsecase(repository.NewUserRepository(), cfg.JWTSecret)
		if err := authUsecase.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure admin user")
		}
		services.Auth = authUsecase
		log.Info().Str("username", cfg.AdminUsername).Msg("admin routes enabled")
	} else {
		log.Info().Msg("admin routes disabled (JWT_SECRET or ADMIN_PASSWORD missing)")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	http.SetupRoutes(r, services)

	srv := &nethttp.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Strs("platforms", entities.PlatformNames()).
			Int("rate_limit", cfg.RateLimitMax).
			Dur("rate_window", cfg.RateLimitWindow).
			Msg("multi-platform assistant listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("received shutdown signal, shutting down gracefully")

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	GinMode         string
	RateLimitMax    int
	RateLimitWindow time.Duration
	ReadRateLimit   float64
	ReadRateBurst   int
	HistoryLimit    int
	MaxSessions     int
	WidgetURL       string
	JWTSecret       string
	AdminUsername   string
	AdminPassword   string
	ShutdownTimeout time.Duration
}

// AdminEnabled reports whether the admin routes should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminPassword != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("rate_limit_max", 30)
	v.SetDefault("rate_limit_window", "60s")
	v.SetDefault("read_rate_limit", 10.0)
	v.SetDefault("read_rate_burst", 20)
	v.SetDefault("history_limit", 20)
	v.SetDefault("max_sessions", 10000)
	v.SetDefault("widget_url", "http://localhost:5173")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "")
	v.SetDefault("shutdown_timeout", "10s")
}

// LoadConfig reads .env (if present), an optional config.toml in the working
// directory and the environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	window, err := time.ParseDuration(v.GetString("rate_limit_window"))
	if err != nil {
		return nil, fmt.Errorf("invalid rate_limit_window: %w", err)
	}
	shutdown, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid shutdown_timeout: %w", err)
	}

	cfg := &Config{
		Port:            v.GetString("port"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		GinMode:         v.GetString("gin_mode"),
		RateLimitMax:    v.GetInt("rate_limit_max"),
		RateLimitWindow: window,
		ReadRateLimit:   v.GetFloat64("read_rate_limit"),
		ReadRateBurst:   v.GetInt("read_rate_burst"),
		HistoryLimit:    v.GetInt("history_limit"),
		MaxSessions:     v.GetInt("max_sessions"),
		WidgetURL:       v.GetString("widget_url"),
		JWTSecret:       v.GetString("jwt_secret"),
		AdminUsername:   v.GetString("admin_username"),
		AdminPassword:   v.GetString("admin_password"),
		ShutdownTimeout: shutdown,
	}

	if cfg.RateLimitMax <= 0 {
		return nil, fmt.Errorf("rate_limit_max must be positive, got %d", cfg.RateLimitMax)
	}
	return cfg, nil
}

// ConfigureLogging sets the global zerolog level and output format.
func ConfigureLogging(cfg *Config) {
	var logLevel zerolog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

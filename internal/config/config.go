package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName             string
	AppEnv              string
	AppPort             string
	DatabaseURL         string
	RedisURL            string
	JWTSecret           string
	CORSAllowOrigins    string
	AnalyticsCacheTTL   time.Duration
	SessionRevokeTTL    time.Duration
	AssistantReplyDelay time.Duration
	UploadMaxSizeMB     int
	SeedEnabled         bool
	SeedToken           string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("EDUONBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "EduOnboard API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("analytics.cache_ttl", "5m")
	v.SetDefault("session.revoke_ttl", "24h")
	v.SetDefault("assistant.reply_delay", "600ms")
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("seed.enabled", false)

	cacheTTL, err := parseDuration(v.GetString("analytics.cache_ttl"), "analytics cache ttl")
	if err != nil {
		return Config{}, err
	}

	revokeTTL, err := parseDuration(v.GetString("session.revoke_ttl"), "session revoke ttl")
	if err != nil {
		return Config{}, err
	}

	replyDelay, err := parseDuration(v.GetString("assistant.reply_delay"), "assistant reply delay")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppName:             v.GetString("app.name"),
		AppEnv:              v.GetString("app.env"),
		AppPort:             v.GetString("app.port"),
		DatabaseURL:         v.GetString("database.url"),
		RedisURL:            v.GetString("redis.url"),
		JWTSecret:           v.GetString("jwt.secret"),
		CORSAllowOrigins:    v.GetString("cors.allow_origins"),
		AnalyticsCacheTTL:   cacheTTL,
		SessionRevokeTTL:    revokeTTL,
		AssistantReplyDelay: replyDelay,
		UploadMaxSizeMB:     v.GetInt("upload.max_size_mb"),
		SeedEnabled:         v.GetBool("seed.enabled"),
		SeedToken:           v.GetString("seed.token"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.UploadMaxSizeMB <= 0 {
		cfg.UploadMaxSizeMB = 10
	}

	return cfg, nil
}

func parseDuration(value, label string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("invalid %s: empty", label)
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", label, err)
	}

	return parsed, nil
}
